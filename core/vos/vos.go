// Package vos is the seam between the interpreter and the operating system.
// Production code binds the host process through SysOS; tests substitute an
// in-memory environment, filesystem and I/O streams.
package vos

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// VEnv is the process environment surface the interpreter reads and mutates.
type VEnv interface {
	// Getenv retrieves the value of the environment variable named by the
	// key, empty if unset.
	Getenv(key string) string

	// LookupEnv retrieves the value of the environment variable named by the
	// key and whether it is present at all.
	LookupEnv(key string) (string, bool)

	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)
}

// VIO holds the standard I/O streams of the interpreter.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VFS is the filesystem surface.
type VFS = afero.Fs

// VOS bundles everything a command needs from the operating system.
type VOS interface {
	VEnv
	VIO

	// FS returns the filesystem commands read from and redirect into.
	FS() VFS

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory.
	Chdir(dir string) error
}

// NewSysOS returns a VOS bound to the host process: real environment,
// working directory, standard streams and the OS filesystem.
func NewSysOS() VOS {
	return &sysOS{
		fs:  afero.NewOsFs(),
		vio: NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
	}
}

type sysOS struct {
	fs  VFS
	vio VIO
}

var _ VOS = (*sysOS)(nil)

func (s *sysOS) Getenv(key string) string            { return os.Getenv(key) }
func (s *sysOS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (s *sysOS) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (s *sysOS) Environ() []string                   { return os.Environ() }
func (s *sysOS) UserHomeDir() (string, error)        { return os.UserHomeDir() }
func (s *sysOS) Getwd() (string, error)              { return os.Getwd() }
func (s *sysOS) Chdir(dir string) error              { return os.Chdir(dir) }
func (s *sysOS) FS() VFS                             { return s.fs }
func (s *sysOS) Stdin() io.ReadCloser                { return s.vio.Stdin() }
func (s *sysOS) Stdout() io.WriteCloser              { return s.vio.Stdout() }
func (s *sysOS) Stderr() io.WriteCloser              { return s.vio.Stderr() }
