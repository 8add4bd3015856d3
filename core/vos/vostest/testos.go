// Package vostest provides a deterministic in-memory VOS for tests.
package vostest

import (
	"bytes"
	"io/fs"
	"path"
	"strings"

	"github.com/calder-martin/picosh/core/vos"
	"github.com/spf13/afero"
)

// TestOS is a VOS backed entirely by memory: a MapEnv, a MemMapFs, buffered
// output streams and its own working directory.
type TestOS struct {
	*vos.MapEnv
	vos.VIO

	Fs  afero.Fs
	Out *bytes.Buffer
	Err *bytes.Buffer

	cwd string
}

var _ vos.VOS = (*TestOS)(nil)

// NewTestOS builds a TestOS rooted at / with empty input.
func NewTestOS() *TestOS {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &TestOS{
		MapEnv: vos.NewMapEnv(),
		VIO:    vos.NewVIOAdapter(strings.NewReader(""), out, errOut),
		Fs:     afero.NewMemMapFs(),
		Out:    out,
		Err:    errOut,
		cwd:    "/",
	}
}

func (t *TestOS) FS() vos.VFS {
	return t.Fs
}

func (t *TestOS) Getwd() (string, error) {
	return t.cwd, nil
}

// Chdir moves to dir if it exists in the in-memory filesystem. Relative
// paths resolve against the current directory.
func (t *TestOS) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Join(t.cwd, dir)
	}

	fi, err := t.Fs.Stat(dir)
	if err != nil || !fi.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}

	t.cwd = dir
	return nil
}
