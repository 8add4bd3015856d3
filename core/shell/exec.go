package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/calder-martin/picosh/core/vos"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ErrNotFound is reported when no search-path entry matches a program name.
var ErrNotFound = errors.New("not found")

// LookPath searches the PATH directories, in listed order, for an entry
// whose filename exactly equals file and returns its full path. A directory
// that can't be read fails the whole lookup with that directory's error
// rather than skipping ahead.
func LookPath(v vos.VOS, file string) (string, error) {
	for _, dir := range strings.Split(v.Getenv(EnvPath), ":") {
		entries, err := afero.ReadDir(v.FS(), dir)
		if err != nil {
			return "", err
		}
		for _, entry := range entries {
			if entry.Name() == file {
				return filepath.Join(dir, file), nil
			}
		}
	}
	return "", ErrNotFound
}

// RunResult holds the collected output of a finished external program.
// There is no streaming; the interpreter blocks until the child exits.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner spawns external programs. It is a seam so tests never fork.
type Runner interface {
	// Run executes path with args, blocking until completion. A non-nil
	// error means the program couldn't be started at all.
	Run(path string, args []string) (*RunResult, error)
}

// ExecRunner runs programs on the host via os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(path string, args []string) (*RunResult, error) {
	cmd := exec.Command(path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &RunResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	case err != nil:
		return nil, err
	}

	return res, nil
}

// Executor runs parsed commands, collecting their output into channel-tagged
// chunks and handing those to the router.
type Executor struct {
	VirtualOS vos.VOS
	Router    *Router
	Runner    Runner
	Log       *log.Logger
}

// Execute runs one command. Exit is a no-op here; the shell loop intercepts
// it before dispatch.
func (e *Executor) Execute(cmd Command) error {
	switch c := cmd.(type) {
	case *Echo:
		return e.echo(c)
	case *Type:
		return e.typeOf(c)
	case *Pwd:
		return e.pwd(c)
	case *Cd:
		return e.cd(c)
	case *Cat:
		return e.cat(c)
	case *External:
		return e.external(c)
	case *Exit:
		return nil
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

func (e *Executor) echo(c *Echo) error {
	chunk := OutputChunk{
		Text:    strings.Join(c.Args, " ") + "\n",
		Channel: ChannelStdout,
	}
	return e.Router.Dispatch([]OutputChunk{chunk}, c.Redir)
}

func (e *Executor) typeOf(c *Type) error {
	var chunk OutputChunk
	switch {
	case IsBuiltin(c.Arg):
		chunk = OutputChunk{
			Text:    fmt.Sprintf("%s is a shell builtin\n", c.Arg),
			Channel: ChannelStdout,
		}
	default:
		path, err := LookPath(e.VirtualOS, c.Arg)
		if err != nil {
			e.Log.Debug("type lookup failed", "name", c.Arg, "err", err)
			chunk = OutputChunk{
				Text:    fmt.Sprintf("%s: not found\n", c.Arg),
				Channel: ChannelStderr,
			}
		} else {
			chunk = OutputChunk{
				Text:    fmt.Sprintf("%s is %s\n", c.Arg, path),
				Channel: ChannelStdout,
			}
		}
	}
	return e.Router.Dispatch([]OutputChunk{chunk}, c.Redir)
}

func (e *Executor) pwd(c *Pwd) error {
	wd, err := e.VirtualOS.Getwd()
	if err != nil {
		chunk := OutputChunk{
			Text:    fmt.Sprintf("pwd: %v\n", err),
			Channel: ChannelStderr,
		}
		return e.Router.Dispatch([]OutputChunk{chunk}, c.Redir)
	}

	chunk := OutputChunk{Text: wd + "\n", Channel: ChannelStdout}
	return e.Router.Dispatch([]OutputChunk{chunk}, c.Redir)
}

// cd reports failures straight to the terminal; the grammar gives it no
// redirection, so a nil directive falls through to the stderr stream.
func (e *Executor) cd(c *Cd) error {
	if err := e.VirtualOS.Chdir(c.Arg); err != nil {
		chunk := OutputChunk{
			Text:    fmt.Sprintf("cd: %s: No such file or directory\n", c.Arg),
			Channel: ChannelStderr,
		}
		return e.Router.Dispatch([]OutputChunk{chunk}, nil)
	}
	return nil
}

func (e *Executor) cat(c *Cat) error {
	var out, errText strings.Builder
	for _, name := range c.Args {
		data, err := afero.ReadFile(e.VirtualOS.FS(), name)
		if err != nil {
			fmt.Fprintf(&errText, "cat: %s: No such file or directory\n", name)
			continue
		}
		out.Write(data)
	}

	chunks := []OutputChunk{
		{Text: out.String(), Channel: ChannelStdout},
		{Text: errText.String(), Channel: ChannelStderr},
	}
	return e.Router.Dispatch(chunks, c.Redir)
}

func (e *Executor) external(c *External) error {
	notFound := []OutputChunk{{
		Text:    fmt.Sprintf("%s: command not found\n", c.Name),
		Channel: ChannelStderr,
	}}

	execPath, err := LookPath(e.VirtualOS, c.Name)
	if err != nil {
		e.Log.Debug("command resolution failed", "name", c.Name, "err", err)
		return e.Router.Dispatch(notFound, c.Redir)
	}

	res, err := e.Runner.Run(execPath, c.Args)
	if err != nil {
		// Spawn failures read the same as missing commands.
		e.Log.Warn("spawn failed", "path", execPath, "err", err)
		return e.Router.Dispatch(notFound, c.Redir)
	}

	chunk := OutputChunk{Text: res.Stdout, Channel: ChannelStdout}
	if res.ExitCode != 0 {
		chunk = OutputChunk{Text: res.Stderr, Channel: ChannelStderr}
	}
	return e.Router.Dispatch([]OutputChunk{chunk}, c.Redir)
}
