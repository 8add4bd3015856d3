// Package shell implements the interpreter core: a quote-aware tokenizer, a
// trailing-redirection grammar, a closed command type, and an output router
// that sends each chunk to the terminal or a file.
package shell

import (
	"fmt"
	"io"

	"github.com/abiosoft/readline"
	"github.com/calder-martin/picosh/core/config"
	"github.com/calder-martin/picosh/core/vos"
	"github.com/charmbracelet/log"
)

const (
	EnvHome = "HOME"
	EnvPath = "PATH"
)

// Shell reads one line per prompt and evaluates it.
type Shell struct {
	VirtualOS vos.VOS
	Readline  *readline.Instance
	Executor  *Executor

	log      *log.Logger
	exitCode int

	// Set to true to quit the read-eval loop.
	Quit bool
}

// NewShell wires a shell over the given OS with the host Runner.
func NewShell(virtualOS vos.VOS, cfg *config.Configuration, logger *log.Logger) (*Shell, error) {
	rlCfg := &readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: ExpandHome(virtualOS, cfg.HistoryFile),
		Stdin:       readline.NewCancelableStdin(virtualOS.Stdin()),
		Stdout:      virtualOS.Stdout(),
		Stderr:      virtualOS.Stderr(),
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	shell := &Shell{
		VirtualOS: virtualOS,
		Readline:  rl,
		Executor: &Executor{
			VirtualOS: virtualOS,
			Router:    NewRouter(virtualOS, virtualOS.FS()),
			Runner:    ExecRunner{},
			Log:       logger,
		},
		log: logger,
	}

	shell.init(cfg)

	return shell, nil
}

// init seeds environment defaults the way login would.
func (s *Shell) init(cfg *config.Configuration) {
	if _, ok := s.VirtualOS.LookupEnv(EnvPath); !ok {
		_ = s.VirtualOS.Setenv(EnvPath, cfg.DefaultPath)
	}
}

// Run is the interactive read-eval loop. It returns the code the process
// should exit with.
func (s *Shell) Run() int {
	for !s.Quit {
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return s.exitCode // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			s.log.Error("readline", "err", err)
			continue

		case len(line) == 0:
			continue // empty line

		default:
			if err := s.Eval(line); err != nil {
				fmt.Fprintf(s.VirtualOS.Stderr(), "%v\n", err)
			}
		}
	}
	return s.exitCode
}

// Eval tokenizes, parses and executes a single line. Errors are recoverable:
// the caller reports them and the loop continues.
func (s *Shell) Eval(line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	commandTokens, redirTokens := SplitTokens(tokens)
	redir := ParseRedirection(redirTokens)

	if len(commandTokens) == 0 {
		// A bare redirection like "> file" still touches the target.
		if redir != nil {
			return s.Executor.Router.Dispatch(nil, redir)
		}
		return nil
	}

	cmd, err := Build(s.VirtualOS, commandTokens, redir)
	if err != nil {
		return err
	}

	if exit, ok := cmd.(*Exit); ok {
		s.Quit = true
		s.exitCode = exit.Code
		return nil
	}

	return s.Executor.Execute(cmd)
}

// EvalOnce evaluates a single line the way the -c flag does: a line-level
// error is reported on stderr and turns into a non-zero exit code so
// callers can detect malformed input.
func (s *Shell) EvalOnce(line string) int {
	if err := s.Eval(line); err != nil {
		fmt.Fprintf(s.VirtualOS.Stderr(), "%v\n", err)
		return 2
	}
	return s.exitCode
}

// ExitCode returns the code set by the exit builtin.
func (s *Shell) ExitCode() int {
	return s.exitCode
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
