package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calder-martin/picosh/core/vos"
)

// Command is a single parsed input line. It is a closed sum; the executor
// dispatches with an exhaustive type switch.
type Command interface {
	command()
}

// Echo prints its arguments joined by single spaces.
type Echo struct {
	Args  []string
	Redir *Redirection
}

// Exit terminates the interpreter with the given code.
type Exit struct {
	Code int
}

// Type reports whether a name is a builtin or an executable on the path.
type Type struct {
	Arg   string
	Redir *Redirection
}

// Pwd prints the working directory.
type Pwd struct {
	Redir *Redirection
}

// Cd changes the working directory. It never carries a redirection.
type Cd struct {
	Arg string
}

// Cat concatenates files to its output.
type Cat struct {
	Args  []string
	Redir *Redirection
}

// External runs a program resolved through the search path.
type External struct {
	Name  string
	Args  []string
	Redir *Redirection
}

func (*Echo) command()     {}
func (*Exit) command()     {}
func (*Type) command()     {}
func (*Pwd) command()      {}
func (*Cd) command()       {}
func (*Cat) command()      {}
func (*External) command() {}

// IsBuiltin reports whether name is implemented inside the interpreter.
// cat is deliberately absent: type reports it through path lookup.
func IsBuiltin(name string) bool {
	switch name {
	case "echo", "exit", "type", "pwd", "cd":
		return true
	}
	return false
}

// Build maps command tokens (with the redirection tail already removed) to a
// Command. Errors are line-level: the caller reports them and prompts again.
func Build(env vos.VEnv, tokens []string, redir *Redirection) (Command, error) {
	switch tokens[0] {
	case "echo":
		return &Echo{Args: tokens[1:], Redir: redir}, nil

	case "exit":
		code := 0
		if len(tokens) > 1 {
			parsed, err := strconv.Atoi(tokens[1])
			if err != nil {
				return nil, fmt.Errorf("exit: %s: numeric argument required", tokens[1])
			}
			code = parsed
		}
		return &Exit{Code: code}, nil

	case "type":
		if len(tokens) < 2 {
			return nil, fmt.Errorf("type: missing argument")
		}
		return &Type{Arg: tokens[1], Redir: redir}, nil

	case "pwd":
		return &Pwd{Redir: redir}, nil

	case "cd":
		arg := env.Getenv(EnvHome)
		if len(tokens) > 1 {
			arg = ExpandHome(env, tokens[1])
		}
		return &Cd{Arg: arg}, nil

	case "cat":
		args := make([]string, 0, len(tokens)-1)
		for _, tok := range tokens[1:] {
			args = append(args, ExpandHome(env, tok))
		}
		return &Cat{Args: args, Redir: redir}, nil

	default:
		return &External{Name: tokens[0], Args: tokens[1:], Redir: redir}, nil
	}
}

// ExpandHome replaces a leading ~ with the user's home directory, leaving
// the remainder of the path unchanged.
func ExpandHome(env vos.VEnv, path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := env.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
