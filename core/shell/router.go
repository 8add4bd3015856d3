package shell

import (
	"io"
	"os"

	"github.com/calder-martin/picosh/core/vos"
	"github.com/spf13/afero"
)

// OutputChunk is the unit of command output: a piece of text tagged with the
// stream it semantically belongs to.
type OutputChunk struct {
	Text    string
	Channel Channel
}

// FileSink is the capability a redirection writes through. Keeping it small
// lets tests swap the filesystem for an in-memory one.
type FileSink interface {
	// EnsureExists creates (or, for truncate mode, empties) the destination
	// so redirection touches the file even if no chunk is written to it.
	EnsureExists() error

	// WriteString writes text to the destination per the sink's mode.
	WriteString(text string) error
}

// NewFileSink returns a FileSink for the directive's destination on fsys.
func NewFileSink(fsys afero.Fs, redir *Redirection) FileSink {
	return &aferoSink{fsys: fsys, path: redir.Path, mode: redir.Mode}
}

type aferoSink struct {
	fsys afero.Fs
	path string
	mode RedirMode
}

func (s *aferoSink) EnsureExists() error {
	if s.mode == ModeTruncate {
		return afero.WriteFile(s.fsys, s.path, nil, 0644)
	}

	// Append keeps whatever is there, creating the file only when missing.
	exists, err := afero.Exists(s.fsys, s.path)
	if err != nil {
		return err
	}
	if !exists {
		return afero.WriteFile(s.fsys, s.path, nil, 0644)
	}
	return nil
}

func (s *aferoSink) WriteString(text string) error {
	if s.mode == ModeTruncate {
		return afero.WriteFile(s.fsys, s.path, []byte(text), 0644)
	}

	fd, err := s.fsys.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = fd.WriteString(text)
	return err
}

// Router decides where command output lands: the terminal streams or a
// redirection target.
type Router struct {
	stdout io.Writer
	stderr io.Writer
	fsys   afero.Fs
}

// NewRouter builds a Router over the interpreter's terminal streams and
// filesystem.
func NewRouter(vio vos.VIO, fsys afero.Fs) *Router {
	return &Router{
		stdout: vio.Stdout(),
		stderr: vio.Stderr(),
		fsys:   fsys,
	}
}

// Dispatch routes one command invocation's collected chunks against an
// optional redirection. The destination is ensured exactly once, before any
// write; callers aggregate per-channel text so each channel is written at
// most once and truncation can't clobber an earlier chunk.
//
// A chunk on the redirected channel goes to the file; every other chunk goes
// to the terminal stream it belongs to.
func (r *Router) Dispatch(chunks []OutputChunk, redir *Redirection) error {
	var sink FileSink
	if redir != nil {
		sink = NewFileSink(r.fsys, redir)
		if err := sink.EnsureExists(); err != nil {
			return err
		}
	}

	for _, chunk := range chunks {
		if chunk.Text == "" {
			continue
		}

		if redir != nil && chunk.Channel == redir.Channel {
			if err := sink.WriteString(chunk.Text); err != nil {
				return err
			}
			continue
		}

		w := r.stdout
		if chunk.Channel == ChannelStderr {
			w = r.stderr
		}
		if _, err := io.WriteString(w, chunk.Text); err != nil {
			return err
		}
	}

	return nil
}
