package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokens(t *testing.T) {
	cases := []struct {
		name          string
		tokens        []string
		wantCommand   []string
		wantRedirTail []string
	}{
		{
			name:          "no operator",
			tokens:        []string{"ls", "-l", "/tmp"},
			wantCommand:   []string{"ls", "-l", "/tmp"},
			wantRedirTail: nil,
		},
		{
			name:          "truncate stdout",
			tokens:        []string{"ls", "/x", ">", "/y"},
			wantCommand:   []string{"ls", "/x"},
			wantRedirTail: []string{">", "/y"},
		},
		{
			name:          "append stderr",
			tokens:        []string{"cat", "a", "2>>", "err.log"},
			wantCommand:   []string{"cat", "a"},
			wantRedirTail: []string{"2>>", "err.log"},
		},
		{
			name:          "only first operator splits",
			tokens:        []string{"echo", "hi", ">", "a", ">>", "b"},
			wantCommand:   []string{"echo", "hi"},
			wantRedirTail: []string{">", "a", ">>", "b"},
		},
		{
			name:          "operator embedded in word is not an operator",
			tokens:        []string{"echo", "a>b"},
			wantCommand:   []string{"echo", "a>b"},
			wantRedirTail: nil,
		},
		{
			name:          "leading operator",
			tokens:        []string{">", "/tmp/out"},
			wantCommand:   []string{},
			wantRedirTail: []string{">", "/tmp/out"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			command, redir := SplitTokens(tc.tokens)
			assert.Equal(t, tc.wantCommand, command)
			assert.Equal(t, tc.wantRedirTail, redir)
		})
	}
}

func TestParseRedirection(t *testing.T) {
	cases := []struct {
		name     string
		tokens   []string
		expected *Redirection
	}{
		{"empty", nil, nil},
		{"truncate stdout", []string{">", "/tmp/f"}, &Redirection{ModeTruncate, ChannelStdout, "/tmp/f"}},
		{"truncate stdout explicit", []string{"1>", "/tmp/f"}, &Redirection{ModeTruncate, ChannelStdout, "/tmp/f"}},
		{"truncate stderr", []string{"2>", "/tmp/f"}, &Redirection{ModeTruncate, ChannelStderr, "/tmp/f"}},
		{"append stdout", []string{">>", "/tmp/f"}, &Redirection{ModeAppend, ChannelStdout, "/tmp/f"}},
		{"append stdout explicit", []string{"1>>", "/tmp/f"}, &Redirection{ModeAppend, ChannelStdout, "/tmp/f"}},
		{"append stderr", []string{"2>>", "/tmp/f"}, &Redirection{ModeAppend, ChannelStderr, "/tmp/f"}},
		{"unknown operator", []string{"3>", "/tmp/f"}, nil},
		{"missing target", []string{">"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseRedirection(tc.tokens))
		})
	}
}
