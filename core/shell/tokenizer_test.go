package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain words",
			line:     "echo hello world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "whitespace runs collapse",
			line:     "echo hello    world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "leading and trailing whitespace",
			line:     "   ls   ",
			expected: []string{"ls"},
		},
		{
			name:     "single quotes keep whitespace",
			line:     "echo 'a  b'",
			expected: []string{"echo", "a  b"},
		},
		{
			name:     "single quotes keep backslashes",
			line:     `echo 'a\nb'`,
			expected: []string{"echo", `a\nb`},
		},
		{
			name:     "double quotes keep whitespace",
			line:     `echo "bar    bar"  "shell's"  "foo"`,
			expected: []string{"echo", "bar    bar", "shell's", "foo"},
		},
		{
			name:     "double quote escapes quote",
			line:     `echo "hello\"insidequotes"script\"`,
			expected: []string{"echo", `hello"insidequotesscript"`},
		},
		{
			name:     "double quote keeps backslash before ordinary char",
			line:     `echo "a\nb"`,
			expected: []string{"echo", `a\nb`},
		},
		{
			name:     "double quote resolves escaped backslash",
			line:     `echo "hello'script'\\n'world"`,
			expected: []string{"echo", `hello'script'\n'world`},
		},
		{
			name:     "double quote escapes dollar and backquote",
			line:     "echo \"\\$HOME \\` end\"",
			expected: []string{"echo", "$HOME ` end"},
		},
		{
			name:     "unquoted backslash escapes spaces",
			line:     `echo hello\ \ \ \ \ \ world`,
			expected: []string{"echo", "hello      world"},
		},
		{
			name:     "unquoted backslash escapes quote",
			line:     `echo \'quoted\'`,
			expected: []string{"echo", "'quoted'"},
		},
		{
			name:     "adjacent quoted fragments join",
			line:     `echo 'a'"b"c`,
			expected: []string{"echo", "abc"},
		},
		{
			name:     "unterminated single quote is permissive",
			line:     "echo 'abc",
			expected: []string{"echo", "abc"},
		},
		{
			name:     "unterminated double quote is permissive",
			line:     `echo "abc def`,
			expected: []string{"echo", "abc def"},
		},
		{
			name:     "trailing escape is dropped",
			line:     `echo abc\`,
			expected: []string{"echo", "abc"},
		},
		{
			name:     "empty line",
			line:     "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			line:     "   \t  ",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.line))
		})
	}
}

// Tokenizing the space-joined reconstruction of plain tokens must give the
// original list back.
func TestTokenizeRoundTrip(t *testing.T) {
	lists := [][]string{
		{"ls"},
		{"echo", "hello", "world"},
		{"cat", "/tmp/a.txt", "/tmp/b.txt"},
		{"type", "pwd"},
	}

	for _, tokens := range lists {
		t.Run(strings.Join(tokens, "_"), func(t *testing.T) {
			assert.Equal(t, tokens, Tokenize(strings.Join(tokens, " ")))
		})
	}
}
