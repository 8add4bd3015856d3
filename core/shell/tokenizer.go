package shell

import (
	"strings"
	"unicode"
)

// scanState tracks the quoting context while a line is consumed. It lives on
// the stack of a single Tokenize call and is never shared.
type scanState struct {
	inSingle bool
	inDouble bool
	escaped  bool
}

// Tokenize splits a raw input line into shell words, resolving quotes and
// escapes:
//
//   - Text in single quotes is taken verbatim, backslash included.
//   - In double quotes a backslash only escapes a double quote, backslash,
//     backquote or dollar sign; before any other character both the
//     backslash and the character are kept.
//   - Outside quotes a backslash always escapes the next character, and
//     unquoted whitespace separates words.
//
// Unterminated quotes and a trailing backslash are accepted as-is rather
// than reported; whatever accumulated becomes the final word.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	var st scanState

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range strings.TrimSpace(line) {
		switch {
		case st.escaped:
			if st.inDouble && !escapableInDoubleQuotes(r) {
				cur.WriteRune('\\')
			}
			cur.WriteRune(r)
			st.escaped = false

		case r == '\'' && !st.inDouble:
			st.inSingle = !st.inSingle

		case r == '"' && !st.inSingle:
			st.inDouble = !st.inDouble

		case r == '\\' && !st.inSingle:
			st.escaped = true

		case unicode.IsSpace(r) && !st.inSingle && !st.inDouble:
			flush()

		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// escapableInDoubleQuotes reports whether a backslash before r is consumed
// inside double quotes.
func escapableInDoubleQuotes(r rune) bool {
	switch r {
	case '"', '\\', '`', '$':
		return true
	}
	return false
}
