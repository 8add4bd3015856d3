package shell

// RedirMode selects how a redirection treats existing file contents.
type RedirMode int

const (
	// ModeTruncate replaces the destination's contents.
	ModeTruncate RedirMode = iota
	// ModeAppend extends the destination's contents.
	ModeAppend
)

// Channel identifies the logical stream a piece of output belongs to,
// independent of where it ultimately lands.
type Channel int

const (
	ChannelStdout Channel = iota
	ChannelStderr
)

// Redirection directs one output channel of a command to a file. The zero
// value is meaningless; directives only come out of ParseRedirection.
type Redirection struct {
	Mode    RedirMode
	Channel Channel
	Path    string
}

// redirOps is the closed set of recognized redirection operator tokens.
var redirOps = map[string]struct {
	mode    RedirMode
	channel Channel
}{
	">":   {ModeTruncate, ChannelStdout},
	"1>":  {ModeTruncate, ChannelStdout},
	"2>":  {ModeTruncate, ChannelStderr},
	">>":  {ModeAppend, ChannelStdout},
	"1>>": {ModeAppend, ChannelStdout},
	"2>>": {ModeAppend, ChannelStderr},
}

// SplitTokens partitions a token sequence at the first redirection operator.
// Everything before it is the command, the operator and everything after it
// form the redirection tail. The grammar is "command args... [operator
// target]"; only the first operator is honored.
func SplitTokens(tokens []string) (command, redirection []string) {
	for i, tok := range tokens {
		if _, ok := redirOps[tok]; ok {
			return tokens[:i], tokens[i:]
		}
	}
	return tokens, nil
}

// ParseRedirection interprets a redirection tail produced by SplitTokens.
// The first token picks mode and channel, the second is the destination
// path. Anything short of that yields no directive.
func ParseRedirection(tokens []string) *Redirection {
	if len(tokens) < 2 {
		return nil
	}
	op, ok := redirOps[tokens[0]]
	if !ok {
		// Unreachable via SplitTokens, kept for direct callers.
		return nil
	}
	return &Redirection{
		Mode:    op.mode,
		Channel: op.channel,
		Path:    tokens[1],
	}
}
