package uci

import "strings"

// isSpace reports whether b is the ASCII whitespace the protocol separates
// fields with.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// tokens is a lazy, forward-only cursor over the whitespace-separated words
// of one command line. next consumes a word, peek looks at the upcoming one,
// and remainder hands back the unconsumed suffix verbatim so free-text
// payloads keep their original interior spacing.
type tokens struct {
	line string
	pos  int
}

func newTokens(line string) *tokens {
	return &tokens{line: line}
}

func (t *tokens) skipSpace() {
	for t.pos < len(t.line) && isSpace(t.line[t.pos]) {
		t.pos++
	}
}

// next returns the next word, or false once the line is exhausted.
func (t *tokens) next() (string, bool) {
	t.skipSpace()
	if t.pos >= len(t.line) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.line) && !isSpace(t.line[t.pos]) {
		t.pos++
	}
	return t.line[start:t.pos], true
}

// peek returns the upcoming word without consuming it.
func (t *tokens) peek() (string, bool) {
	saved := t.pos
	word, ok := t.next()
	t.pos = saved
	return word, ok
}

// remainder consumes and returns the rest of the line. The separator run that
// ended the previous word and any trailing whitespace are stripped; spacing
// between the remaining words is untouched.
func (t *tokens) remainder() string {
	rest := strings.TrimLeft(t.line[t.pos:], " \t\r\n")
	t.pos = len(t.line)
	return strings.TrimRight(rest, " \t\r\n")
}
