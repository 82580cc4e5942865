package uci

import (
	"errors"
	"fmt"
)

// ErrKind enumerates every way protocol input can be rejected. The set is
// closed; callers can switch over it exhaustively and no recovery is
// attempted inside the codec.
type ErrKind uint8

const (
	// BadBool marks a boolean token that is neither "true" nor "false".
	BadBool ErrKind = iota
	// BadMillis marks a clock keyword whose argument is not a millisecond count.
	BadMillis
	// BadNumber marks any other numeric token that failed to parse.
	BadNumber
	// BadOpponent marks a malformed UCI_Opponent value.
	BadOpponent
	// BadPlayerType marks an opponent type other than "computer" or "human".
	BadPlayerType
	// BadTitle marks an unknown opponent title.
	BadTitle
	// GoErr marks a "go" keyword that is missing its required argument.
	GoErr
	// MissingCmd marks an empty or whitespace-only line.
	MissingCmd
	// MissingOnOff marks a "debug" command without a valid on/off argument.
	MissingOnOff
	// NothingSetForGo marks a "go" with no limit set and "infinite" unset.
	NothingSetForGo
	// Position marks a "position" command with no startpos/fen base.
	Position
	// SetOptErr marks a "setoption" without an option name.
	SetOptErr
	// UnknownOpt marks an unrecognized command or sub-keyword.
	UnknownOpt
	// What is the fallback for grammar violations not otherwise classified.
	What
)

var errKindNames = [...]string{
	BadBool:         "bad boolean",
	BadMillis:       "bad millisecond value",
	BadNumber:       "bad number",
	BadOpponent:     "bad opponent value",
	BadPlayerType:   "bad player type",
	BadTitle:        "bad title",
	GoErr:           "broken go command",
	MissingCmd:      "missing command",
	MissingOnOff:    "missing on/off",
	NothingSetForGo: "nothing set for go",
	Position:        "no base position",
	SetOptErr:       "broken setoption command",
	UnknownOpt:      "unknown option",
	What:            "unclassified input",
}

func (k ErrKind) String() string {
	if int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return "unclassified input"
}

// Error is the one error type the codec produces. Field and Raw are filled
// only where they aid diagnosis: Field names the keyword being parsed and Raw
// holds the offending token.
type Error struct {
	Kind  ErrKind
	Field string
	Raw   string
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Raw != "":
		return fmt.Sprintf("uci: %s: %s=%q", e.Kind, e.Field, e.Raw)
	case e.Field != "":
		return fmt.Sprintf("uci: %s: %s", e.Kind, e.Field)
	case e.Raw != "":
		return fmt.Sprintf("uci: %s: %q", e.Kind, e.Raw)
	}
	return "uci: " + e.Kind.String()
}

// Is matches codec errors on kind alone, so errors.Is works against
// kind-only targets regardless of the diagnostic payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the codec error kind from err, when it carries one.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newErr(kind ErrKind) *Error {
	return &Error{Kind: kind}
}

func badMillis(field, raw string) *Error {
	return &Error{Kind: BadMillis, Field: field, Raw: raw}
}
