package uci

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", newErr(MissingCmd), "missing command"},
		{"with field and raw", badMillis("wtime", "soon"), `wtime="soon"`},
		{"with raw only", &Error{Kind: UnknownOpt, Raw: "banana"}, `"banana"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if msg := tc.err.Error(); !strings.Contains(msg, tc.want) {
				t.Errorf("Error() = %q, want it to contain %q", msg, tc.want)
			}
		})
	}
}

// errors.Is must match on kind alone, ignoring the diagnostic payload.
func TestErrorIsMatchesKind(t *testing.T) {
	err := badMillis("btime", "xx")
	if !errors.Is(err, &Error{Kind: BadMillis}) {
		t.Error("BadMillis with payload did not match a bare BadMillis target")
	}
	if errors.Is(err, &Error{Kind: BadNumber}) {
		t.Error("BadMillis matched a BadNumber target")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("reading command: %w", newErr(NothingSetForGo))
	kind, ok := KindOf(wrapped)
	if !ok || kind != NothingSetForGo {
		t.Errorf("KindOf(wrapped) = %v, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf claimed a foreign error")
	}
}
