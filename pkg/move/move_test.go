package move

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tokens := []string{
		"e2e4", "g1f3", "a1h8", "h7h8q", "a2a1r", "b7b8n", "c7c8b", "0000",
	}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			m, err := Parse(tok)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tok, err)
			}
			if got := m.String(); got != tok {
				t.Errorf("round trip %q -> %q", tok, got)
			}
		})
	}
}

func TestParseRejectsMalformedTokens(t *testing.T) {
	tokens := []string{
		"", "e2", "e2e", "e2e4e5", "i2e4", "e0e4", "e2i4", "e2e9", "e7e8k", "22e4", "e2e4 ",
	}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			if m, err := Parse(tok); err == nil {
				t.Errorf("Parse(%q) = %v, expected an error", tok, m)
			} else if !errors.Is(err, ErrMove) {
				t.Errorf("Parse(%q) error does not wrap ErrMove: %v", tok, err)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	testCases := []struct {
		sq   Square
		want string
	}{
		{0, "a1"},
		{7, "h1"},
		{56, "a8"},
		{63, "h8"},
		{28, "e4"},
	}
	for _, tc := range testCases {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("Square(%d).String() = %q, want %q", tc.sq, got, tc.want)
		}
	}
}

func TestNullMove(t *testing.T) {
	m, err := Parse("0000")
	if err != nil {
		t.Fatalf("Parse(0000) failed: %v", err)
	}
	if m != (Move{}) {
		t.Errorf("null move is not the zero value: %+v", m)
	}
	if got := (Move{}).String(); got != "0000" {
		t.Errorf("zero value prints as %q", got)
	}
}

func TestParseFields(t *testing.T) {
	m := MustParse("e7e8q")
	if m.From.String() != "e7" || m.To.String() != "e8" || m.Promo != Queen {
		t.Errorf("unexpected decode: %+v", m)
	}
}
