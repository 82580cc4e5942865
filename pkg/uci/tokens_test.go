package uci

import "testing"

func TestTokensNextAndPeek(t *testing.T) {
	toks := newTokens("  go   wtime\t300000 ")

	if tok, ok := toks.peek(); !ok || tok != "go" {
		t.Fatalf("peek = %q, %v", tok, ok)
	}
	// peek must not consume
	if tok, _ := toks.next(); tok != "go" {
		t.Fatalf("next after peek = %q", tok)
	}
	if tok, _ := toks.next(); tok != "wtime" {
		t.Fatalf("next = %q", tok)
	}
	if tok, _ := toks.next(); tok != "300000" {
		t.Fatalf("next = %q", tok)
	}
	if tok, ok := toks.next(); ok {
		t.Fatalf("expected exhaustion, got %q", tok)
	}
	// exhausted streams stay exhausted
	if _, ok := toks.peek(); ok {
		t.Fatal("peek succeeded on an exhausted stream")
	}
}

func TestTokensRemainder(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		consume int
		want    string
	}{
		{"keeps interior spacing", "setoption name X value a   b  c", 4, "a   b  c"},
		{"strips leading separator run", "info string   spaced   out", 2, "spaced   out"},
		{"strips trailing whitespace", "a b   ", 1, "b"},
		{"empty remainder", "a", 1, ""},
		{"whole line untouched", "one  two", 0, "one  two"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := newTokens(tc.line)
			for i := 0; i < tc.consume; i++ {
				if _, ok := toks.next(); !ok {
					t.Fatalf("line exhausted after %d tokens", i)
				}
			}
			if got := toks.remainder(); got != tc.want {
				t.Errorf("remainder = %q, want %q", got, tc.want)
			}
			// remainder consumes the rest of the line
			if _, ok := toks.next(); ok {
				t.Error("next succeeded after remainder")
			}
		})
	}
}
