package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/uzichess/uzi/internal/book"
	"github.com/uzichess/uzi/pkg/config"
)

// run feeds a scripted session to a fresh shell and returns the output lines.
func run(t *testing.T, script string) []string {
	t.Helper()
	cfg := config.DefaultConfig()
	var out bytes.Buffer
	eng := New(cfg, strings.NewReader(script), &out, book.New(), nil)
	if err := eng.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestHandshake(t *testing.T) {
	lines := run(t, "uci\nisready\nquit\n")

	if len(lines) < 4 {
		t.Fatalf("handshake produced %d lines: %v", len(lines), lines)
	}
	if lines[0] != "id name uzi 0.3.0" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "id author The Uzi Authors" {
		t.Errorf("second line = %q", lines[1])
	}

	var sawOption, sawUciOk, sawReadyOk bool
	for _, l := range lines[2:] {
		switch {
		case strings.HasPrefix(l, "option name "):
			sawOption = true
		case l == "uciok":
			if !sawOption {
				t.Error("uciok arrived before any option declaration")
			}
			sawUciOk = true
		case l == "readyok":
			if !sawUciOk {
				t.Error("readyok arrived before uciok")
			}
			sawReadyOk = true
		}
	}
	if !sawOption || !sawUciOk || !sawReadyOk {
		t.Errorf("incomplete handshake: %v", lines)
	}
}

func TestGoPlaysBookMove(t *testing.T) {
	lines := run(t, "position startpos\ngo movetime 1000\nquit\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want info + bestmove: %v", len(lines), lines)
	}
	if lines[0] != "info depth 1 pv e2e4 score cp 15" {
		t.Errorf("info line = %q", lines[0])
	}
	if lines[1] != "bestmove e2e4" {
		t.Errorf("bestmove line = %q", lines[1])
	}
}

func TestGoFollowsHistory(t *testing.T) {
	lines := run(t, "position startpos moves e2e4 c7c5\ngo depth 1\nquit\n")

	if len(lines) != 2 || lines[1] != "bestmove g1f3" {
		t.Errorf("expected the sicilian book reply, got %v", lines)
	}
}

func TestGoOffBookConcedes(t *testing.T) {
	lines := run(t, "position startpos moves a2a3\ngo depth 1\nquit\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "string out of book") {
		t.Errorf("info line = %q", lines[0])
	}
	if lines[1] != "bestmove 0000" {
		t.Errorf("bestmove line = %q", lines[1])
	}
}

// A searchmoves restriction that excludes the book move forces the fallback.
func TestGoHonorsSearchMoves(t *testing.T) {
	lines := run(t, "position startpos\ngo searchmoves d2d4\nquit\n")

	if len(lines) != 2 || lines[1] != "bestmove 0000" {
		t.Errorf("restriction ignored: %v", lines)
	}
}

func TestMalformedLinesAreDropped(t *testing.T) {
	lines := run(t, "debug banana\ngo\nisready\nquit\n")

	if len(lines) != 1 || lines[0] != "readyok" {
		t.Errorf("malformed lines leaked output: %v", lines)
	}
}

func TestNewGameResetsHistory(t *testing.T) {
	script := strings.Join([]string{
		"position startpos moves e2e4",
		"ucinewgame",
		"go depth 1",
		"quit",
	}, "\n") + "\n"
	lines := run(t, script)

	// after the reset the shell is back at the start position
	if len(lines) != 2 || lines[1] != "bestmove e2e4" {
		t.Errorf("expected the opening book move after reset, got %v", lines)
	}
}

func TestSetOptionTogglesCurrLine(t *testing.T) {
	script := strings.Join([]string{
		"setoption name UCI_ShowCurrLine value true",
		"position startpos",
		"go depth 1",
		"quit",
	}, "\n") + "\n"
	lines := run(t, script)

	if len(lines) != 2 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "currline e2e4") {
		t.Errorf("currline missing from info: %q", lines[0])
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	// no trailing quit; EOF must end the loop cleanly
	lines := run(t, "isready\n")
	if len(lines) != 1 || lines[0] != "readyok" {
		t.Errorf("unexpected output: %v", lines)
	}
}
