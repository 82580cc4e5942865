/*
Package uci is a bidirectional codec for the Universal Chess Interface text
protocol: it parses lines a GUI sends into typed commands an engine can act
on, and formats the commands an engine produces into canonical lines for the
GUI.

Both directions work on one complete line at a time. There is no shared state
anywhere in the package, so Parse and every String method are safe to call
concurrently on independent values; the two builders are the only exception
and are meant for single-threaded, single-use construction.

# GUI to engine

Parse turns one line into a GuiCmd variant or a typed *Error. It never
panics: malformed input is an expected condition, not a bug.

	cmd, err := uci.Parse("position startpos moves e2e4 e7e5")
	if err != nil {
		// a permissive frontend can simply drop the line
	}
	switch c := cmd.(type) {
	case uci.Pos:
		// c.Moves holds the moves in play order
	case uci.Go:
		// every limit is optional; at least one is always set
	}

The compound commands "go" and "position" can list their fields in any order,
so both are assembled through builders that validate only at Build time. The
builders are also exported for callers that want to construct commands
programmatically.

# Engine to GUI

Every EngCmd variant formats itself with String, which is total and returns
exactly one line with no trailing newline. Optional fields of Info are
emitted in the protocol's fixed order regardless of how the value was filled
in, since frontends tend to rely on the conventional field positions.

	d := uint16(12)
	line := uci.Info{Depth: &d, Score: &uci.Score{Cp: 34}}.String()
	// "info depth 12 score cp 34"

Move tokens and option tokens are opaque here: the codec frames where they
start and end on the line and delegates their internal structure to the move
and opt packages. Values out of the protocol's conventional ranges (permille
fields and the like) round-trip unchanged; validating them is the consumer's
job, not the codec's.
*/
package uci
