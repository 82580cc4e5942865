package uci

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// goKeywords is the membership test that decides where a variadic
// "searchmoves" run ends: a token that is itself a "go" keyword starts the
// next field, anything else is another move.
var goKeywords = map[string]bool{
	"searchmoves": true,
	"ponder":      true,
	"wtime":       true,
	"btime":       true,
	"winc":        true,
	"binc":        true,
	"movestogo":   true,
	"depth":       true,
	"nodes":       true,
	"mate":        true,
	"movetime":    true,
	"infinite":    true,
}

// Parse decodes one complete GUI command line. It never panics on malformed
// input; either a fully valid command or a typed *Error comes back, never a
// partial command. Trailing tokens after a bare command such as "uci" or
// "stop" are ignored, matching the protocol's advice to stay permissive
// about unknown input.
func Parse(line string) (GuiCmd, error) {
	toks := newTokens(line)
	cmd, ok := toks.next()
	if !ok {
		return nil, newErr(MissingCmd)
	}
	switch cmd {
	case "uci":
		return Uci{}, nil
	case "isready":
		return IsReady{}, nil
	case "ucinewgame":
		return NewGame{}, nil
	case "stop":
		return Stop{}, nil
	case "ponderhit":
		return Ponderhit{}, nil
	case "debug":
		return parseDebug(toks)
	case "setoption":
		return parseSetOpt(toks)
	case "position":
		return parsePosition(toks)
	case "go":
		return parseGo(toks)
	}
	log.Debugf("unrecognized command keyword %q", cmd)
	return nil, &Error{Kind: UnknownOpt, Raw: cmd}
}

func parseDebug(toks *tokens) (GuiCmd, error) {
	tok, _ := toks.next()
	switch tok {
	case "on":
		return Debug{On: true}, nil
	case "off":
		return Debug{On: false}, nil
	}
	return nil, newErr(MissingOnOff)
}

// parseSetOpt frames "setoption name <id...> [value <rest>]". The id is
// consumed token by token until a literal "value" or end of line; the value
// is taken verbatim from the rest of the line and left unparsed.
func parseSetOpt(toks *tokens) (GuiCmd, error) {
	if tok, ok := toks.next(); !ok || tok != "name" {
		return nil, newErr(SetOptErr)
	}
	var id []string
	for {
		tok, ok := toks.next()
		if !ok {
			if len(id) == 0 {
				return nil, newErr(SetOptErr)
			}
			return SetOpt{Name: strings.Join(id, " ")}, nil
		}
		if tok == "value" {
			if len(id) == 0 {
				return nil, newErr(SetOptErr)
			}
			return SetOpt{
				Name:     strings.Join(id, " "),
				Value:    toks.remainder(),
				HasValue: true,
			}, nil
		}
		id = append(id, tok)
	}
}

// parsePosition handles "position [startpos|fen <6 fields>] [moves ...]".
// The six FEN fields are rejoined with single spaces and stored as-is; FEN's
// own grammar is not this parser's business.
func parsePosition(toks *tokens) (GuiCmd, error) {
	b := NewPosBuilder()
	tok, ok := toks.next()
	if ok {
		switch tok {
		case "startpos":
			b.StartPos()
		case "fen":
			fields := make([]string, 0, 6)
			for len(fields) < 6 {
				f, ok := toks.next()
				if !ok {
					return nil, newErr(What)
				}
				fields = append(fields, f)
			}
			b.Fen(strings.Join(fields, " "))
		case "moves":
			// moves with no base in front of them
			return nil, newErr(Position)
		default:
			return nil, &Error{Kind: UnknownOpt, Raw: tok}
		}
		if tok, ok = toks.next(); ok {
			if tok != "moves" {
				return nil, &Error{Kind: UnknownOpt, Raw: tok}
			}
			for {
				mv, ok := toks.next()
				if !ok {
					break
				}
				b.AddMove(mv)
			}
		}
	}
	pos, err := b.Build()
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// parseGo scans keyword/value pairs left to right in any order and defers
// required-field validation to the builder.
func parseGo(toks *tokens) (GuiCmd, error) {
	b := NewGoBuilder()
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		switch tok {
		case "searchmoves":
			for {
				mv, ok := toks.peek()
				if !ok || goKeywords[mv] {
					break
				}
				toks.next()
				b.SearchMoves(mv)
			}
		case "ponder":
			b.Ponder()
		case "infinite":
			b.Infinite()
		case "wtime", "btime", "winc", "binc", "movetime":
			d, err := millisArg(toks, tok)
			if err != nil {
				return nil, err
			}
			switch tok {
			case "wtime":
				b.WTime(d)
			case "btime":
				b.BTime(d)
			case "winc":
				b.WInc(d)
			case "binc":
				b.BInc(d)
			case "movetime":
				b.MoveTime(d)
			}
		case "movestogo", "depth", "mate":
			n, err := numArg(toks, tok)
			if err != nil {
				return nil, err
			}
			switch tok {
			case "movestogo":
				b.MovesToGo(n)
			case "depth":
				b.Depth(n)
			case "mate":
				b.Mate(n)
			}
		case "nodes":
			raw, ok := toks.next()
			if !ok {
				return nil, &Error{Kind: GoErr, Field: tok}
			}
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, &Error{Kind: BadNumber, Field: tok, Raw: raw}
			}
			b.Nodes(n)
		default:
			return nil, &Error{Kind: UnknownOpt, Raw: tok}
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// millisArg reads a clock argument. Values are passed through unclamped;
// some frontends do send negative remaining time.
func millisArg(toks *tokens, field string) (time.Duration, error) {
	raw, ok := toks.next()
	if !ok {
		return 0, &Error{Kind: GoErr, Field: field}
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, badMillis(field, raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func numArg(toks *tokens, field string) (uint16, error) {
	raw, ok := toks.next()
	if !ok {
		return 0, &Error{Kind: GoErr, Field: field}
	}
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &Error{Kind: BadNumber, Field: field, Raw: raw}
	}
	return uint16(n), nil
}
