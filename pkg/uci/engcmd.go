package uci

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/uzichess/uzi/pkg/move"
)

// EngCmd is a command sent by the engine to the GUI. Formatting is total:
// String never fails and yields exactly one line with no trailing newline.
type EngCmd interface {
	engCmd()
	fmt.Stringer
}

// IdName announces the engine's name and version in reply to "uci".
type IdName string

// IdAuthor announces the engine's author in reply to "uci".
type IdAuthor string

// UciOk closes the identification block: all ids and option declarations
// have been sent and the engine is in UCI mode.
type UciOk struct{}

// ReadyOk answers "isready" once all prior input has been processed.
type ReadyOk struct{}

// BestMove reports the finished search result and, optionally, the move the
// engine would like to ponder on. Every "go" must eventually be answered
// with one of these.
type BestMove struct {
	Best   move.Move
	Ponder *move.Move
}

// HasOpt declares a configurable engine option. The declaration token is
// owned by the option subsystem; the codec only places it on the line.
type HasOpt struct {
	Opt fmt.Stringer
}

func (IdName) engCmd()   {}
func (IdAuthor) engCmd() {}
func (UciOk) engCmd()    {}
func (ReadyOk) engCmd()  {}
func (BestMove) engCmd() {}
func (Info) engCmd()     {}
func (HasOpt) engCmd()   {}

func (c IdName) String() string   { return "id name " + string(c) }
func (c IdAuthor) String() string { return "id author " + string(c) }
func (UciOk) String() string      { return "uciok" }
func (ReadyOk) String() string    { return "readyok" }

func (c BestMove) String() string {
	var sb strings.Builder
	sb.WriteString("bestmove ")
	sb.WriteString(c.Best.String())
	if c.Ponder != nil {
		sb.WriteString(" ponder ")
		sb.WriteString(c.Ponder.String())
	}
	return sb.String()
}

func (c HasOpt) String() string { return c.Opt.String() }

// Info is the engine's search report. Every field is optional and
// independent of the others; String emits the fields that are present in the
// protocol's canonical order, whatever order they were filled in. Permille
// fields (HashFull, CpuLoad) are passed through unclamped.
type Info struct {
	// Depth is the search depth in plies.
	Depth *uint16
	// SelDepth is the selective search depth; it is only rendered when Depth
	// is present on the same line.
	SelDepth *uint16
	// Nodes searched so far, the "node" keyword.
	Nodes *uint32
	// Time searched, rendered as integer milliseconds.
	Time *time.Duration
	// Pv is the best line found.
	Pv []move.Move
	// MultiPv ranks this line in k-best mode.
	MultiPv *MultiPv
	// Score from the engine's point of view.
	Score *Score
	// CurrMove is the move currently being searched.
	CurrMove *move.Move
	// HashFull is how full the hash table is, in permille.
	HashFull *uint16
	// Nps is nodes per second.
	Nps *uint32
	// TbHits counts endgame-tablebase hits.
	TbHits *uint32
	// SbHits counts Shredder-database hits.
	SbHits *uint32
	// CpuLoad is the engine's CPU usage in permille.
	CpuLoad *uint16
	// Text is free text for the GUI to display; on the wire the rest of the
	// line after "string" belongs to it.
	Text *string
	// Refutation of a move, sent only when UCI_ShowRefutations is on.
	Refutation *Refutation
	// CurrLine being calculated, sent only when UCI_ShowCurrLine is on.
	CurrLine *CurrLine
}

func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString("info")
	if i.Depth != nil {
		sb.WriteString(" depth ")
		sb.WriteString(strconv.FormatUint(uint64(*i.Depth), 10))
		if i.SelDepth != nil {
			sb.WriteString(" seldepth ")
			sb.WriteString(strconv.FormatUint(uint64(*i.SelDepth), 10))
		}
	}
	if i.Nodes != nil {
		sb.WriteString(" node ")
		sb.WriteString(strconv.FormatUint(uint64(*i.Nodes), 10))
	}
	if i.Time != nil {
		sb.WriteString(" time ")
		sb.WriteString(strconv.FormatInt(i.Time.Milliseconds(), 10))
	}
	if len(i.Pv) > 0 {
		sb.WriteString(" pv")
		for _, m := range i.Pv {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}
	if i.MultiPv != nil {
		sb.WriteByte(' ')
		sb.WriteString(i.MultiPv.String())
	}
	if i.Score != nil {
		sb.WriteByte(' ')
		sb.WriteString(i.Score.String())
	}
	if i.CurrMove != nil {
		sb.WriteString(" currmove ")
		sb.WriteString(i.CurrMove.String())
	}
	if i.HashFull != nil {
		sb.WriteString(" hashfull ")
		sb.WriteString(strconv.FormatUint(uint64(*i.HashFull), 10))
	}
	if i.Nps != nil {
		sb.WriteString(" nps ")
		sb.WriteString(strconv.FormatUint(uint64(*i.Nps), 10))
	}
	if i.TbHits != nil {
		sb.WriteString(" tbhits ")
		sb.WriteString(strconv.FormatUint(uint64(*i.TbHits), 10))
	}
	if i.SbHits != nil {
		sb.WriteString(" sbhits ")
		sb.WriteString(strconv.FormatUint(uint64(*i.SbHits), 10))
	}
	if i.CpuLoad != nil {
		sb.WriteString(" cpuload ")
		sb.WriteString(strconv.FormatUint(uint64(*i.CpuLoad), 10))
	}
	if i.Text != nil {
		sb.WriteString(" string ")
		sb.WriteString(*i.Text)
	}
	if i.Refutation != nil {
		sb.WriteByte(' ')
		sb.WriteString(i.Refutation.String())
	}
	if i.CurrLine != nil {
		sb.WriteByte(' ')
		sb.WriteString(i.CurrLine.String())
	}
	return sb.String()
}

// ScoreBound marks a score as only a lower or upper bound.
type ScoreBound uint8

const (
	Lower ScoreBound = iota
	Upper
)

func (b ScoreBound) String() string {
	if b == Upper {
		return "upperbound"
	}
	return "lowerbound"
}

// Score is the evaluation from the engine's own point of view. Cp is
// centipawns; Mate, when set, is plies to mate, negative when
// the engine is the one being mated. The mate count is rendered bare after
// the centipawn value. Nothing ties Cp and Mate together: both may be
// present on the wire.
type Score struct {
	Cp    int32
	Mate  *int16
	Bound *ScoreBound
}

func (s Score) String() string {
	var sb strings.Builder
	sb.WriteString("score cp ")
	sb.WriteString(strconv.FormatInt(int64(s.Cp), 10))
	if s.Mate != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(int64(*s.Mate), 10))
	}
	if s.Bound != nil {
		sb.WriteByte(' ')
		sb.WriteString(s.Bound.String())
	}
	return sb.String()
}

// MultiPv ranks one of several candidate lines in k-best mode; rank 1 is the
// best and ranks are unique within a batch of lines sent together.
type MultiPv struct {
	Rank  uint64
	Moves []move.Move
}

func (m MultiPv) String() string {
	var sb strings.Builder
	sb.WriteString("multipv ")
	sb.WriteString(strconv.FormatUint(m.Rank, 10))
	for _, mv := range m.Moves {
		sb.WriteByte(' ')
		sb.WriteString(mv.String())
	}
	return sb.String()
}

// CurrLine is the line the engine is currently calculating. CpuID is
// 1-based; it is conventionally omitted when a single CPU reports, but an
// explicit 1 is accepted too.
type CurrLine struct {
	CpuID *uint16
	Line  []move.Move
}

func (c CurrLine) String() string {
	var sb strings.Builder
	sb.WriteString("currline")
	if c.CpuID != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(*c.CpuID), 10))
	}
	for _, mv := range c.Line {
		sb.WriteByte(' ')
		sb.WriteString(mv.String())
	}
	return sb.String()
}

// Refutation says Refuted is refuted by the line that follows it.
type Refutation struct {
	Refuted move.Move
	Line    []move.Move
}

func (r Refutation) String() string {
	var sb strings.Builder
	sb.WriteString("refutation ")
	sb.WriteString(r.Refuted.String())
	for _, mv := range r.Line {
		sb.WriteByte(' ')
		sb.WriteString(mv.String())
	}
	return sb.String()
}
