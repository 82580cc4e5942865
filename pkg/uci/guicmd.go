package uci

import "time"

// GuiCmd is a command sent by the GUI to the engine. Exactly one concrete
// type exists per protocol keyword, and values are immutable once parsed.
type GuiCmd interface {
	guiCmd()
}

// Uci tells the engine to switch to UCI mode.
type Uci struct{}

// Debug toggles the engine's debug output.
type Debug struct {
	On bool
}

// IsReady synchronizes the GUI with the engine; it must always be answered
// with readyok, even mid-search.
type IsReady struct{}

// SetOpt frames a "setoption" line: the option name and, when present, the
// raw value text with its original spacing. Interpreting the value belongs
// to the option subsystem, not the codec.
type SetOpt struct {
	Name     string
	Value    string
	HasValue bool
}

// NewGame tells the engine the next position/go pair belongs to a new game.
type NewGame struct{}

// PosBase identifies how the base position of a "position" command is given.
type PosBase uint8

const (
	// BaseStart is the regular chess starting position.
	BaseStart PosBase = iota
	// BaseFen is a position given as a six-field FEN record.
	BaseFen
)

// Pos sets up a position: a base plus the moves played on top of it, in play
// order. Fen holds the six FEN fields joined by single spaces and is set
// only when Base is BaseFen; its internal grammar is stored, not validated.
type Pos struct {
	Base  PosBase
	Fen   string
	Moves []string
}

// Go carries the search limits of a "go" command. Every field is optional;
// a Go with nothing at all set cannot be built.
type Go struct {
	// SearchMoves restricts the search to these root moves.
	SearchMoves []string
	// Ponder starts the search in pondering mode.
	Ponder bool
	// Clock state: remaining time and increments per side.
	WTime *time.Duration
	BTime *time.Duration
	WInc  *time.Duration
	BInc  *time.Duration
	// MovesToGo is the number of moves to the next time control; unset means
	// WTime/BTime are sudden death.
	MovesToGo *uint16
	// Depth limits the search to this many plies.
	Depth *uint16
	// Nodes limits the search to this many nodes.
	Nodes *uint64
	// Mate asks for a mate in this many moves.
	Mate *uint16
	// MoveTime searches for exactly this long.
	MoveTime *time.Duration
	// Infinite searches until "stop".
	Infinite bool
}

// Stop tells the engine to stop calculating as soon as possible.
type Stop struct{}

// Ponderhit tells the engine the opponent played the expected move.
type Ponderhit struct{}

func (Uci) guiCmd()       {}
func (Debug) guiCmd()     {}
func (IsReady) guiCmd()   {}
func (SetOpt) guiCmd()    {}
func (NewGame) guiCmd()   {}
func (Pos) guiCmd()       {}
func (Go) guiCmd()        {}
func (Stop) guiCmd()      {}
func (Ponderhit) guiCmd() {}

// GoBuilder accumulates "go" limits in any order. Setters never fail and
// never cross-validate; Build is the single validation point.
type GoBuilder struct {
	g   Go
	set bool
}

func NewGoBuilder() *GoBuilder {
	return &GoBuilder{}
}

// SearchMoves appends root-move restrictions in the order given.
func (b *GoBuilder) SearchMoves(moves ...string) *GoBuilder {
	b.g.SearchMoves = append(b.g.SearchMoves, moves...)
	b.set = true
	return b
}

func (b *GoBuilder) Ponder() *GoBuilder {
	b.g.Ponder = true
	b.set = true
	return b
}

func (b *GoBuilder) WTime(d time.Duration) *GoBuilder {
	b.g.WTime = &d
	b.set = true
	return b
}

func (b *GoBuilder) BTime(d time.Duration) *GoBuilder {
	b.g.BTime = &d
	b.set = true
	return b
}

func (b *GoBuilder) WInc(d time.Duration) *GoBuilder {
	b.g.WInc = &d
	b.set = true
	return b
}

func (b *GoBuilder) BInc(d time.Duration) *GoBuilder {
	b.g.BInc = &d
	b.set = true
	return b
}

func (b *GoBuilder) MovesToGo(n uint16) *GoBuilder {
	b.g.MovesToGo = &n
	b.set = true
	return b
}

func (b *GoBuilder) Depth(n uint16) *GoBuilder {
	b.g.Depth = &n
	b.set = true
	return b
}

func (b *GoBuilder) Nodes(n uint64) *GoBuilder {
	b.g.Nodes = &n
	b.set = true
	return b
}

func (b *GoBuilder) Mate(n uint16) *GoBuilder {
	b.g.Mate = &n
	b.set = true
	return b
}

func (b *GoBuilder) MoveTime(d time.Duration) *GoBuilder {
	b.g.MoveTime = &d
	b.set = true
	return b
}

func (b *GoBuilder) Infinite() *GoBuilder {
	b.g.Infinite = true
	b.set = true
	return b
}

// Build returns the accumulated Go and consumes the builder: without new
// setter calls a second Build fails with NothingSetForGo again, as does a
// builder that was never touched.
func (b *GoBuilder) Build() (Go, error) {
	if !b.set {
		return Go{}, newErr(NothingSetForGo)
	}
	g := b.g
	b.g = Go{}
	b.set = false
	return g, nil
}

// PosBuilder accumulates a "position" command. StartPos and Fen may each be
// called any number of times, the last call wins; AddMove preserves play
// order. The builder is single-use: Build moves the fields out.
type PosBuilder struct {
	base    PosBase
	fen     string
	hasBase bool
	moves   []string
}

func NewPosBuilder() *PosBuilder {
	return &PosBuilder{}
}

// StartPos bases the position on a new game.
func (b *PosBuilder) StartPos() *PosBuilder {
	b.base, b.fen, b.hasBase = BaseStart, "", true
	return b
}

// Fen bases the position on a FEN record.
func (b *PosBuilder) Fen(fen string) *PosBuilder {
	b.base, b.fen, b.hasBase = BaseFen, fen, true
	return b
}

// AddMove appends one move token; moves must be added in the order they were
// played.
func (b *PosBuilder) AddMove(mv string) *PosBuilder {
	b.moves = append(b.moves, mv)
	return b
}

// Build fails with Position when no base was ever set; otherwise it returns
// the finished Pos and resets the builder.
func (b *PosBuilder) Build() (Pos, error) {
	if !b.hasBase {
		return Pos{}, newErr(Position)
	}
	p := Pos{Base: b.base, Fen: b.fen, Moves: b.moves}
	b.base, b.fen, b.hasBase = BaseStart, "", false
	b.moves = nil
	return p, nil
}
