/*
Package engine implements the demo engine shell: a stdin/stdout loop that
answers GUI commands through the uci codec.

The shell is not a chess player. Its "search" is a book lookup with a
null-move fallback, which is enough to exercise both codec directions
against a real frontend: identification, option declarations, position
tracking and the info/bestmove reply cycle all go over the wire for real.

Malformed input lines are logged to stderr and dropped, the permissive
policy a GUI-facing engine is expected to follow.
*/
package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/uzichess/uzi/internal/book"
	"github.com/uzichess/uzi/internal/logger"
	"github.com/uzichess/uzi/internal/trace"
	"github.com/uzichess/uzi/pkg/config"
	"github.com/uzichess/uzi/pkg/move"
	"github.com/uzichess/uzi/pkg/opt"
	"github.com/uzichess/uzi/pkg/uci"
)

// Engine answers GUI commands on a line protocol.
type Engine struct {
	reader *bufio.Reader
	writer io.Writer
	cfg    *config.Config
	book   *book.Book
	trace  *trace.Writer

	// history is the move list of the current position, play order.
	history   []string
	fromStart bool
}

// New wires up a shell. book and tr may be nil to run without an opening
// book or session trace.
func New(cfg *config.Config, r io.Reader, w io.Writer, bk *book.Book, tr *trace.Writer) *Engine {
	return &Engine{
		reader:    bufio.NewReader(r),
		writer:    w,
		cfg:       cfg,
		book:      bk,
		trace:     tr,
		fromStart: true,
	}
}

// Run processes commands until EOF or "quit". "quit" is process transport,
// not part of the command set, so it is handled before the codec sees it.
func (e *Engine) Run() error {
	for {
		line, err := e.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "quit" {
			return nil
		}
		e.handleLine(line)
	}
}

func (e *Engine) handleLine(line string) {
	cmd, err := uci.Parse(line)
	if e.trace != nil {
		if terr := e.trace.Gui(line, err); terr != nil {
			log.Errorf("Writing trace record: %v", terr)
		}
	}
	if err != nil {
		log.Warnf("Ignoring malformed line %q: %v", line, err)
		return
	}

	switch c := cmd.(type) {
	case uci.Uci:
		e.send(uci.IdName(e.cfg.Engine.Name))
		e.send(uci.IdAuthor(e.cfg.Engine.Author))
		for _, d := range e.options() {
			e.send(uci.HasOpt{Opt: d})
		}
		e.send(uci.UciOk{})
	case uci.Debug:
		logger.SetDebug(c.On)
		log.Debugf("Debug mode: %v", c.On)
	case uci.IsReady:
		e.send(uci.ReadyOk{})
	case uci.SetOpt:
		e.applyOption(opt.FromSetOpt(c))
	case uci.NewGame:
		e.history = nil
		e.fromStart = true
	case uci.Pos:
		e.history = append([]string(nil), c.Moves...)
		e.fromStart = c.Base == uci.BaseStart
		log.Debugf("Position set: base=%d moves=%d", c.Base, len(c.Moves))
	case uci.Go:
		e.search(c)
	case uci.Stop:
		// search is synchronous here; nothing is running to interrupt
	case uci.Ponderhit:
		log.Debug("Ponderhit received")
	}
}

// send formats one engine command, traces it and puts it on the wire.
func (e *Engine) send(cmd uci.EngCmd) {
	line := cmd.String()
	if e.trace != nil {
		if err := e.trace.Eng(line); err != nil {
			log.Errorf("Writing trace record: %v", err)
		}
	}
	fmt.Fprintln(e.writer, line)
}

// options declares the parameters a GUI may tune.
func (e *Engine) options() []opt.Decl {
	multiPvDefault := fmt.Sprintf("%d", e.cfg.Engine.MultiPv)
	currLineDefault := "false"
	if e.cfg.Engine.ShowCurrLine {
		currLineDefault = "true"
	}
	spinMin, spinMax := 1, 16
	return []opt.Decl{
		{Name: "MultiPV", Type: opt.Spin, Default: &multiPvDefault, Min: &spinMin, Max: &spinMax},
		{Name: "UCI_ShowCurrLine", Type: opt.Check, Default: &currLineDefault},
		{Name: "UCI_Opponent", Type: opt.String},
	}
}

func (e *Engine) applyOption(a opt.Assign) {
	switch a.Name {
	case "MultiPV":
		n, err := a.Int()
		if err != nil {
			log.Warnf("Rejecting option value: %v", err)
			return
		}
		e.cfg.Engine.MultiPv = n
	case "UCI_ShowCurrLine":
		on, err := a.Bool()
		if err != nil {
			log.Warnf("Rejecting option value: %v", err)
			return
		}
		e.cfg.Engine.ShowCurrLine = on
	case "UCI_Opponent":
		o, err := opt.ParseOpponent(a.Value)
		if err != nil {
			log.Warnf("Rejecting opponent value: %v", err)
			return
		}
		log.Infof("Playing against %s (%s)", o.Name, o.Type)
	default:
		log.Debugf("Unknown option %q, ignoring", a.Name)
	}
}

// search answers "go". A book hit becomes the pv and bestmove; off book the
// shell concedes with the null move, the conventional "no move" token.
func (e *Engine) search(g uci.Go) {
	var best move.Move
	found := false

	if e.book != nil && e.cfg.Shell.UseBook && e.fromStart {
		if next, ok := e.book.Pick(e.history); ok && allowed(next, g.SearchMoves) {
			if m, err := move.Parse(next); err == nil {
				best = m
				found = true
			} else {
				log.Errorf("Book returned a bad move token %q: %v", next, err)
			}
		}
	}

	depth := uint16(1)
	info := uci.Info{Depth: &depth}
	if found {
		info.Pv = []move.Move{best}
		info.Score = &uci.Score{Cp: 15}
		if e.cfg.Engine.ShowCurrLine {
			info.CurrLine = &uci.CurrLine{Line: []move.Move{best}}
		}
	} else {
		text := "out of book"
		info.Text = &text
	}
	e.send(info)
	e.send(uci.BestMove{Best: best})
}

// allowed applies a searchmoves restriction; an empty restriction allows
// everything.
func allowed(mv string, searchMoves []string) bool {
	if len(searchMoves) == 0 {
		return true
	}
	for _, m := range searchMoves {
		if m == mv {
			return true
		}
	}
	return false
}
