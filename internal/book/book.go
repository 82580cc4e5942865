// Package book holds a small opening book keyed by the moves played so far.
package book

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// mainLines are the built-in starter lines, enough to get a demo game out of
// the opening. Each entry is one line in play order.
var mainLines = [][]string{
	{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6"},
	{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6"},
	{"e2e4", "e7e6", "d2d4", "d7d5", "b1c3", "g8f6", "c1g5", "f8e7"},
	{"d2d4", "d7d5", "c2c4", "e7e6", "b1c3", "g8f6", "c1g5", "f8e7"},
	{"d2d4", "g8f6", "c2c4", "e7e6", "g1f3", "b7b6", "g2g3", "c8b7"},
	{"c2c4", "e7e5", "b1c3", "g8f6", "g1f3", "b8c6", "g2g3", "d7d5"},
}

// Book maps a played-move prefix to the continuation stored for it. Keys are
// space-joined move lists with a leading dot so the empty history still
// forms a non-empty trie prefix.
type Book struct {
	trie      *patricia.Trie
	positions int
}

// New builds the book from the built-in lines. Where two lines share a
// prefix, the first line to claim it keeps its continuation.
func New() *Book {
	b := &Book{trie: patricia.NewTrie()}
	for _, line := range mainLines {
		b.AddLine(line)
	}
	return b
}

// AddLine stores every continuation along one line of play.
func (b *Book) AddLine(line []string) {
	for i := range line {
		p := patricia.Prefix(key(line[:i]))
		if b.trie.Get(p) == nil {
			b.trie.Set(p, line[i])
			b.positions++
		}
	}
}

// Len reports how many positions carry a book continuation.
func (b *Book) Len() int {
	return b.positions
}

// Pick returns the book continuation after the given played moves.
func (b *Book) Pick(moves []string) (string, bool) {
	item := b.trie.Get(patricia.Prefix(key(moves)))
	if item == nil {
		return "", false
	}
	next, ok := item.(string)
	if !ok {
		log.Errorf("Unknown item type: %T for position %q", item, key(moves))
		return "", false
	}
	return next, true
}

// Continuations lists the distinct moves the book can still play anywhere
// below this position, mainly for debug output.
func (b *Book) Continuations(moves []string) []string {
	seen := make(map[string]bool)
	var out []string
	err := b.trie.VisitSubtree(patricia.Prefix(key(moves)), func(p patricia.Prefix, item patricia.Item) error {
		if next, ok := item.(string); ok && !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting book subtree: %v", err)
	}
	return out
}

func key(moves []string) string {
	if len(moves) == 0 {
		return "."
	}
	return ". " + strings.Join(moves, " ")
}
