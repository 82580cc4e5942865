/*
Package move implements the coordinate-notation move token used on the UCI
wire: a source square, a destination square and an optional promotion piece,
e.g. "e2e4", "e7e8q". The codec treats these tokens as opaque; this package
owns their parse and format contract.

Parsing validates shape only. Whether a move is legal in any given position
is the engine's business, not the token's.
*/
package move

import (
	"errors"
	"fmt"
)

// ErrMove is wrapped by every parse failure in this package.
var ErrMove = errors.New("malformed move token")

// Square is a board square, file-major from a1 (0) to h8 (63).
type Square uint8

func (s Square) String() string {
	return string([]byte{'a' + byte(s%8), '1' + byte(s/8)})
}

// Promo is the promotion piece of a pawn move, if any.
type Promo uint8

const (
	NoPromo Promo = iota
	Knight
	Bishop
	Rook
	Queen
)

var promoChars = map[Promo]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// Move is one half-move in coordinate notation. The zero value is the null
// move and prints as "0000".
type Move struct {
	From  Square
	To    Square
	Promo Promo
}

// Parse decodes a coordinate-notation token such as "g1f3" or "a7a8q".
// "0000" decodes to the null move.
func Parse(tok string) (Move, error) {
	if tok == "0000" {
		return Move{}, nil
	}
	if len(tok) != 4 && len(tok) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrMove, tok)
	}
	from, ok := square(tok[0], tok[1])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrMove, tok)
	}
	to, ok := square(tok[2], tok[3])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrMove, tok)
	}
	m := Move{From: from, To: to}
	if len(tok) == 5 {
		p, ok := promo(tok[4])
		if !ok {
			return Move{}, fmt.Errorf("%w: %q", ErrMove, tok)
		}
		m.Promo = p
	}
	return m, nil
}

// MustParse is for tokens known to be well formed, typically in tests and
// fixed tables. It panics on malformed input.
func MustParse(tok string) Move {
	m, err := Parse(tok)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Move) String() string {
	if m == (Move{}) {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if c, ok := promoChars[m.Promo]; ok {
		s += string(c)
	}
	return s
}

func square(f, r byte) (Square, bool) {
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, false
	}
	return Square(r-'1')*8 + Square(f-'a'), true
}

func promo(c byte) (Promo, bool) {
	switch c {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	}
	return NoPromo, false
}
