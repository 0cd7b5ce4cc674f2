package game

import (
	"github.com/pkg/errors"
)

// Move is a move in origin/destination form. Promotion is NoKind unless a
// pawn promotes.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NullMove is the sentinel returned when origin equals destination.
var NullMove = Move{From: 0, To: 0}

// IsNull reports whether m is a null move.
func (m Move) IsNull() bool { return m.From == m.To }

// String returns the UCI form of m, "0000" for the null move.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Symbol())
	}
	return s
}

// ParseUCI parses a move in UCI notation such as "e2e4" or "a7a8q".
func ParseUCI(s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.Wrapf(ErrIllegalMove, "bad uci %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = KindFromSymbol(s[4])
		if m.Promotion == NoKind {
			return Move{}, errors.Wrapf(ErrIllegalMove, "bad promotion in %q", s)
		}
	}
	return m, nil
}
