package game

import "github.com/pkg/errors"

// MoveBetween recovers the move that turns before into after by comparing
// piece placement. Castling is reported as the king's two-square move and
// promotions carry the kind of the piece that appeared on the last rank.
func MoveBetween(before, after Position) (Move, error) {
	mover := before.Turn
	var vacated, arrived []Square
	for i := range before.Board {
		sq := Square(i)
		b, a := before.Board[i], after.Board[i]
		if b == a {
			continue
		}
		if !b.Empty() && b.Color == mover {
			vacated = append(vacated, sq)
		}
		if !a.Empty() && a.Color == mover {
			arrived = append(arrived, sq)
		}
	}

	// the king moves in every castle, so key the move on it
	for _, from := range vacated {
		if before.Board[from].Kind != King {
			continue
		}
		for _, to := range arrived {
			if after.Board[to].Kind == King {
				return Move{From: from, To: to}, nil
			}
		}
	}

	if len(vacated) != 1 || len(arrived) != 1 {
		return Move{}, errors.Wrapf(ErrNoMove, "%d squares vacated, %d occupied", len(vacated), len(arrived))
	}
	m := Move{From: vacated[0], To: arrived[0]}
	moved, landed := before.Board[m.From], after.Board[m.To]
	if moved.Kind != landed.Kind {
		if moved.Kind != Pawn {
			return Move{}, errors.Wrapf(ErrNoMove, "%v turned into %v", moved.Kind, landed.Kind)
		}
		m.Promotion = landed.Kind
	}
	return m, nil
}
