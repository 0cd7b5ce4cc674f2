package boardarray

import (
	"github.com/pkg/errors"

	"github.com/chessenc/game"
)

// Planes is the number of piece planes in the tensor layout.
const Planes = len(game.PieceKinds)

// packPlanes writes c as Planes x 8 x 8 values into dst, which must be
// zeroed. White is positive, black negative; a flagged cell has magnitude 2.
func packPlanes(c *cells, dst []int) {
	for i, piece := range c.pieces {
		if piece.Empty() {
			continue
		}
		v := 1
		if piece.Color == game.Black {
			v = -1
		}
		if c.castle[i] || c.enPassant[i] {
			v *= 2
		}
		dst[piece.Kind.Plane()*game.BoardSize+i] = v
	}
}

func unpackPlanes(src []int) (cells, error) {
	var c cells
	for plane, kind := range game.PieceKinds {
		for i := 0; i < game.BoardSize; i++ {
			v := src[plane*game.BoardSize+i]
			if v == 0 {
				continue
			}
			sq := game.Square(i)
			if v < -2 || v > 2 {
				return c, errors.Wrapf(ErrOutOfRangeValue, "%v plane, %v holds %d", kind, sq, v)
			}
			if !c.pieces[i].Empty() {
				return c, errors.Wrapf(ErrOutOfRangeValue, "%v holds both %v and %v", sq, c.pieces[i].Kind, kind)
			}
			color := game.White
			if v < 0 {
				color, v = game.Black, -v
			}
			c.pieces[i] = game.Piece{Kind: kind, Color: color}
			if v == 2 {
				switch kind {
				case game.Rook:
					c.castle[i] = true
				case game.Pawn:
					c.enPassant[i] = true
				default:
					return c, errors.Wrapf(ErrOutOfRangeValue, "flagged %v on %v", kind, sq)
				}
			}
		}
	}
	return c, nil
}
