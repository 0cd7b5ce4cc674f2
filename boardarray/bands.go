package boardarray

import (
	"github.com/pkg/errors"

	"github.com/chessenc/game"
)

// Cell values of the array and matrix layouts. A plain cell is 0 (empty),
// 1..6 (black pawn..king) or 7..12 (white pawn..king). A castling rook
// gets OffsetCastling added, the pawn capturable en passant gets
// OffsetEnPassant added.
const (
	OffsetColor     = 6
	OffsetCastling  = 20
	OffsetEnPassant = 100

	maxPiece = 2 * OffsetColor
)

func pieceValue(p game.Piece) int {
	if p.Empty() {
		return 0
	}
	v := p.Kind.Plane() + 1
	if p.Color == game.White {
		v += OffsetColor
	}
	return v
}

func valuePiece(v int) game.Piece {
	if v == 0 {
		return game.NoPiece
	}
	if v > OffsetColor {
		return game.Piece{Kind: game.PieceKind(v - OffsetColor), Color: game.White}
	}
	return game.Piece{Kind: game.PieceKind(v), Color: game.Black}
}

// packBands writes the 64 cell values of c into dst.
func packBands(c *cells, dst []int) {
	for i := range c.pieces {
		v := pieceValue(c.pieces[i])
		if c.castle[i] {
			v += OffsetCastling
		}
		if c.enPassant[i] {
			v += OffsetEnPassant
		}
		dst[i] = v
	}
}

// unpackBands reads 64 cell values. Legal values are [0,12], (20,32] and
// (100,112].
func unpackBands(src []int) (cells, error) {
	var c cells
	for i, v := range src[:game.BoardSize] {
		switch {
		case v >= 0 && v <= maxPiece:
		case v > OffsetCastling && v <= OffsetCastling+maxPiece:
			c.castle[i] = true
			v -= OffsetCastling
		case v > OffsetEnPassant && v <= OffsetEnPassant+maxPiece:
			c.enPassant[i] = true
			v -= OffsetEnPassant
		default:
			return c, errors.Wrapf(ErrOutOfRangeValue, "cell %v holds %d", game.Square(i), v)
		}
		c.pieces[i] = valuePiece(v)
	}
	return c, nil
}
