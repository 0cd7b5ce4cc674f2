package boardarray

import (
	"github.com/pkg/errors"

	"github.com/chessenc/game"
)

// cells is the unpacked form shared by every layout: one occupant and two
// flags per square. Layouts only pack and unpack cells; all chess meaning
// of the flags lives in fromPosition and toPosition.
type cells struct {
	pieces    [game.BoardSize]game.Piece
	castle    [game.BoardSize]bool
	enPassant [game.BoardSize]bool
}

// pawnCell returns the square of the pawn that just made the double push
// onto the en passant target t.
func pawnCell(t game.Square) game.Square {
	if t < game.BoardSize/2 {
		return t + game.ColNum
	}
	return t - game.ColNum
}

// targetCell inverts pawnCell.
func targetCell(pawn game.Square) game.Square {
	if pawn < game.BoardSize/2 {
		return pawn - game.ColNum
	}
	return pawn + game.ColNum
}

func fromPosition(p game.Position) (cells, error) {
	var c cells
	if p.HalfMove < 0 || p.FullMove < 1 {
		return c, errors.Wrapf(ErrInvalidPosition, "clocks %d %d", p.HalfMove, p.FullMove)
	}
	for i, piece := range p.Board {
		if !piece.Empty() && (!piece.Kind.Valid() || piece.Color > game.Black) {
			return c, errors.Wrapf(ErrInvalidPosition, "bad piece %+v on %v", piece, game.Square(i))
		}
		c.pieces[i] = piece
	}

	for _, r := range []game.CastleRights{game.WhiteKingSide, game.WhiteQueenSide, game.BlackKingSide, game.BlackQueenSide} {
		if !p.Castling.Has(r) {
			continue
		}
		rook, color, _ := game.CastlingRook(r)
		if c.pieces[rook] != (game.Piece{Kind: game.Rook, Color: color}) {
			return c, errors.Wrapf(ErrInvalidPosition, "castling right %v without a rook on %v", r, rook)
		}
		c.castle[rook] = true
	}

	if p.EnPassant != game.NoSquare {
		t := p.EnPassant
		rank := t.Rank()
		if !t.Valid() || (rank != 2 && rank != 5) {
			return c, errors.Wrapf(ErrInvalidPosition, "en passant target %v", t)
		}
		pawn := pawnCell(t)
		want := game.Piece{Kind: game.Pawn, Color: game.White}
		if rank == 5 {
			want.Color = game.Black
		}
		if c.pieces[pawn] != want {
			return c, errors.Wrapf(ErrInvalidPosition, "en passant target %v without a pawn on %v", t, pawn)
		}
		c.enPassant[pawn] = true
	}
	return c, nil
}

// toPosition rebuilds a position from unpacked cells and the side info.
// It rejects flags that no position could have produced.
func (c *cells) toPosition(info []int) (game.Position, error) {
	p := game.Empty()
	p.Board = c.pieces

	for i := range c.castle {
		if !c.castle[i] {
			continue
		}
		sq := game.Square(i)
		r, ok := game.CastlingRight(sq)
		if !ok {
			return game.Position{}, errors.Wrapf(ErrOutOfRangeValue, "castling flag on %v", sq)
		}
		_, color, _ := game.CastlingRook(r)
		if c.pieces[i] != (game.Piece{Kind: game.Rook, Color: color}) {
			return game.Position{}, errors.Wrapf(ErrOutOfRangeValue, "castling flag on %v without its rook", sq)
		}
		p.Castling |= r
	}

	for i := range c.enPassant {
		if !c.enPassant[i] {
			continue
		}
		sq := game.Square(i)
		if p.EnPassant != game.NoSquare {
			return game.Position{}, errors.Wrapf(ErrOutOfRangeValue, "second en passant flag on %v", sq)
		}
		want := game.Piece{Kind: game.Pawn, Color: game.White}
		wantRank := 3
		if sq >= game.BoardSize/2 {
			want.Color, wantRank = game.Black, 4
		}
		if c.pieces[i] != want || sq.Rank() != wantRank {
			return game.Position{}, errors.Wrapf(ErrOutOfRangeValue, "en passant flag on %v", sq)
		}
		p.EnPassant = targetCell(sq)
	}

	if err := setSideInfo(&p, info); err != nil {
		return game.Position{}, err
	}
	return p, nil
}

func sideInfo(p game.Position) []int {
	turn := 0
	if p.Turn == game.White {
		turn = 1
	}
	return []int{turn, p.HalfMove, p.FullMove}
}

func setSideInfo(p *game.Position, info []int) error {
	if len(info) != SideInfoSize {
		return errors.Wrapf(ErrShapeMismatch, "side info has %d values, want %d", len(info), SideInfoSize)
	}
	switch info[0] {
	case 0:
		p.Turn = game.Black
	case 1:
		p.Turn = game.White
	default:
		return errors.Wrapf(ErrOutOfRangeValue, "side to move %d", info[0])
	}
	if info[1] < 0 {
		return errors.Wrapf(ErrOutOfRangeValue, "half-move clock %d", info[1])
	}
	if info[2] < 1 {
		return errors.Wrapf(ErrOutOfRangeValue, "full-move number %d", info[2])
	}
	p.HalfMove, p.FullMove = info[1], info[2]
	return nil
}
