// Package actionspace maps chess moves onto a fixed-size one-hot action
// vector and back.
//
// The first 64*64 indices are origin*64 + destination. The remaining
// PromotionMoves indices enumerate every promotion geometry for each of the
// four promotion kinds: per kind, 22 geometries for the side promoting on
// rank 8 followed by 22 for the side promoting on rank 1. Within a side the
// a-file contributes two geometries (straight, capture toward b), files b
// through g three each (capture left, straight, capture right) and the
// h-file two (straight, capture toward g).
package actionspace

import (
	"github.com/pkg/errors"

	"github.com/chessenc/game"
)

const (
	NonPromotionMoves     = game.BoardSize * game.BoardSize
	PromotionMovesPerSide = (game.ColNum-2)*3 + 2*2
	PromotionPieces       = 4
	PromotionMoves        = PromotionMovesPerSide * PromotionPieces * 2

	// Size is the length of the action vector.
	Size = NonPromotionMoves + PromotionMoves
)

var (
	ErrInvalidActionIndex   = errors.New("invalid action index")
	ErrGeometryViolation    = errors.New("promotion geometry violation")
	ErrUnsupportedPromotion = errors.New("unsupported promotion kind")
	ErrInvalidPolicy        = errors.New("invalid policy vector")
)

// promotionKinds fixes the slot of each promotion kind.
var promotionKinds = [PromotionPieces]game.PieceKind{game.Knight, game.Bishop, game.Rook, game.Queen}

// promotion ranks per side, 0-based: side 0 promotes 7th -> 8th rank,
// side 1 promotes 2nd -> 1st rank.
var promotionRanks = [2]struct{ from, to int }{{6, 7}, {1, 0}}

// Decode returns the move at action index idx. Indices whose origin equals
// their destination decode to game.NullMove.
func Decode(idx int) (game.Move, error) {
	if idx < 0 || idx >= Size {
		return game.Move{}, errors.Wrapf(ErrInvalidActionIndex, "%d not in [0, %d)", idx, Size)
	}
	if idx < NonPromotionMoves {
		from, to := game.Square(idx/game.BoardSize), game.Square(idx%game.BoardSize)
		if from == to {
			return game.NullMove, nil
		}
		return game.Move{From: from, To: to}, nil
	}

	p := idx - NonPromotionMoves
	kind := promotionKinds[p/(PromotionMovesPerSide*2)]
	p %= PromotionMovesPerSide * 2
	ranks := promotionRanks[p/PromotionMovesPerSide]
	p %= PromotionMovesPerSide

	var fromFile, toFile int
	switch {
	case p < 2:
		fromFile, toFile = 0, p
	case p >= PromotionMovesPerSide-2:
		fromFile, toFile = game.ColNum-1, game.ColNum-1-p%2
	default:
		fromFile = (p-2)/3 + 1
		toFile = fromFile + (p-2)%3 - 1
	}
	return game.Move{
		From:      game.NewSquare(fromFile, ranks.from),
		To:        game.NewSquare(toFile, ranks.to),
		Promotion: kind,
	}, nil
}

// Encode returns the action index of m. It is the inverse of Decode.
func Encode(m game.Move) (int, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return 0, errors.Wrapf(game.ErrInvalidCoordinate, "move %d -> %d", m.From, m.To)
	}
	if m.Promotion == game.NoKind {
		return int(m.From)*game.BoardSize + int(m.To), nil
	}

	slot := -1
	for i, k := range promotionKinds {
		if k == m.Promotion {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, errors.Wrapf(ErrUnsupportedPromotion, "%v in %v", m.Promotion, m)
	}

	side := -1
	for i, r := range promotionRanks {
		if m.From.Rank() == r.from && m.To.Rank() == r.to {
			side = i
			break
		}
	}
	if side < 0 {
		return 0, errors.Wrapf(ErrGeometryViolation, "%v: promotion from rank %d to rank %d", m, m.From.Rank()+1, m.To.Rank()+1)
	}

	fromFile, toFile := m.From.File(), m.To.File()
	delta := toFile - fromFile
	if delta < -1 || delta > 1 {
		return 0, errors.Wrapf(ErrGeometryViolation, "%v: promotion across %d files", m, delta)
	}

	var p int
	switch fromFile {
	case 0:
		p = toFile
	case game.ColNum - 1:
		p = PromotionMovesPerSide - 2 + (game.ColNum - 1 - toFile)
	default:
		p = 2 + (fromFile-1)*3 + delta + 1
	}
	return NonPromotionMoves + slot*PromotionMovesPerSide*2 + side*PromotionMovesPerSide + p, nil
}

// Promote returns m with its promotion replaced by kind. Callers use it to
// coerce promotions the codec does not model before calling Encode.
func Promote(m game.Move, kind game.PieceKind) game.Move {
	m.Promotion = kind
	return m
}
