package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStart(t *testing.T) {
	p := StartingPosition()
	assert.Equal(t, Piece{Rook, White}, p.At(0))
	assert.Equal(t, Piece{King, White}, p.At(4))
	assert.Equal(t, Piece{Pawn, Black}, p.At(52))
	assert.Equal(t, Piece{Queen, Black}, p.At(59))
	assert.True(t, p.At(28).Empty())
	assert.Equal(t, White, p.Turn)
	assert.Equal(t, AllCastling, p.Castling)
	assert.Equal(t, NoSquare, p.EnPassant)
	assert.Equal(t, 0, p.HalfMove)
	assert.Equal(t, 1, p.FullMove)
	assert.Equal(t, StartFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		"rnbq1rk1/pp3pbp/3p1np1/2pPp3/2P1PP2/2N2N2/PP4PP/R1BQKB1R w KQ e6 0 8",
		"r3k2r/8/8/8/8/8/8/R3K2R b kq - 3 17",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	} {
		p, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestParseFENDefaultsClocks(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - -")
	require.NoError(t, err)
	assert.Equal(t, Black, p.Turn)
	assert.Equal(t, 0, p.HalfMove)
	assert.Equal(t, 1, p.FullMove)
}

func TestParseFENInvalid(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkX - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
	} {
		_, err := ParseFEN(fen)
		assert.ErrorIs(t, err, ErrInvalidFEN, "%q", fen)
	}
}

func TestCastlingRookSquares(t *testing.T) {
	cases := []struct {
		right CastleRights
		rook  Square
		color Color
	}{
		{WhiteKingSide, 7, White},
		{WhiteQueenSide, 0, White},
		{BlackKingSide, 63, Black},
		{BlackQueenSide, 56, Black},
	}
	for _, c := range cases {
		sq, color, ok := CastlingRook(c.right)
		require.True(t, ok)
		assert.Equal(t, c.rook, sq)
		assert.Equal(t, c.color, color)

		r, ok := CastlingRight(c.rook)
		require.True(t, ok)
		assert.Equal(t, c.right, r)
	}
	_, ok := CastlingRight(4)
	assert.False(t, ok)
}
