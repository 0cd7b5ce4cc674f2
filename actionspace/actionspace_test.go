package actionspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessenc/game"
)

func sq(t *testing.T, s string) game.Square {
	t.Helper()
	r, err := game.ParseSquare(s)
	require.NoError(t, err)
	return r
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 22, PromotionMovesPerSide)
	assert.Equal(t, 176, PromotionMoves)
	assert.Equal(t, 4272, Size)
}

func TestPawnPush(t *testing.T) {
	m := game.Move{From: sq(t, "e2"), To: sq(t, "e4")}
	assert.Equal(t, game.Square(12), m.From)
	assert.Equal(t, game.Square(28), m.To)

	idx, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, 796, idx)

	back, err := Decode(796)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestLeftEdgePromotion(t *testing.T) {
	m := game.Move{From: sq(t, "a7"), To: sq(t, "a8"), Promotion: game.Queen}
	idx, err := Encode(m)
	require.NoError(t, err)
	// queen slot 3, side 0, p = 0
	assert.Equal(t, NonPromotionMoves+3*PromotionMovesPerSide*2, idx)

	back, err := Decode(idx)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestPromotionGeometry(t *testing.T) {
	cases := []struct {
		uci  string
		want int // offset from NonPromotionMoves
	}{
		{"a7a8n", 0},
		{"a7b8n", 1},
		{"b7a8n", 2},
		{"b7b8n", 3},
		{"b7c8n", 4},
		{"g7h8n", 19},
		{"h7h8n", 20},
		{"h7g8n", 21},
		{"a2a1n", 22},
		{"h2g1n", 43},
		{"a7a8b", 44},
		{"e7d8r", 88 + 2 + 3*3},
		{"h2g1q", 175},
	}
	for _, c := range cases {
		t.Run(c.uci, func(t *testing.T) {
			m, err := game.ParseUCI(c.uci)
			require.NoError(t, err)
			idx, err := Encode(m)
			require.NoError(t, err)
			assert.Equal(t, NonPromotionMoves+c.want, idx)
			back, err := Decode(idx)
			require.NoError(t, err)
			assert.Equal(t, m, back)
		})
	}
}

func TestDecodeEncodeBijection(t *testing.T) {
	seen := make(map[game.Move]int, Size)
	nulls := 0
	for i := 0; i < Size; i++ {
		m, err := Decode(i)
		require.NoError(t, err, "index %d", i)
		if m.IsNull() {
			assert.Less(t, i, NonPromotionMoves)
			assert.Equal(t, i/game.BoardSize, i%game.BoardSize, "null move from index %d", i)
			nulls++
			continue
		}
		if prev, ok := seen[m]; ok {
			t.Fatalf("indices %d and %d both decode to %v", prev, i, m)
		}
		seen[m] = i

		idx, err := Encode(m)
		require.NoError(t, err, "move %v", m)
		assert.Equal(t, i, idx, "move %v", m)
	}
	assert.Equal(t, 64, nulls)
	assert.Len(t, seen, Size-64)
}

func TestPromotionsNeverNull(t *testing.T) {
	for i := NonPromotionMoves; i < Size; i++ {
		m, err := Decode(i)
		require.NoError(t, err)
		assert.False(t, m.IsNull())
		assert.NotEqual(t, game.NoKind, m.Promotion)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, Size, Size + 100} {
		_, err := Decode(idx)
		assert.ErrorIs(t, err, ErrInvalidActionIndex)
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []struct {
		name string
		move game.Move
		want error
	}{
		{"queen from fourth rank", game.Move{From: sq(t, "e4"), To: sq(t, "e5"), Promotion: game.Queen}, ErrGeometryViolation},
		{"wrong direction", game.Move{From: sq(t, "e2"), To: sq(t, "e3"), Promotion: game.Queen}, ErrGeometryViolation},
		{"white to first rank", game.Move{From: sq(t, "e7"), To: sq(t, "e1"), Promotion: game.Rook}, ErrGeometryViolation},
		{"two files over", game.Move{From: sq(t, "c7"), To: sq(t, "e8"), Promotion: game.Knight}, ErrGeometryViolation},
		{"edge wrap", game.Move{From: sq(t, "h7"), To: sq(t, "a8"), Promotion: game.Bishop}, ErrGeometryViolation},
		{"king promotion", game.Move{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: game.King}, ErrUnsupportedPromotion},
		{"pawn promotion", game.Move{From: sq(t, "e2"), To: sq(t, "e1"), Promotion: game.Pawn}, ErrUnsupportedPromotion},
		{"off board", game.Move{From: 64, To: 3}, game.ErrInvalidCoordinate},
		{"no square", game.Move{From: game.NoSquare, To: 3}, game.ErrInvalidCoordinate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Encode(c.move)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestPromoteCoerces(t *testing.T) {
	m := game.Move{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: game.King}
	_, err := Encode(m)
	require.Error(t, err)

	idx, err := Encode(Promote(m, game.Queen))
	require.NoError(t, err)
	back, err := Decode(idx)
	require.NoError(t, err)
	assert.Equal(t, game.Queen, back.Promotion)
}
