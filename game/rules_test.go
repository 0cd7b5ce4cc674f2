package game

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rulesFixtures = []string{
	StartFEN,
	"rnbq1rk1/pp3pbp/3p1np1/2pPp3/2P1PP2/2N2N2/PP4PP/R1BQKB1R w KQ e6 0 8",
	"rnbq1bnr/ppppk1P1/7p/8/8/8/PPP1PPPP/RNBQKBNR w KQ - 1 5",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"4k3/8/8/8/8/8/p7/4K3 b - - 0 1",
}

func engines() map[string]Rules {
	return map[string]Rules{
		"notnil":      NewNotnil(),
		"dragontooth": NewDragontooth(),
	}
}

func sortedUCI(moves []Move) []string {
	retVal := make([]string, len(moves))
	for i, m := range moves {
		retVal[i] = m.String()
	}
	sort.Strings(retVal)
	return retVal
}

func TestRulesAgreeOnLegalMoves(t *testing.T) {
	for _, fen := range rulesFixtures {
		p, err := ParseFEN(fen)
		require.NoError(t, err)

		var want []string
		for name, r := range engines() {
			moves, err := r.LegalMoves(p)
			require.NoError(t, err, name)
			got := sortedUCI(moves)
			if want == nil {
				want = got
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: %s legal moves differ (-first +%s):\n%s", fen, name, name, diff)
			}
		}
	}
}

func TestRulesStartCount(t *testing.T) {
	for name, r := range engines() {
		moves, err := r.LegalMoves(StartingPosition())
		require.NoError(t, err, name)
		assert.Len(t, moves, 20, name)
	}
}

func TestRulesPromotionKinds(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
	require.NoError(t, err)
	for name, r := range engines() {
		moves, err := r.LegalMoves(p)
		require.NoError(t, err)
		promos := map[PieceKind]bool{}
		for _, m := range moves {
			if m.From == 8 {
				assert.Equal(t, Square(0), m.To, name)
				promos[m.Promotion] = true
			}
		}
		assert.Equal(t, map[PieceKind]bool{Knight: true, Bishop: true, Rook: true, Queen: true}, promos, name)
	}
}

func TestRulesApply(t *testing.T) {
	e2e4 := Move{From: 12, To: 28}
	for name, r := range engines() {
		after, err := r.Apply(StartingPosition(), e2e4)
		require.NoError(t, err, name)
		assert.Equal(t, Piece{Pawn, White}, after.At(28), name)
		assert.True(t, after.At(12).Empty(), name)
		assert.Equal(t, Black, after.Turn, name)

		m, err := MoveBetween(StartingPosition(), after)
		require.NoError(t, err)
		assert.Equal(t, e2e4, m, name)

		_, err = r.Apply(StartingPosition(), Move{From: 12, To: 36})
		assert.ErrorIs(t, err, ErrIllegalMove, name)
	}
}

func TestRulesCastle(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for name, r := range engines() {
		after, err := r.Apply(p, Move{From: 4, To: 6})
		require.NoError(t, err, name)
		assert.Equal(t, Piece{King, White}, after.At(6), name)
		assert.Equal(t, Piece{Rook, White}, after.At(5), name)
		assert.False(t, after.Castling.Has(WhiteKingSide), name)
		assert.False(t, after.Castling.Has(WhiteQueenSide), name)
		assert.True(t, after.Castling.Has(BlackKingSide|BlackQueenSide), name)
	}
}

func TestNotnilFENRoundTrip(t *testing.T) {
	r := NewNotnil()
	for _, fen := range rulesFixtures {
		p, err := r.ParseFEN(fen)
		require.NoError(t, err)
		q, err := ParseFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, q, p)
	}
	_, err := r.ParseFEN("not a fen")
	assert.ErrorIs(t, err, ErrInvalidFEN)
}
