package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessenc/actionspace"
	"github.com/chessenc/boardarray"
	"github.com/chessenc/game"
)

func TestDefaultConfMatchesEncoding(t *testing.T) {
	for _, mode := range []boardarray.Mode{boardarray.Array, boardarray.Matrix, boardarray.Tensor} {
		conf := DefaultConf(mode)
		require.True(t, conf.IsValid(), mode.String())
		assert.Equal(t, actionspace.Size, conf.ActionSpace)

		ll, err := boardarray.ToLowLevel(game.StartingPosition(), mode)
		require.NoError(t, err)
		assert.Len(t, ll.Float32(), conf.InputSize(), mode.String())
	}
}

func TestIsValid(t *testing.T) {
	conf := DefaultConf(boardarray.Matrix)
	conf.ActionSpace = 4096
	assert.False(t, conf.IsValid())

	conf = DefaultConf(boardarray.Matrix)
	conf.Width = 9
	assert.False(t, conf.IsValid())

	conf = DefaultConf(boardarray.Tensor)
	conf.BatchSize = 0
	assert.False(t, conf.IsValid())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 16, round(21))
	assert.Equal(t, 32, round(30))
	assert.Equal(t, 1, round(1))
}
