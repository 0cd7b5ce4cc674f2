package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessenc/actionspace"
)

func TestWriteActions(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "moves.txt")
	require.NoError(t, writeActions(filename))

	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, actionspace.Size)

	assert.Equal(t, "0000", lines[0])
	assert.Equal(t, "a1b1", lines[1])
	assert.Equal(t, "e2e4", lines[796])
	assert.Equal(t, "a7a8n", lines[actionspace.NonPromotionMoves])
	assert.Equal(t, "h2g1q", lines[actionspace.Size-1])
	assert.Equal(t, "h2h1q", lines[actionspace.Size-2])
}

func TestRules(t *testing.T) {
	for _, name := range []string{"notnil", "dragontooth"} {
		r, err := rules(name)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}
	_, err := rules("stockfish")
	assert.Error(t, err)
}
