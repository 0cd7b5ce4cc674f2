// Package dataset replays recorded or generated games and feeds their
// transitions to the codecs.
package dataset

import (
	"context"
	"io"
	"math/rand"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/chessenc/game"
)

// Transition is one ply of a game: the position before the move, the move
// and the position it leads to.
type Transition struct {
	Game   int
	Ply    int
	Before game.Position
	After  game.Position
	Move   game.Move
}

// Walk reads PGN games from r and calls fn for every ply of every game in
// order. Games without moves are skipped and not counted. It stops at the
// first error returned by fn.
func Walk(ctx context.Context, r io.Reader, fn func(Transition) error) error {
	// the scanner only emits a game once it has seen the blank lines after it
	scanner := chess.NewScanner(io.MultiReader(r, strings.NewReader("\n\n")))
	g := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cg := scanner.Next()
		if len(cg.Moves()) == 0 {
			continue
		}
		positions := cg.Positions()
		for i, m := range cg.Moves() {
			before, err := game.FromChess(positions[i])
			if err != nil {
				return errors.WithMessagef(err, "game %d ply %d", g, i)
			}
			after, err := game.FromChess(positions[i+1])
			if err != nil {
				return errors.WithMessagef(err, "game %d ply %d", g, i+1)
			}
			tr := Transition{Game: g, Ply: i, Before: before, After: after, Move: game.MoveFromChess(m)}
			if err := fn(tr); err != nil {
				return err
			}
		}
		g++
	}
	return errors.WithStack(scanner.Err())
}

// SelfPlay plays one game of uniformly random legal moves from start using
// rules, calling fn for every ply. The game ends when no legal move is left
// or after maxPlies plies.
func SelfPlay(ctx context.Context, rules game.Rules, start game.Position, maxPlies int, r *rand.Rand, fn func(Transition, []game.Move) error) error {
	p := start
	for ply := 0; ply < maxPlies; ply++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		legal, err := rules.LegalMoves(p)
		if err != nil {
			return err
		}
		if len(legal) == 0 {
			return nil
		}
		m := legal[r.Intn(len(legal))]
		next, err := rules.Apply(p, m)
		if err != nil {
			return err
		}
		if err := fn(Transition{Ply: ply, Before: p, After: next, Move: m}, legal); err != nil {
			return err
		}
		p = next
	}
	return nil
}
