// This package writes the whole action space into a file, one move per line
// in index order, and replays random games to check that every legal move
// survives an encode/decode round trip.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/chessenc/actionspace"
	"github.com/chessenc/dataset"
	"github.com/chessenc/game"
)

var (
	numGameFlag   = flag.Int("num_game", 10, "number of random games to check the action space against")
	chessMovePath = flag.String("path", "chess_moves.txt", "file to write the action space to")
	engineFlag    = flag.String("engine", "notnil", "move generator for the check: notnil or dragontooth")
	seedFlag      = flag.Int64("seed", 1, "random seed for the check")
	maxPliesFlag  = flag.Int("max_plies", 500, "maximum plies per random game")
)

func writeActions(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < actionspace.Size; i++ {
		m, err := actionspace.Decode(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func rules(name string) (game.Rules, error) {
	switch name {
	case "notnil":
		return game.NewNotnil(), nil
	case "dragontooth":
		return game.NewDragontooth(), nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

func main() {
	flag.Parse()

	if err := writeActions(*chessMovePath); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d actions to %s", actionspace.Size, *chessMovePath)

	r, err := rules(*engineFlag)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	seen := make(map[int]struct{})
	for i := 0; i < *numGameFlag; i++ {
		err := dataset.SelfPlay(context.Background(), r, game.StartingPosition(), *maxPliesFlag, rng,
			func(tr dataset.Transition, legal []game.Move) error {
				for _, m := range legal {
					idx, err := actionspace.Encode(m)
					if err != nil {
						return fmt.Errorf("%v in %s: %w", m, tr.Before.FEN(), err)
					}
					back, err := actionspace.Decode(idx)
					if err != nil {
						return err
					}
					if back != m {
						return fmt.Errorf("%v encoded as %d decodes to %v", m, idx, back)
					}
					seen[idx] = struct{}{}
				}
				return nil
			})
		if err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
	}
	log.Printf("%d games: %d distinct actions seen, all round trip", *numGameFlag, len(seen))
}
