package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chessenc/actionspace"
	"github.com/chessenc/boardarray"
	"github.com/chessenc/game"
)

var (
	actionFlag = flag.Int("action", -1, "action index to decode")
	moveFlag   = flag.String("move", "", "UCI move to encode")
	fenFlag    = flag.String("fen", "", "FEN to encode")
	modeFlag   = flag.String("mode", "array", "board layout: array, matrix or tensor")
)

func main() {
	flag.Parse()

	if *actionFlag >= 0 {
		m, err := actionspace.Decode(*actionFlag)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("action %d: %v\n", *actionFlag, m)
	}

	if *moveFlag != "" {
		m, err := game.ParseUCI(*moveFlag)
		if err != nil {
			log.Fatal(err)
		}
		idx, err := actionspace.Encode(m)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("move %v: %d\n", m, idx)
	}

	if *fenFlag != "" {
		p, err := game.ParseFEN(*fenFlag)
		if err != nil {
			log.Fatal(err)
		}
		ll, err := boardarray.Encode(p, *modeFlag)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s payload %v:\n%v\n", ll.Mode, ll.Board.Shape(), ll.Board)
		fmt.Printf("info: %v\n", ll.Info)

		back, err := boardarray.FromLowLevel(ll.Board, ll.Info, ll.Mode)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("fen: %s\n", back.FEN())
	}
}
