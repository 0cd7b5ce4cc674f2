package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/chessenc"
	"github.com/chessenc/game"
)

// RecordError is a transition that could not be encoded.
type RecordError struct {
	Game int
	Ply  int
	Move game.Move
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("game %d, ply %d, move %v: %v", e.Game, e.Ply, e.Move, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Result is the outcome of Encode. Skipped lists every transition that
// was dropped, nil when none were.
type Result struct {
	Examples []chessenc.Example
	Skipped  *multierror.Error
}

type item struct {
	seq int
	tr  Transition
}

type encoded struct {
	seq int
	ex  chessenc.Example
	err error
}

// Encode walks the PGN games in r and encodes every transition with
// conf.Workers goroutines. Transitions the codecs reject are skipped, never
// substituted, and do not count towards conf.MaxExamples. Examples come
// back in game order.
func Encode(ctx context.Context, r io.Reader, conf chessenc.Config) (Result, error) {
	if !conf.IsValid() {
		return Result{}, errors.New("invalid config")
	}
	walkCtx, stopWalk := context.WithCancel(ctx)
	defer stopWalk()

	items := make(chan item, conf.Workers)
	results := make(chan encoded, conf.Workers)

	var wg sync.WaitGroup
	for i := 0; i < conf.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range items {
				ex, err := chessenc.EncodeTransition(it.tr.Before, it.tr.After, it.tr.Move, conf.Mode)
				if err != nil {
					err = &RecordError{Game: it.tr.Game, Ply: it.tr.Ply, Move: it.tr.Move, Err: err}
				}
				results <- encoded{seq: it.seq, ex: ex, err: err}
			}
		}()
	}

	var walkErr error
	go func() {
		defer close(items)
		seq := 0
		walkErr = Walk(walkCtx, r, func(tr Transition) error {
			select {
			case items <- item{seq: seq, tr: tr}:
			case <-walkCtx.Done():
				return walkCtx.Err()
			}
			seq++
			if seq%10000 == 0 {
				log.Printf("%s: queued %d transitions", conf.Name, seq)
			}
			return nil
		})
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	// Every queued transition is still drained after the walk stops, so the
	// sorted prefix below holds the first MaxExamples encodable transitions.
	var all, skipped []encoded
	enough := false
	for e := range results {
		if e.err != nil {
			skipped = append(skipped, e)
			continue
		}
		all = append(all, e)
		if conf.MaxExamples > 0 && len(all) >= conf.MaxExamples && !enough {
			enough = true
			stopWalk()
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if walkErr != nil && !(enough && errors.Is(walkErr, context.Canceled)) {
		return Result{}, walkErr
	}

	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].seq < skipped[j].seq })
	if enough {
		all = all[:conf.MaxExamples]
	}

	var res Result
	res.Examples = make([]chessenc.Example, len(all))
	for i, e := range all {
		res.Examples[i] = e.ex
	}
	for _, e := range skipped {
		if enough && e.seq > all[len(all)-1].seq {
			break
		}
		res.Skipped = multierror.Append(res.Skipped, e.err)
	}
	if res.Skipped != nil {
		log.Printf("%s: skipped %d transitions", conf.Name, res.Skipped.Len())
	}
	return res, nil
}
