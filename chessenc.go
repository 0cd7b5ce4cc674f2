// Package chessenc turns chess positions and moves into training examples:
// positions through boardarray, moves through actionspace.
package chessenc

import (
	"encoding/gob"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/chessenc/actionspace"
	"github.com/chessenc/boardarray"
	dual "github.com/chessenc/dualnet"
	"github.com/chessenc/game"
)

// InputEncoder returns the encoder feeding positions to a network in mode.
func InputEncoder(mode boardarray.Mode) PositionEncoder {
	return func(p game.Position) ([]float32, error) {
		ll, err := boardarray.ToLowLevel(p, mode)
		if err != nil {
			return nil, err
		}
		return ll.Float32(), nil
	}
}

// EncodeTransition encodes the move m that leads from before to after.
func EncodeTransition(before, after game.Position, m game.Move, mode boardarray.Mode) (Example, error) {
	enc := InputEncoder(mode)
	board, err := enc(before)
	if err != nil {
		return Example{}, errors.WithMessage(err, "before")
	}
	next, err := enc(after)
	if err != nil {
		return Example{}, errors.WithMessage(err, "after")
	}
	action, err := actionspace.Encode(m)
	if err != nil {
		return Example{}, err
	}
	return Example{Board: board, Next: next, Action: action}, nil
}

func (ex Example) validAction() error {
	if ex.Action < 0 || ex.Action >= actionspace.Size {
		return errors.Wrapf(actionspace.ErrInvalidActionIndex, "example action %d", ex.Action)
	}
	return nil
}

// Policy returns the one-hot action vector of the example.
func (ex Example) Policy() ([]float32, error) {
	if err := ex.validAction(); err != nil {
		return nil, err
	}
	retVal := make([]float32, actionspace.Size)
	retVal[ex.Action] = 1
	return retVal, nil
}

// Move decodes the action of the example.
func (ex Example) Move() (game.Move, error) {
	return actionspace.Decode(ex.Action)
}

// PrepareBatches shuffles examples and packs as many whole batches as fit
// into dense tensors of shape (batches*BatchSize, InputSize) for positions
// and (batches*BatchSize, ActionSpace) for policies.
func PrepareBatches(examples []Example, conf dual.Config, r *rand.Rand) (Xs, Next, Policies *tensor.Dense, batches int, err error) {
	shuffleExamples(examples, r)
	batches = len(examples) / conf.BatchSize
	if batches == 0 {
		return nil, nil, nil, 0, errors.Errorf("%d examples do not fill a batch of %d", len(examples), conf.BatchSize)
	}
	total := batches * conf.BatchSize
	inputSize := conf.InputSize()

	XsBacking := make([]float32, 0, total*inputSize)
	NextBacking := make([]float32, 0, total*inputSize)
	PoliciesBacking := make([]float32, total*conf.ActionSpace)
	for i, ex := range examples[:total] {
		if len(ex.Board) != inputSize || len(ex.Next) != inputSize {
			return nil, nil, nil, 0, errors.Errorf("example %d has %d inputs, want %d", i, len(ex.Board), inputSize)
		}
		if err := ex.validAction(); err != nil {
			return nil, nil, nil, 0, errors.WithMessagef(err, "example %d", i)
		}
		XsBacking = append(XsBacking, ex.Board...)
		NextBacking = append(NextBacking, ex.Next...)
		PoliciesBacking[i*conf.ActionSpace+ex.Action] = 1
	}

	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(total, inputSize))
	Next = tensor.New(tensor.WithBacking(NextBacking), tensor.WithShape(total, inputSize))
	Policies = tensor.New(tensor.WithBacking(PoliciesBacking), tensor.WithShape(total, conf.ActionSpace))
	return Xs, Next, Policies, batches, nil
}

func shuffleExamples(examples []Example, r *rand.Rand) {
	for i := range examples {
		j := r.Intn(i + 1)
		examples[i], examples[j] = examples[j], examples[i]
	}
}

// SaveExamples writes examples into filename.
func SaveExamples(filename string, examples []Example) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	if err := enc.Encode(examples); err != nil {
		return errors.WithStack(err)
	}
	return f.Close()
}

// LoadExamples reads examples written by SaveExamples.
func LoadExamples(filename string) ([]Example, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var examples []Example
	dec := gob.NewDecoder(f)
	if err = dec.Decode(&examples); err != nil {
		return nil, errors.WithStack(err)
	}
	return examples, nil
}
