package actionspace

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/vecf32"

	"github.com/chessenc/game"
)

// OneHot returns the action vector of m: weight at its index, zero elsewhere.
func OneHot(m game.Move, weight float32) ([]float32, error) {
	idx, err := Encode(m)
	if err != nil {
		return nil, err
	}
	retVal := make([]float32, Size)
	retVal[idx] = weight
	return retVal, nil
}

// FromPolicy decodes the highest scoring entry of a policy vector, such as
// a model output or a one-hot action vector.
func FromPolicy(policy []float32) (game.Move, int, error) {
	if err := validPolicy(policy); err != nil {
		return game.Move{}, 0, err
	}
	idx := vecf32.Argmax(policy)
	m, err := Decode(idx)
	return m, idx, err
}

// MaskLegal keeps the entries of policy that belong to legal moves and
// renormalises them to sum to one. The input is not modified.
func MaskLegal(policy []float32, legal []game.Move) ([]float32, error) {
	if err := validPolicy(policy); err != nil {
		return nil, err
	}
	retVal := make([]float32, Size)
	for _, m := range legal {
		idx, err := Encode(m)
		if err != nil {
			return nil, errors.WithMessagef(err, "legal move %v", m)
		}
		retVal[idx] = policy[idx]
	}
	sum := vecf32.Sum(retVal)
	if sum <= 0 {
		return nil, errors.Wrap(ErrInvalidPolicy, "no weight on legal moves")
	}
	vecf32.Scale(retVal, 1/sum)
	return retVal, nil
}

func validPolicy(policy []float32) error {
	if len(policy) != Size {
		return errors.Wrapf(ErrInvalidPolicy, "length %d, want %d", len(policy), Size)
	}
	for i, v := range policy {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidPolicy, "entry %d is %v", i, v)
		}
	}
	return nil
}
