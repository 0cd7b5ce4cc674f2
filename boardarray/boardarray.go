// Package boardarray converts chess positions to and from dense integer
// layouts for machine learning.
//
// Every layout stores 64 cells in rank-major order (index = rank*8 + file)
// plus three values of side info: side to move (1 white, 0 black), the
// half-move clock and the full-move number. Castling rights and the en
// passant target ride on existing cells: the starting square of each rook
// that may still castle is flagged, and so is the pawn that can be captured
// en passant (not the empty target square behind it).
package boardarray

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/chessenc/game"
)

const (
	SideInfoSize = 3
	ArraySize    = game.BoardSize + SideInfoSize
)

var (
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrOutOfRangeValue = errors.New("value out of range")
	ErrInvalidPosition = errors.New("position cannot be encoded")
)

// LowLevel is an encoded position. Board has dtype int and the shape of
// Mode; Info is nil for Array and holds the side info otherwise.
type LowLevel struct {
	Mode  Mode
	Board *tensor.Dense
	Info  []int
}

// ToLowLevel encodes p in the given mode.
func ToLowLevel(p game.Position, mode Mode) (LowLevel, error) {
	if !mode.Valid() {
		return LowLevel{}, errors.Wrapf(ErrUnsupportedMode, "%d", int(mode))
	}
	c, err := fromPosition(p)
	if err != nil {
		return LowLevel{}, err
	}
	info := sideInfo(p)

	var backing []int
	switch mode {
	case Array:
		backing = make([]int, ArraySize)
		packBands(&c, backing)
		copy(backing[game.BoardSize:], info)
		info = nil
	case Matrix:
		backing = make([]int, game.BoardSize)
		packBands(&c, backing)
	case Tensor:
		backing = make([]int, Planes*game.BoardSize)
		packPlanes(&c, backing)
	}
	board := tensor.New(tensor.WithBacking(backing), tensor.WithShape(mode.Shape()...))
	return LowLevel{Mode: mode, Board: board, Info: info}, nil
}

// FromLowLevel decodes a payload produced by ToLowLevel. info must be
// empty in Array mode, where the side info is the tail of the payload.
func FromLowLevel(payload *tensor.Dense, info []int, mode Mode) (game.Position, error) {
	if !mode.Valid() {
		return game.Position{}, errors.Wrapf(ErrUnsupportedMode, "%d", int(mode))
	}
	data, err := payloadData(payload, mode)
	if err != nil {
		return game.Position{}, err
	}
	if len(info) != mode.InfoSize() {
		return game.Position{}, errors.Wrapf(ErrShapeMismatch, "%v side info has %d values, want %d", mode, len(info), mode.InfoSize())
	}

	var c cells
	switch mode {
	case Array:
		c, err = unpackBands(data)
		info = data[game.BoardSize:]
	case Matrix:
		c, err = unpackBands(data)
	case Tensor:
		c, err = unpackPlanes(data)
	}
	if err != nil {
		return game.Position{}, err
	}
	return c.toPosition(info)
}

func payloadData(payload *tensor.Dense, mode Mode) ([]int, error) {
	if payload == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "nil payload")
	}
	if !payload.Shape().Eq(mode.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%v payload has shape %v, want %v", mode, payload.Shape(), mode.Shape())
	}
	if payload.Dtype() != tensor.Int {
		return nil, errors.Wrapf(ErrShapeMismatch, "payload dtype %v, want int", payload.Dtype())
	}
	if payload.IsView() {
		payload = payload.Materialize().(*tensor.Dense)
	}
	data, ok := payload.Data().([]int)
	if !ok || len(data) != mode.Shape().TotalSize() {
		return nil, errors.Wrapf(ErrShapeMismatch, "payload holds %T", payload.Data())
	}
	return data, nil
}

// Position decodes l.
func (l LowLevel) Position() (game.Position, error) {
	return FromLowLevel(l.Board, l.Info, l.Mode)
}

// Ints returns the payload values followed by the separate side info.
// For every mode the last SideInfoSize values are the side info.
func (l LowLevel) Ints() []int {
	data := l.Board.Data().([]int)
	retVal := make([]int, 0, len(data)+len(l.Info))
	retVal = append(retVal, data...)
	return append(retVal, l.Info...)
}

// Float32 is Ints converted for a network input.
func (l LowLevel) Float32() []float32 {
	ints := l.Ints()
	retVal := make([]float32, len(ints))
	for i, v := range ints {
		retVal[i] = float32(v)
	}
	return retVal
}

// Encode is ToLowLevel for a mode given by name.
func Encode(p game.Position, mode string) (LowLevel, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return LowLevel{}, err
	}
	return ToLowLevel(p, m)
}
