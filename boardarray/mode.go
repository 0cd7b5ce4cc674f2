package boardarray

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/chessenc/game"
)

// Mode selects one of the low level layouts of a position.
type Mode int

const (
	// Array is a flat vector: 64 cells followed by the side info.
	Array Mode = iota
	// Matrix is the 64 cells as an 8x8 grid, rank-major, with the side
	// info returned separately.
	Matrix
	// Tensor is one 8x8 plane per piece kind holding -2..2, with the side
	// info returned separately.
	Tensor
)

var modeNames = [...]string{"array", "matrix", "tensor"}

func (m Mode) Valid() bool { return m >= Array && m <= Tensor }

func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses one of the lowercase mode names.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedMode, "%q", s)
}

// Shape is the shape of the payload in mode m.
func (m Mode) Shape() tensor.Shape {
	switch m {
	case Array:
		return tensor.Shape{ArraySize}
	case Matrix:
		return tensor.Shape{game.RowNum, game.ColNum}
	case Tensor:
		return tensor.Shape{Planes, game.RowNum, game.ColNum}
	}
	return nil
}

// InfoSize is the length of the separate side info in mode m.
func (m Mode) InfoSize() int {
	if m == Array {
		return 0
	}
	return SideInfoSize
}

// MarshalText and UnmarshalText let modes appear by name in JSON configs.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedMode, "%d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
