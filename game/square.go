package game

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	RowNum    = 8
	ColNum    = 8
	BoardSize = RowNum * ColNum
)

// Square is a board cell, 0 (a1) through 63 (h8). index = rank*8 + file.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

const fileLetters = "abcdefgh"

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*ColNum + file)
}

func (s Square) File() int   { return int(s) % ColNum }
func (s Square) Rank() int   { return int(s) / ColNum }
func (s Square) Valid() bool { return s >= 0 && s < BoardSize }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	file, rank := SquareToAlgebraic(s)
	return fmt.Sprintf("%c%d", file, rank)
}

// SquareToAlgebraic returns the file letter and the 1-based rank number of s.
func SquareToAlgebraic(s Square) (file byte, rank int) {
	return fileLetters[s.File()], s.Rank() + 1
}

// AlgebraicToSquare is the inverse of SquareToAlgebraic.
func AlgebraicToSquare(file byte, rank int) (Square, error) {
	if file < 'a' || file > 'h' || rank < 1 || rank > RowNum {
		return NoSquare, errors.Wrapf(ErrInvalidCoordinate, "%q%d", file, rank)
	}
	return NewSquare(int(file-'a'), rank-1), nil
}

// ParseSquare parses a square in algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(ErrInvalidCoordinate, "%q", s)
	}
	return AlgebraicToSquare(s[0], int(s[1]-'0'))
}
