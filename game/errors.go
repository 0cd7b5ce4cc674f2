package game

import "github.com/pkg/errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidFEN        = errors.New("invalid FEN")
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoMove            = errors.New("positions are not connected by a single move")
)
