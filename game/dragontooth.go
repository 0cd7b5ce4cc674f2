package game

import (
	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Dragontooth implements Rules on top of github.com/dylhunn/dragontoothmg.
// Positions cross the boundary as FEN.
type Dragontooth struct{}

// NewDragontooth returns the dragontoothmg backed rules engine.
func NewDragontooth() *Dragontooth { return &Dragontooth{} }

func (d *Dragontooth) ParseFEN(fen string) (Position, error) {
	// dragontoothmg does not report malformed input, so validate first
	p, err := ParseFEN(fen)
	if err != nil {
		return Position{}, err
	}
	b := dragontoothmg.ParseFen(p.FEN())
	return ParseFEN(b.ToFen())
}

func (d *Dragontooth) FEN(p Position) string {
	b := dragontoothmg.ParseFen(p.FEN())
	return b.ToFen()
}

func (d *Dragontooth) LegalMoves(p Position) ([]Move, error) {
	b := dragontoothmg.ParseFen(p.FEN())
	generated := b.GenerateLegalMoves()
	retVal := make([]Move, 0, len(generated))
	for i := range generated {
		retVal = append(retVal, moveFromDragontooth(&generated[i]))
	}
	return retVal, nil
}

func (d *Dragontooth) Apply(p Position, m Move) (Position, error) {
	b := dragontoothmg.ParseFen(p.FEN())
	generated := b.GenerateLegalMoves()
	moves := make([]Move, len(generated))
	for i := range generated {
		moves[i] = moveFromDragontooth(&generated[i])
	}
	i := slices.Index(moves, m)
	if i < 0 {
		return Position{}, errors.Wrapf(ErrIllegalMove, "%v in %q", m, p.FEN())
	}
	b.Apply(generated[i])
	return ParseFEN(b.ToFen())
}

func moveFromDragontooth(m *dragontoothmg.Move) Move {
	retVal := Move{From: Square(m.From()), To: Square(m.To())}
	switch m.Promote() {
	case dragontoothmg.Knight:
		retVal.Promotion = Knight
	case dragontoothmg.Bishop:
		retVal.Promotion = Bishop
	case dragontoothmg.Rook:
		retVal.Promotion = Rook
	case dragontoothmg.Queen:
		retVal.Promotion = Queen
	}
	return retVal
}
