package game

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Notnil implements Rules on top of github.com/notnil/chess.
type Notnil struct{}

// NewNotnil returns the notnil/chess backed rules engine.
func NewNotnil() *Notnil { return &Notnil{} }

func (n *Notnil) ParseFEN(fen string) (Position, error) {
	pos, err := chessPosition(fen)
	if err != nil {
		return Position{}, err
	}
	return FromChess(pos)
}

func (n *Notnil) FEN(p Position) string {
	pos, err := ToChess(p)
	if err != nil {
		return p.FEN()
	}
	return pos.String()
}

func (n *Notnil) LegalMoves(p Position) ([]Move, error) {
	pos, err := ToChess(p)
	if err != nil {
		return nil, err
	}
	valid := pos.ValidMoves()
	retVal := make([]Move, 0, len(valid))
	for _, m := range valid {
		retVal = append(retVal, MoveFromChess(m))
	}
	return retVal, nil
}

func (n *Notnil) Apply(p Position, m Move) (Position, error) {
	pos, err := ToChess(p)
	if err != nil {
		return Position{}, err
	}
	// Update trusts its input, so resolve m against the generated moves to
	// get the castling and en passant tags right.
	for _, cm := range pos.ValidMoves() {
		if MoveFromChess(cm) == m {
			return FromChess(pos.Update(cm))
		}
	}
	return Position{}, errors.Wrapf(ErrIllegalMove, "%v in %q", m, p.FEN())
}

// FromChess converts a notnil/chess position.
func FromChess(pos *chess.Position) (Position, error) {
	return ParseFEN(pos.String())
}

// ToChess converts p into a notnil/chess position.
func ToChess(p Position) (*chess.Position, error) {
	return chessPosition(p.FEN())
}

func chessPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFEN, "%q: %v", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// MoveFromChess converts a notnil/chess move. Both libraries index squares
// as rank*8 + file.
func MoveFromChess(m *chess.Move) Move {
	return Move{
		From:      Square(m.S1()),
		To:        Square(m.S2()),
		Promotion: kindFromChess(m.Promo()),
	}
}

func kindFromChess(pt chess.PieceType) PieceKind {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoKind
}
