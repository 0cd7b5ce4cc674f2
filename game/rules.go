package game

// Rules is the capability a chess rules engine provides to this module.
// The codecs never call it; the dataset walker and the tools use it to
// replay games and to enumerate legal moves.
type Rules interface {
	ParseFEN(fen string) (Position, error)
	FEN(p Position) string
	LegalMoves(p Position) ([]Move, error)
	Apply(p Position, m Move) (Position, error)
}
