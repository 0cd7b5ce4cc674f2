package game

// CastleRights is a set of castling rights.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastleRights = 0
	AllCastling              = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every right in r is present.
func (c CastleRights) Has(r CastleRights) bool { return c&r == r }

func (c CastleRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var s []byte
	for _, r := range castleOrder {
		if c.Has(r.right) {
			s = append(s, r.symbol)
		}
	}
	return string(s)
}

// castleOrder pairs each right with its FEN letter and the starting square
// of the rook it belongs to.
var castleOrder = [...]struct {
	right  CastleRights
	symbol byte
	rook   Square
	color  Color
}{
	{WhiteKingSide, 'K', 7, White},
	{WhiteQueenSide, 'Q', 0, White},
	{BlackKingSide, 'k', 63, Black},
	{BlackQueenSide, 'q', 56, Black},
}

// CastlingRook returns the rook starting square of a single right.
func CastlingRook(r CastleRights) (Square, Color, bool) {
	for _, c := range castleOrder {
		if c.right == r {
			return c.rook, c.color, true
		}
	}
	return NoSquare, White, false
}

// CastlingRight returns the right keyed by a rook starting square.
func CastlingRight(sq Square) (CastleRights, bool) {
	for _, c := range castleOrder {
		if c.rook == sq {
			return c.right, true
		}
	}
	return NoCastling, false
}

// Position is a full chess position. It is a value type; copies are
// independent and two positions compare equal with ==.
//
// The zero value is not a usable position: its EnPassant is a1 and its
// FullMove is 0. Start from Empty, StartingPosition or ParseFEN instead of
// a bare struct literal.
type Position struct {
	Board     [BoardSize]Piece
	Turn      Color
	Castling  CastleRights
	EnPassant Square
	HalfMove  int
	FullMove  int
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// Empty returns a position with no pieces, white to move.
func Empty() Position {
	return Position{EnPassant: NoSquare, FullMove: 1}
}

// At returns the piece on sq.
func (p Position) At(sq Square) Piece { return p.Board[sq] }

// Eq reports whether p and other describe the same position.
func (p Position) Eq(other Position) bool { return p == other }
