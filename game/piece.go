package game

// Color is the side owning a piece or the side to move.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceKind is a piece type. The zero value is NoKind so that zero Moves
// and Pieces carry no promotion and no occupant.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every kind in plane order.
var PieceKinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

const kindSymbols = ".pnbrqk"

func (k PieceKind) Valid() bool { return k >= Pawn && k <= King }

// Plane is the 0-based index of the kind, Pawn=0 through King=5.
func (k PieceKind) Plane() int { return int(k) - 1 }

// Symbol is the lowercase FEN letter of the kind.
func (k PieceKind) Symbol() byte {
	if !k.Valid() {
		return '.'
	}
	return kindSymbols[k]
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// KindFromSymbol maps a FEN letter of either case to its kind.
func KindFromSymbol(b byte) PieceKind {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	for i := 1; i < len(kindSymbols); i++ {
		if kindSymbols[i] == b {
			return PieceKind(i)
		}
	}
	return NoKind
}

// Piece is the occupant of a square; the zero value is an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

var NoPiece = Piece{}

func (p Piece) Empty() bool { return p.Kind == NoKind }

// Symbol is the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Symbol() byte {
	s := p.Kind.Symbol()
	if p.Color == White && !p.Empty() {
		s -= 'a' - 'A'
	}
	return s
}

// PieceFromSymbol parses a FEN piece letter.
func PieceFromSymbol(b byte) Piece {
	k := KindFromSymbol(b)
	if k == NoKind {
		return NoPiece
	}
	c := Black
	if b >= 'A' && b <= 'Z' {
		c = White
	}
	return Piece{Kind: k, Color: c}
}
