package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseFEN parses a position in Forsyth-Edwards Notation. The clock fields
// may be omitted and default to "0 1".
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return Position{}, errors.Wrapf(ErrInvalidFEN, "%q: want 4 to 6 fields", fen)
	}
	p := Empty()
	if err := parsePlacement(&p, parts[0]); err != nil {
		return Position{}, errors.WithMessagef(err, "%q", fen)
	}

	switch parts[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return Position{}, errors.Wrapf(ErrInvalidFEN, "side to move %q", parts[1])
	}

	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			r, ok := castleFromSymbol(parts[2][i])
			if !ok {
				return Position{}, errors.Wrapf(ErrInvalidFEN, "castling %q", parts[2])
			}
			p.Castling |= r
		}
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Position{}, errors.Wrapf(ErrInvalidFEN, "en passant %q", parts[3])
		}
		p.EnPassant = sq
	}

	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return Position{}, errors.Wrapf(ErrInvalidFEN, "half-move clock %q", parts[4])
		}
		p.HalfMove = n
	}
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return Position{}, errors.Wrapf(ErrInvalidFEN, "full-move number %q", parts[5])
		}
		p.FullMove = n
	}
	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != RowNum {
		return errors.Wrapf(ErrInvalidFEN, "%d ranks", len(ranks))
	}
	for i, row := range ranks {
		rank := RowNum - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromSymbol(c)
			if piece.Empty() {
				return errors.Wrapf(ErrInvalidFEN, "piece %q", c)
			}
			if file >= ColNum {
				return errors.Wrapf(ErrInvalidFEN, "rank %d overflows", rank+1)
			}
			p.Board[NewSquare(file, rank)] = piece
			file++
		}
		if file != ColNum {
			return errors.Wrapf(ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

func castleFromSymbol(b byte) (CastleRights, bool) {
	for _, c := range castleOrder {
		if c.symbol == b {
			return c.right, true
		}
	}
	return NoCastling, false
}

// FEN returns the Forsyth-Edwards Notation of p. Castling letters are
// emitted in the canonical KQkq order.
func (p Position) FEN() string {
	var sb strings.Builder
	for rank := RowNum - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < ColNum; file++ {
			piece := p.Board[NewSquare(file, rank)]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMove))
	return sb.String()
}
