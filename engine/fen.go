// fen.go parses and formats position text notation, limited to the
// exact six-field grammar spec.md §6 gives — nothing beyond it, per
// spec.md §1's scope cut. The teacher's yacc-based EPD grammar is not
// carried forward (see DESIGN.md).
package engine

import (
	"strconv"
	"strings"
)

var fenPieceSymbol = map[byte]Piece{
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop,
	'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop,
	'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
}

// ParseFEN parses the six-field position text notation of spec.md §6
// into a fresh Position.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, newError(MalformedPosition, "expected 6 fields, got %d", len(fields))
	}

	pos := NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, newError(MalformedPosition, "expected 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range []byte(row) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pi, ok := fenPieceSymbol[c]
			if !ok {
				return nil, newError(MalformedPosition, "unknown piece symbol %q", c)
			}
			if file >= 8 {
				return nil, newError(MalformedPosition, "rank %d overflows", rank+1)
			}
			sq := RankFile(rank, file)
			if !pos.IsEmpty(sq) {
				return nil, newError(MalformedPosition, "square %v occupied twice", sq)
			}
			pos.Put(sq, pi)
			file++
		}
		if file != 8 {
			return nil, newError(MalformedPosition, "rank %d has %d files, want 8", rank+1, file)
		}
	}

	if pos.PieceBB[White][Pawn].Count() > 8 || pos.PieceBB[Black][Pawn].Count() > 8 {
		return nil, newError(MalformedPosition, "more than 8 pawns for one color")
	}
	if pos.PieceBB[White][King].Count() != 1 || pos.PieceBB[Black][King].Count() != 1 {
		return nil, newError(MalformedPosition, "each color must have exactly one king")
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, newError(MalformedPosition, "unknown side to move %q", fields[1])
	}
	if pos.SideToMove == Black {
		pos.Hash ^= zobristColor
	}

	var castle Castle
	if fields[2] != "-" {
		for _, c := range []byte(fields[2]) {
			switch c {
			case 'K':
				castle |= WhiteOO
			case 'Q':
				castle |= WhiteOOO
			case 'k':
				castle |= BlackOO
			case 'q':
				castle |= BlackOOO
			default:
				return nil, newError(MalformedPosition, "unknown castling flag %q", c)
			}
		}
	}
	pos.Castle = castle
	pos.Hash ^= castleZobrist(castle)

	pos.EnPassant = NoSquare
	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, newError(MalformedPosition, "bad en-passant square %q", fields[3])
		}
		pos.EnPassant = sq
		pos.Hash ^= enPassantZobrist(sq)
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return nil, newError(MalformedPosition, "bad halfmove clock %q", fields[4])
	}
	pos.HalfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return nil, newError(MalformedPosition, "bad fullmove number %q", fields[5])
	}
	pos.FullmoveNumber = full

	return pos, nil
}

// FEN formats pos back into the six-field grammar; ParseFEN(pos.FEN())
// round-trips (spec.md §8's round-trip law).
func (pos *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pi := pos.Get(RankFile(r, f))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pi.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.Castle.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

// NewStartPosition returns the standard initial position.
func NewStartPosition() *Position {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return pos
}
