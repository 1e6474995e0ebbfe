// basic.go defines the primitive chess types: squares, figures, colors,
// pieces, bitboards and castling rights. Everything else in the engine
// package is built on top of these.
package engine

import "fmt"

var errInvalidSquare = fmt.Errorf("invalid square")

// Square identifies one of the 64 board locations. Square 0 is a1, 7 is
// h1, 8 is a2, ... 63 is h8. This layout is load-bearing: shifting a
// Bitboard one rank north is "<< 8".
type Square uint8

// NoSquare is the sentinel for "no square", e.g. a position with no
// en-passant target.
const NoSquare Square = 64

// RankFile builds a Square from a 0-based rank and file.
func RankFile(r, f int) Square {
	return Square(r*8 + f)
}

// SquareFromString parses a square given in algebraic notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errInvalidSquare
	}
	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return NoSquare, errInvalidSquare
	}
	return RankFile(r, f), nil
}

// Bitboard returns the single-bit board with sq set.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Relative returns the square dr ranks and df files away from sq. The
// result is only meaningful if it stays on the board.
func (sq Square) Relative(dr, df int) Square {
	return Square(int(sq) + dr*8 + df)
}

// Rank returns sq's rank, 0..7.
func (sq Square) Rank() int { return int(sq / 8) }

// File returns sq's file, 0..7.
func (sq Square) File() int { return int(sq % 8) }

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{byte(sq.File() + 'a'), byte(sq.Rank() + '1')})
}

// Figure is a colorless piece kind.
type Figure uint8

const (
	NoFigure Figure = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	FigureArraySize = int(iota)
	FigureMinValue  = Pawn
	FigureMaxValue  = King
)

// figureValue is a per-figure material value, in centipawns, used as the
// MVV-LVA weight in move ordering. The evaluator does not read it; it
// uses FigureBonus (material.go).
var figureValue = [FigureArraySize]int{0, 100, 325, 325, 500, 975, 10000}

var figureSymbol = [FigureArraySize]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

func (fig Figure) String() string { return string(figureSymbol[fig]) }

// Color is White or Black.
type Color uint8

const (
	NoColor Color = iota
	White
	Black

	ColorArraySize = int(iota)
	ColorMinValue  = White
	ColorMaxValue  = Black
)

// ColorWeight is +1 for White, -1 for Black; used to fold per-color
// material into a single signed score from White's point of view.
var ColorWeight = [ColorArraySize]int{0, 1, -1}

// Other returns the opposing color.
func (co Color) Other() Color { return White + Black - co }

func (co Color) String() string {
	switch co {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// Piece packs a Figure and a Color into a single byte.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// ColorFigure builds the piece of figure fig belonging to co.
func ColorFigure(co Color, fig Figure) Piece {
	return Piece(fig)<<2 + Piece(co)
}

// Color returns the piece's color, or NoColor for NoPiece.
func (pi Piece) Color() Color { return Color(pi & 3) }

// Figure returns the piece's figure, or NoFigure for NoPiece.
func (pi Piece) Figure() Figure { return Figure(pi >> 2) }

// pieceSymbols maps a Piece value to its FEN letter; indices that are
// not valid pieces (color/figure combinations that never occur) hold '?'.
const pieceSymbols = ".????Pp??Nn??Bb??Rr??Qq??Kk?"

func (pi Piece) String() string { return string(pieceSymbols[pi]) }

// Bitboard is a 64-bit square set: bit s is set iff square s belongs to
// the set.
type Bitboard uint64

// RankBb returns the bitboard of an entire rank (0-based).
func RankBb(rank int) Bitboard { return bbRank1 << uint(8*rank) }

// FileBb returns the bitboard of an entire file (0-based).
func FileBb(file int) Bitboard { return bbFileA << uint(file) }

// LSB returns the least-significant set bit, or 0 for an empty board.
func (bb Bitboard) LSB() Bitboard { return bb & -bb }

// AsSquare returns the square of a single-bit board. Undefined for a
// zero or multi-bit board.
func (bb Bitboard) AsSquare() Square {
	return Square(deBruijn64[bb*deBruijnMul>>deBruijnShift])
}

// Pop removes and returns the least-significant square from *bb.
func (bb *Bitboard) Pop() Square {
	lsb := bb.LSB()
	*bb -= lsb
	return lsb.AsSquare()
}

// Count returns the number of set bits.
func (bb Bitboard) Count() int { return popcount(uint64(bb)) }

// deBruijn64 is the classic de Bruijn bit-scan table, kept table-driven
// like the rest of the geometry machinery instead of calling out to
// math/bits.
var deBruijn64 = [64]uint8{
	0, 1, 2, 7, 3, 13, 8, 19, 4, 25, 14, 28, 9, 34, 20, 40,
	5, 17, 26, 38, 15, 46, 29, 48, 10, 31, 35, 54, 21, 50, 41, 57,
	63, 6, 12, 18, 24, 27, 33, 39, 16, 37, 45, 47, 30, 53, 49, 56,
	62, 11, 23, 32, 36, 44, 52, 55, 61, 22, 43, 51, 60, 42, 59, 58,
}

const (
	deBruijnMul   = 0x0218A392CD3D5DBF
	deBruijnShift = 58
)

func popcount(n uint64) int {
	c := 0
	for ; n > 0; c++ {
		n &= n - 1
	}
	return c
}

// MoveFlag distinguishes the kinds of move spec.md's data model names:
// quiet, double pawn push, the two castles, capture, en-passant and the
// eight promotion variants (plain and capturing, one per promoted figure).
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePawnPush
	FlagShortCastle
	FlagLongCastle
	FlagCapture
	FlagEnPassant
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagCapturePromoKnight
	FlagCapturePromoBishop
	FlagCapturePromoRook
	FlagCapturePromoQueen
)

// IsCapture reports whether the flag moves a piece onto an occupied
// enemy square (en-passant counts, since it removes an enemy pawn).
func (f MoveFlag) IsCapture() bool {
	return f == FlagCapture || f == FlagEnPassant || f >= FlagCapturePromoKnight
}

// IsPromotion reports whether the flag promotes the moving pawn.
func (f MoveFlag) IsPromotion() bool {
	return f >= FlagPromoKnight
}

// PromotionFigure returns the figure a promoting flag promotes to.
// Undefined if !f.IsPromotion().
func (f MoveFlag) PromotionFigure() Figure {
	switch f {
	case FlagPromoKnight, FlagCapturePromoKnight:
		return Knight
	case FlagPromoBishop, FlagCapturePromoBishop:
		return Bishop
	case FlagPromoRook, FlagCapturePromoRook:
		return Rook
	case FlagPromoQueen, FlagCapturePromoQueen:
		return Queen
	}
	return NoFigure
}

// Move is the 16-bit encoding spec.md's data model requires: 6 bits of
// source square, 6 bits of destination square, 4 bits of flag. It
// carries nothing else — captured piece, prior castling rights, and so
// on live in Position's undo stack (see position.go), not in the move
// itself.
type Move uint16

// NullMove is the required sentinel "no move" value. It encodes from
// == to == a1 with flag FlagQuiet, which can never be produced by the
// generator (a move never has equal source and destination), so it is
// unambiguous.
const NullMove Move = 0

// NewMove packs a move from its fields.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(flag)<<12)
}

// From returns the move's source square.
func (m Move) From() Square { return Square(m & 0x3f) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3f) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0xf) }

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool { return m == NullMove }

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Flag().IsPromotion() {
		s += m.Flag().PromotionFigure().String()
	}
	return s
}

// Castle is a bitmask of the four castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle Castle = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

var castleSymbol = [4]struct {
	bit Castle
	ch  byte
}{
	{WhiteOO, 'K'}, {WhiteOOO, 'Q'}, {BlackOO, 'k'}, {BlackOOO, 'q'},
}

func (ca Castle) String() string {
	if ca == NoCastle {
		return "-"
	}
	var b []byte
	for _, cs := range castleSymbol {
		if ca&cs.bit != 0 {
			b = append(b, cs.ch)
		}
	}
	return string(b)
}

// lostCastleRights[sq] is the set of castling rights forfeited the
// moment a piece leaves or arrives at sq (a king or rook move, or a
// rook being captured on its home square).
var lostCastleRights [64]Castle

func init() {
	lostCastleRights[SquareA1] = WhiteOOO
	lostCastleRights[SquareE1] = WhiteOOO | WhiteOO
	lostCastleRights[SquareH1] = WhiteOO
	lostCastleRights[SquareA8] = BlackOOO
	lostCastleRights[SquareE8] = BlackOOO | BlackOO
	lostCastleRights[SquareH8] = BlackOO
}
