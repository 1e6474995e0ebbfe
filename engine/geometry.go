// geometry.go precomputes every table that depends only on the shape
// of the board, not on where pieces currently sit. It is pure: the
// same 64-square layout always yields the same tables, so this is run
// once from an init function and never touched again (spec.md §4.1's
// Geometry Tables component).
package engine

// SquareBB[s] is the single-bit board for square s. Kept as a table
// (not just Square.Bitboard()) because spec.md §3 names it as its own
// table, and tests probe it directly.
var SquareBB [64]Bitboard

// KnightAttacks[s] is the set of squares a knight on s attacks.
var KnightAttacks [64]Bitboard

// KingAttacks[s] is the king's neighborhood, excluding s itself.
var KingAttacks [64]Bitboard

// OuterNeighbors[s] is the set of squares exactly two king-steps from
// s, excluding s and its direct neighbors. Nothing in the engine reads
// it at present; DefaultEvaluator has no king safety term.
var OuterNeighbors [64]Bitboard

// PawnAttacks[c][s] is the set of squares a pawn of color c on s
// attacks. It is zero on ranks a pawn of that color can never occupy.
var PawnAttacks [ColorArraySize][64]Bitboard

// PawnSinglePush[c][s] is the single push target of a pawn of color c
// on s; zero where pushing would leave the board.
var PawnSinglePush [ColorArraySize][64]Bitboard

// PawnDoublePush[c][s] is the double push target; nonzero only when s
// is on that color's starting rank.
var PawnDoublePush [ColorArraySize][64]Bitboard

// DiagA1H8[s] and DiagA8H1[s] are the full diagonals through s.
var DiagA1H8 [64]Bitboard
var DiagA8H1 [64]Bitboard

// Line[a][b] has every bit set on the unique rank/file/diagonal
// through a and b, including b; it is zero if a and b don't share one
// (or a == b).
var Line [64][64]Bitboard

// Between[a][b] has every bit strictly between a and b set on their
// shared line; it never includes b. Zero if a and b don't share a line.
var Between [64][64]Bitboard

// PassedMask[c][s] covers the squares in front of s, on s's file and
// the two adjacent files, that an enemy pawn of the opposite color
// would have to occupy or control to stop a passed pawn of color c on
// s. Built per spec.md §4.1 using file(s)-1 AND file(s)+1 (the source
// repository's known bug used file(s)-1 twice; this spec calls for the
// corrected version).
var PassedMask [ColorArraySize][64]Bitboard

func init() {
	initSquareBB()
	initJumpTables()
	initPawnTables()
	initDiagonals()
	initLineAndBetween()
	initPassedMask()
}

func initSquareBB() {
	for sq := Square(0); sq < 64; sq++ {
		SquareBB[sq] = sq.Bitboard()
	}
}

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, +1}, {+2, -1}, {+2, +1},
	{-1, -2}, {-1, +2}, {+1, -2}, {+1, +2},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, +0}, {-1, +1}, {+0, +1},
	{+1, +1}, {+1, +0}, {+1, -1}, {+0, -1},
}

func initJumpTables() {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			KnightAttacks[sq] = jumpAttack(r, f, knightDeltas[:])
			KingAttacks[sq] = jumpAttack(r, f, kingDeltas[:])
		}
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			near := KingAttacks[sq] | SquareBB[sq]
			outer := Bitboard(0)
			for _, d := range kingDeltas {
				r2, f2 := r+2*d[0], f+2*d[1]
				if inBounds(r2, f2) {
					outer |= SquareBB[RankFile(r2, f2)]
				}
				// Also cover the "knight-shaped" two-step squares, e.g.
				// two ranks and one file away, which a pure 2x king
				// step misses.
			}
			for _, d := range knightDeltas {
				r2, f2 := r+d[0], f+d[1]
				if inBounds(r2, f2) {
					outer |= SquareBB[RankFile(r2, f2)]
				}
			}
			OuterNeighbors[sq] = outer &^ near
		}
	}
}

func jumpAttack(r, f int, deltas [][2]int) Bitboard {
	bb := Bitboard(0)
	for _, d := range deltas {
		r2, f2 := r+d[0], f+d[1]
		if inBounds(r2, f2) {
			bb |= RankFile(r2, f2).Bitboard()
		}
	}
	return bb
}

func inBounds(r, f int) bool {
	return 0 <= r && r < 8 && 0 <= f && f < 8
}

func initPawnTables() {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)

			if r >= 1 && r <= 6 {
				PawnAttacks[White][sq] = jumpAttack(r, f, [][2]int{{+1, -1}, {+1, +1}})
				PawnSinglePush[White][sq] = RankFile(r+1, f).Bitboard()
				if r == 1 {
					PawnDoublePush[White][sq] = RankFile(r+2, f).Bitboard()
				}
			}
			if r >= 1 && r <= 6 {
				PawnAttacks[Black][sq] = jumpAttack(r, f, [][2]int{{-1, -1}, {-1, +1}})
				PawnSinglePush[Black][sq] = RankFile(r-1, f).Bitboard()
				if r == 6 {
					PawnDoublePush[Black][sq] = RankFile(r-2, f).Bitboard()
				}
			}
		}
	}
}

func initDiagonals() {
	// a1h8-style diagonals run northeast; a8h1-style run northwest.
	neDeltas := [2][2]int{{-1, -1}, {+1, +1}}
	nwDeltas := [2][2]int{{-1, +1}, {+1, -1}}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			DiagA1H8[sq] = rayUnion(r, f, neDeltas[:]) | SquareBB[sq]
			DiagA8H1[sq] = rayUnion(r, f, nwDeltas[:]) | SquareBB[sq]
		}
	}
}

func rayUnion(r, f int, deltas [][2]int) Bitboard {
	bb := Bitboard(0)
	for _, d := range deltas {
		r2, f2 := r, f
		for {
			r2, f2 = r2+d[0], f2+d[1]
			if !inBounds(r2, f2) {
				break
			}
			bb |= RankFile(r2, f2).Bitboard()
		}
	}
	return bb
}

// sameLine reports whether a and b share a rank, file, or diagonal,
// using rank/file arithmetic (redesigned per spec.md §9 instead of
// scanning bits).
func sameLine(a, b Square) bool {
	if a == b {
		return false
	}
	ar, af := a.Rank(), a.File()
	br, bf := b.Rank(), b.File()
	if ar == br || af == bf {
		return true
	}
	dr, df := ar-br, af-bf
	if dr < 0 {
		dr = -dr
	}
	if df < 0 {
		df = -df
	}
	return dr == df
}

func initLineAndBetween() {
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			if !sameLine(a, b) {
				continue
			}
			ar, af := a.Rank(), a.File()
			br, bf := b.Rank(), b.File()
			dr, df := sign(br-ar), sign(bf-af)

			// Between: strictly between a and b, excluding both ends.
			var between Bitboard
			for r, f := ar+dr, af+df; !(r == br && f == bf); r, f = r+dr, f+df {
				between |= SquareBB[RankFile(r, f)]
			}

			// Line: the whole rank/file/diagonal through a and b, not
			// just the a..b segment.
			var line Bitboard
			r, f := ar, af
			for inBounds(r-dr, f-df) {
				r, f = r-dr, f-df
			}
			for inBounds(r, f) {
				line |= SquareBB[RankFile(r, f)]
				r, f = r+dr, f+df
			}

			Line[a][b] = line
			Between[a][b] = between
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func initPassedMask() {
	for sq := Square(0); sq < 64; sq++ {
		file := sq.File()
		files := FileBb(file)
		if file > 0 {
			files |= FileBb(file - 1)
		}
		if file < 7 {
			files |= FileBb(file + 1)
		}

		aheadWhite := Bitboard(0)
		aheadBlack := Bitboard(0)
		for r := 0; r < 8; r++ {
			if r > sq.Rank() {
				aheadWhite |= RankBb(r)
			}
			if r < sq.Rank() {
				aheadBlack |= RankBb(r)
			}
		}

		PassedMask[White][sq] = files & aheadWhite
		PassedMask[Black][sq] = files & aheadBlack
	}
}
