package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnightAttacksCorner(t *testing.T) {
	// a1 has exactly two knight destinations: b3 and c2.
	bb := KnightAttacks[SquareA1]
	require.Equal(t, 2, bb.Count())
	require.NotZero(t, bb&SquareBB[SquareB3])
	require.NotZero(t, bb&SquareBB[SquareC2])
}

func TestKingAttacksCenter(t *testing.T) {
	require.Equal(t, 8, KingAttacks[SquareE4].Count())
}

func TestLineAndBetweenSymmetric(t *testing.T) {
	// a1-h8 diagonal: Between(a1,h8) excludes both ends, includes b2..g7.
	between := Between[SquareA1][SquareH8]
	require.Equal(t, 6, between.Count())
	require.Zero(t, between&SquareBB[SquareA1])
	require.Zero(t, between&SquareBB[SquareH8])
	require.NotZero(t, between&SquareBB[SquareD4])

	// Line is the same set from both directions.
	require.Equal(t, Line[SquareA1][SquareH8], Line[SquareH8][SquareA1])
}

func TestLineZeroWhenUnrelated(t *testing.T) {
	require.Zero(t, Line[SquareA1][SquareB3])
	require.Zero(t, Between[SquareA1][SquareB3])
}

func TestLineSameSquareIsZero(t *testing.T) {
	require.Zero(t, Line[SquareE4][SquareE4])
}

func TestPawnAttacksDirection(t *testing.T) {
	// A white pawn on e4 attacks d5 and f5.
	wbb := PawnAttacks[White][SquareE4]
	require.Equal(t, 2, wbb.Count())
	require.NotZero(t, wbb&SquareBB[SquareD5])
	require.NotZero(t, wbb&SquareBB[SquareF5])

	// A black pawn on e5 attacks d4 and f4.
	bbb := PawnAttacks[Black][SquareE5]
	require.Equal(t, 2, bbb.Count())
	require.NotZero(t, bbb&SquareBB[SquareD4])
	require.NotZero(t, bbb&SquareBB[SquareF4])
}

func TestRookAndBishopAttacksOpenBoard(t *testing.T) {
	require.Equal(t, 14, RookAttacks(SquareD4, bbEmpty).Count())
	require.Equal(t, 13, BishopAttacks(SquareD4, bbEmpty).Count())
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SquareBB[SquareD4] | SquareBB[SquareD6] | SquareBB[SquareF4]
	attacks := RookAttacks(SquareD4, occ)
	require.NotZero(t, attacks&SquareBB[SquareD5])
	require.NotZero(t, attacks&SquareBB[SquareD6])
	require.Zero(t, attacks&SquareBB[SquareD7])
	require.NotZero(t, attacks&SquareBB[SquareE4])
	require.NotZero(t, attacks&SquareBB[SquareF4])
	require.Zero(t, attacks&SquareBB[SquareG4])
}
