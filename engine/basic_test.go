package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d7"} {
		sq, err := SquareFromString(s)
		require.NoError(t, err)
		require.Equal(t, s, sq.String())
	}
}

func TestSquareFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "e4x"} {
		_, err := SquareFromString(s)
		require.Error(t, err)
	}
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(SquareE2, SquareE4, FlagDoublePawnPush)
	require.Equal(t, SquareE2, m.From())
	require.Equal(t, SquareE4, m.To())
	require.Equal(t, FlagDoublePawnPush, m.Flag())
	require.False(t, m.IsNull())
	require.Equal(t, "e2e4", m.String())
}

func TestMovePromotionString(t *testing.T) {
	m := NewMove(SquareA7, SquareA8, FlagPromoQueen)
	require.Equal(t, Queen, m.Flag().PromotionFigure())
	require.Equal(t, "a7a8q", m.String())
}

func TestNullMove(t *testing.T) {
	require.True(t, NullMove.IsNull())
	require.Equal(t, "0000", NullMove.String())
}

func TestBitboardPopCount(t *testing.T) {
	bb := SquareA1.Bitboard() | SquareH8.Bitboard() | SquareE4.Bitboard()
	require.Equal(t, 3, bb.Count())

	seen := map[Square]bool{}
	for bb != 0 {
		seen[bb.Pop()] = true
	}
	require.Len(t, seen, 3)
	require.True(t, seen[SquareA1])
	require.True(t, seen[SquareH8])
	require.True(t, seen[SquareE4])
}

func TestColorFigurePacking(t *testing.T) {
	for _, co := range []Color{White, Black} {
		for fig := FigureMinValue; fig <= FigureMaxValue; fig++ {
			pi := ColorFigure(co, fig)
			require.Equal(t, co, pi.Color())
			require.Equal(t, fig, pi.Figure())
		}
	}
}

func TestCastleString(t *testing.T) {
	require.Equal(t, "-", NoCastle.String())
	require.Equal(t, "KQkq", AnyCastle.String())
	require.Equal(t, "Kq", (WhiteOO | BlackOOO).String())
}
