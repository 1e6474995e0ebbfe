package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFENStartPos(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	require.NoError(t, err)
	require.Equal(t, White, pos.SideToMove)
	require.Equal(t, AnyCastle, pos.Castle)
	require.Equal(t, NoSquare, pos.EnPassant)
	require.Equal(t, WhiteRook, pos.Get(SquareA1))
	require.Equal(t, BlackKing, pos.Get(SquareE8))
	require.Equal(t, 16, pos.PieceBB[White][Pawn].Count()+pos.PieceBB[Black][Pawn].Count())
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{FENStartPos, FENKiwipete, FENDuplain, FENPromotions} {
		pos, err := ParseFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, pos.FEN())
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"kkkkkkkk/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range cases {
		_, err := ParseFEN(fen)
		require.Error(t, err, "fen %q should be rejected", fen)
	}
}

func TestNewStartPosition(t *testing.T) {
	pos := NewStartPosition()
	require.Equal(t, FENStartPos, pos.FEN())
}
