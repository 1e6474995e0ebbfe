package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// Back-rank mate: black king g8 behind its own f7/g7/h7 pawns, white
	// rook e1 mates with Re1-e8.
	pos, err := ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(nil)
	var stop atomic.Bool
	info := s.Search(pos, Limits{Depth: 3}, &stop, nil)

	require.NotEmpty(t, info.PV)
	best := info.PV[0]
	require.Equal(t, SquareE1, best.From())
	require.Equal(t, SquareE8, best.To())
}

func TestSearchRespectsStopFlag(t *testing.T) {
	pos := NewStartPosition()
	s := NewSearcher(nil)
	var stop atomic.Bool
	stop.Store(true)

	info := s.Search(pos, Limits{Infinite: true}, &stop, nil)
	require.NotEmpty(t, info.PV)
}

func TestSearchReportsIncreasingDepth(t *testing.T) {
	pos := NewStartPosition()
	s := NewSearcher(nil)
	var stop atomic.Bool

	var depths []int
	s.Search(pos, Limits{Depth: 3}, &stop, func(i Info) {
		depths = append(depths, i.Depth)
	})
	require.Equal(t, []int{1, 2, 3}, depths)
}

func TestSearchDrawByInsufficientMaterial(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(nil)
	var stop atomic.Bool
	info := s.Search(pos, Limits{Depth: 2}, &stop, nil)
	require.Equal(t, 0, info.Score)
}

func TestSearchNoLegalMovesReturnsNullMove(t *testing.T) {
	// Stalemate: black king a8 has no moves, no checkers.
	pos, err := ParseFEN("k7/2Q5/2K5/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.False(t, pos.InCheck())
	var moves []Move
	moves = pos.GenerateLegalMoves(moves)
	require.Empty(t, moves)

	s := NewSearcher(nil)
	var stop atomic.Bool
	info := s.Search(pos, Limits{Depth: 1}, &stop, nil)
	require.Len(t, info.PV, 1)
	require.True(t, info.PV[0].IsNull())
}
