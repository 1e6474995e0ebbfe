package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talonchess/talon/engine"
)

// Known-good leaf counts at fixed depths, the standard perft oracle
// values for these four positions (spec.md §8).
func TestCountStartPos(t *testing.T) {
	requireCount(t, engine.FENStartPos, 5, 4865609)
}

func TestCountKiwipete(t *testing.T) {
	requireCount(t, engine.FENKiwipete, 4, 4085603)
}

func TestCountDuplain(t *testing.T) {
	requireCount(t, engine.FENDuplain, 5, 674624)
}

func TestCountPromotions(t *testing.T) {
	requireCount(t, engine.FENPromotions, 4, 422333)
}

func requireCount(t *testing.T, fen string, depth int, want uint64) {
	t.Helper()
	if testing.Short() && want > 1000000 {
		t.Skip("skipping large perft count in -short mode")
	}
	pos, err := engine.ParseFEN(fen)
	require.NoError(t, err)
	got := Count(pos, depth)
	require.Equal(t, want, got.Nodes, "perft(%d) of %q", depth, fen)
}

// TestCountStartPosShallow cross-checks the small, fast depths so a
// move-generation regression is caught before the expensive depth-5
// run even starts.
func TestCountStartPosShallow(t *testing.T) {
	pos, err := engine.ParseFEN(engine.FENStartPos)
	require.NoError(t, err)

	require.Equal(t, uint64(20), Count(pos, 1).Nodes)
	require.Equal(t, uint64(400), Count(pos, 2).Nodes)
	require.Equal(t, uint64(8902), Count(pos, 3).Nodes)

	c3 := Count(pos, 3)
	require.Equal(t, uint64(34), c3.Captures)
}

func TestCountKiwipeteShallow(t *testing.T) {
	pos, err := engine.ParseFEN(engine.FENKiwipete)
	require.NoError(t, err)

	c1 := Count(pos, 1)
	require.Equal(t, uint64(48), c1.Nodes)
	require.Equal(t, uint64(8), c1.Captures)
	require.Equal(t, uint64(2), c1.Castles)
}
