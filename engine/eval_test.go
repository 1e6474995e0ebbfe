package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	pos := NewStartPosition()
	require.Zero(t, DefaultEvaluator{}.Evaluate(pos))
}

func TestEvaluateFavorsMaterial(t *testing.T) {
	withQueen, err := ParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	bare, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	require.Greater(t, DefaultEvaluator{}.Evaluate(withQueen), DefaultEvaluator{}.Evaluate(bare))
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	pair, err := ParseFEN("4k3/8/8/8/8/8/8/B1B1K3 w - - 0 1")
	require.NoError(t, err)
	single, err := ParseFEN("4k3/8/8/8/8/8/8/B3K3 w - - 0 1")
	require.NoError(t, err)

	diff := DefaultEvaluator{}.Evaluate(pair) - DefaultEvaluator{}.Evaluate(single)
	require.Greater(t, diff, FigureBonus[Bishop][MidGame])
}
