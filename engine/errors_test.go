package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "MalformedPosition", MalformedPosition.String())
	require.Equal(t, "MalformedMove", MalformedMove.String())
	require.Equal(t, "ProtocolError", ProtocolError.String())
	require.Equal(t, "Internal", Internal.String())
}

func TestErrorMessage(t *testing.T) {
	err := newError(MalformedMove, "bad move %q", "z9z9")
	require.EqualError(t, err, `MalformedMove: bad move "z9z9"`)
}
