package enginelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenWritesAppendOnlyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talon.log")

	l, err := Open(path)
	require.NoError(t, err)
	l.Inbound("uci")
	l.Outbound("uciok")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "inbound")
	require.Contains(t, string(data), "uciok")
}

func TestOpenRotatesPreviousLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talon.log")

	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	l, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	rotated, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	require.Equal(t, "previous run\n", string(rotated))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestOpenRotatesMultipleGenerations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talon.log")

	for i := 0; i < 3; i++ {
		l, err := Open(path)
		require.NoError(t, err)
		l.Event("run")
		require.NoError(t, l.Close())
	}

	require.FileExists(t, path)
	require.FileExists(t, path+".1")
	require.FileExists(t, path+".2")
}
