package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatSourceFile(t *testing.T) {
	source := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(source, []byte("hello\n"), 0644))

	st, err := StatSource(source)
	require.NoError(t, err)
	require.False(t, st.Dir)
	require.Equal(t, 1, st.Files)
	require.Equal(t, int64(6), st.Bytes)
}

func TestStatSourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("12345"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b"), []byte("123"), 0644))

	st, err := StatSource(dir)
	require.NoError(t, err)
	require.True(t, st.Dir)
	require.Equal(t, 2, st.Files)
	require.Equal(t, int64(8), st.Bytes)
}

func TestStatSourceMissing(t *testing.T) {
	_, err := StatSource(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
