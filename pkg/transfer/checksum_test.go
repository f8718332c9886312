package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	source := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(source, []byte("hello\n"), 0644))

	md5sum, err := Checksum(source, "md5")
	require.NoError(t, err)
	require.Equal(t, "b1946ac92492d2347c6235b4d2611184", md5sum)

	sha256sum, err := Checksum(source, "sha256")
	require.NoError(t, err)
	require.Equal(t, "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03", sha256sum)
}

func TestChecksumUnknownAlgorithm(t *testing.T) {
	source := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))

	_, err := Checksum(source, "crc32")
	require.Error(t, err)
}

func TestChecksums(t *testing.T) {
	source := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(source, []byte("hello\n"), 0644))

	result, err := Checksums(source, []string{"md5", "sha512", "sha3-512"})
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, "b1946ac92492d2347c6235b4d2611184", result["md5"])
	require.NotEmpty(t, result["sha512"])
	require.NotEmpty(t, result["sha3-512"])
}

func TestChecksumsDirectory(t *testing.T) {
	result, err := Checksums(t.TempDir(), []string{"md5"})
	require.NoError(t, err)
	require.Nil(t, result)
}
