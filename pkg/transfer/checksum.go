package transfer

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/goph/emperror"
	"golang.org/x/crypto/sha3"
)

// Checksum calculates a digest of the file at path.
// supported csType's: md5, sha256, sha512, sha3-256, sha3-384, sha3-512
func Checksum(path string, csType string) (string, error) {
	var sink hash.Hash
	switch csType {
	case "md5":
		sink = md5.New()
	case "sha256":
		sink = sha256.New()
	case "sha512":
		sink = sha512.New()
	case "sha3-256":
		sink = sha3.New256()
	case "sha3-384":
		sink = sha3.New384()
	case "sha3-512":
		sink = sha3.New512()
	default:
		return "", fmt.Errorf("invalid hash function %s", csType)
	}
	fp, err := os.Open(path)
	if err != nil {
		return "", emperror.Wrapf(err, "cannot open %s", path)
	}
	defer fp.Close()
	if _, err := io.Copy(sink, fp); err != nil {
		return "", emperror.Wrapf(err, "cannot read %s", path)
	}
	return fmt.Sprintf("%x", sink.Sum(nil)), nil
}

// Checksums calculates all requested digests of a regular-file source.
// Directory and other non-regular sources yield no checksums.
func Checksums(path string, csTypes []string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, emperror.Wrapf(err, "cannot stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	result := map[string]string{}
	for _, csType := range csTypes {
		cs, err := Checksum(path, csType)
		if err != nil {
			return nil, err
		}
		result[csType] = cs
	}
	return result, nil
}
