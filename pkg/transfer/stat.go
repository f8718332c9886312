package transfer

import (
	"os"
	"path/filepath"

	"github.com/goph/emperror"
)

// SourceStat summarizes what a transfer will move.
type SourceStat struct {
	Files int
	Bytes int64
	Dir   bool
}

// StatSource counts regular files below source and sums their sizes.
// A plain file counts as one entry of its own size.
func StatSource(source string) (*SourceStat, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, emperror.Wrapf(err, "cannot stat %s", source)
	}
	st := &SourceStat{Dir: info.IsDir()}
	if !info.IsDir() {
		st.Files = 1
		st.Bytes = info.Size()
		return st, nil
	}
	if err := filepath.Walk(source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		st.Files++
		st.Bytes += info.Size()
		return nil
	}); err != nil {
		return nil, emperror.Wrapf(err, "error walking %s", source)
	}
	return st, nil
}
