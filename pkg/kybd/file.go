package kybd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/errors"
)

// FileName returns the canonical file name for a layout's KYBD file.
// The convention is shared with the engines that load layouts by name.
func FileName(layoutName string) string {
	return fmt.Sprintf("keyboard_%s.bin", layoutName)
}

// WriteFile encodes the matrix to path atomically: the data is written
// to a temporary file in the same directory and renamed into place, so
// a concurrent reader never observes a partial file.
func WriteFile(path string, m distance.Matrix) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "create temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if err := Encode(tmp, m); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeIOFailure, err, "close %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeIOFailure, err, "rename %s to %s", tmpPath, path)
	}
	return nil
}

// ReadFile decodes the KYBD file at path.
func ReadFile(path string) (distance.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return distance.Matrix{}, errors.Wrap(errors.ErrCodeIOFailure, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}
