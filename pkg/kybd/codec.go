// Package kybd implements the KYBD layout file format.
//
// A KYBD file is the on-disk contract between this generator and the
// spell-correction engines that consume it, so the encoding is
// byte-exact: a 4-byte magic tag, a 1-byte version, then the 26x26
// distance-class matrix row-major. Every file is exactly 681 bytes.
//
//	Offset  Size  Field
//	0       4     magic "KYBD"
//	4       1     version (1)
//	5       676   matrix[row*26+col], classes {0,1,2,255}
package kybd

import (
	"io"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/errors"
)

// Format constants. Changing any of these breaks every existing
// consumer; bump Version instead.
const (
	Version    byte = 1
	headerSize      = 5
	matrixSize      = distance.Alphabet * distance.Alphabet

	// FileSize is the exact size of every KYBD file in bytes.
	FileSize = headerSize + matrixSize
)

// Magic identifies a KYBD layout file.
var Magic = [4]byte{'K', 'Y', 'B', 'D'}

// Encode writes the matrix to w in KYBD format.
// Exactly FileSize bytes are written.
func Encode(w io.Writer, m distance.Matrix) error {
	buf := make([]byte, 0, FileSize)
	buf = append(buf, Magic[:]...)
	buf = append(buf, Version)
	for i := 0; i < distance.Alphabet; i++ {
		buf = append(buf, m[i][:]...)
	}

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write KYBD data")
	}
	return nil
}

// Decode reads a matrix from r, validating the magic tag and version
// before trusting the payload. It fails with TRUNCATED_FILE when fewer
// than FileSize bytes are available and MALFORMED_FILE when the header
// does not match.
func Decode(r io.Reader) (distance.Matrix, error) {
	var m distance.Matrix

	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return m, errors.New(errors.ErrCodeTruncatedFile, "file shorter than %d-byte header", headerSize)
		}
		return m, errors.Wrap(errors.ErrCodeIOFailure, err, "read KYBD header")
	}

	if [4]byte(header[:4]) != Magic {
		return m, errors.New(errors.ErrCodeMalformedFile, "bad magic tag %q", header[:4])
	}
	if header[4] != Version {
		return m, errors.New(errors.ErrCodeMalformedFile, "unsupported version %d", header[4])
	}

	var payload [matrixSize]byte
	if _, err := io.ReadFull(r, payload[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return m, errors.New(errors.ErrCodeTruncatedFile, "file shorter than %d bytes", FileSize)
		}
		return m, errors.Wrap(errors.ErrCodeIOFailure, err, "read KYBD matrix")
	}

	for i := 0; i < distance.Alphabet; i++ {
		copy(m[i][:], payload[i*distance.Alphabet:(i+1)*distance.Alphabet])
	}
	return m, nil
}
