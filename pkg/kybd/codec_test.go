package kybd

import (
	"bytes"
	"testing"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/errors"
	"github.com/typomap/typomap/pkg/layout"
)

func qwertyMatrix() distance.Matrix {
	return distance.Classify(layout.Positions(layout.QWERTY))
}

func TestEncodeSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != FileSize {
		t.Errorf("encoded size = %d, want %d", buf.Len(), FileSize)
	}
	if FileSize != 681 {
		t.Errorf("FileSize = %d, want 681", FileSize)
	}
}

func TestEncodeHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	head := buf.Bytes()[:5]
	want := []byte{'K', 'Y', 'B', 'D', 1}
	if !bytes.Equal(head, want) {
		t.Errorf("header = %v, want %v", head, want)
	}
}

func TestRoundTrip(t *testing.T) {
	m := qwertyMatrix()

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != m {
		t.Error("round trip changed the matrix")
	}
}

func TestDecodeBadMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	data[0] = 'X'

	_, err := Decode(bytes.NewReader(data))
	if err == nil {
		t.Fatal("Decode should reject a corrupted magic tag")
	}
	if !errors.Is(err, errors.ErrCodeMalformedFile) {
		t.Errorf("code = %s, want MALFORMED_FILE", errors.GetCode(err))
	}
}

func TestDecodeBadVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	data[4] = 2

	_, err := Decode(bytes.NewReader(data))
	if err == nil {
		t.Fatal("Decode should reject an unknown version")
	}
	if !errors.Is(err, errors.ErrCodeMalformedFile) {
		t.Errorf("code = %s, want MALFORMED_FILE", errors.GetCode(err))
	}
}

func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, n := range []int{0, 3, 5, 680} {
		_, err := Decode(bytes.NewReader(buf.Bytes()[:n]))
		if err == nil {
			t.Errorf("Decode of %d bytes should fail", n)
			continue
		}
		if !errors.Is(err, errors.ErrCodeTruncatedFile) {
			t.Errorf("%d bytes: code = %s, want TRUNCATED_FILE", n, errors.GetCode(err))
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Encode(&a, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := Encode(&b, qwertyMatrix()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("independent encodings of the same layout differ")
	}
}
