package kybd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/typomap/typomap/pkg/errors"
)

func TestFileName(t *testing.T) {
	if got := FileName("qwerty"); got != "keyboard_qwerty.bin" {
		t.Errorf("FileName = %q", got)
	}
}

func TestWriteReadFile(t *testing.T) {
	m := qwertyMatrix()
	path := filepath.Join(t.TempDir(), FileName("qwerty"))

	if err := WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != FileSize {
		t.Errorf("file size = %d, want %d", info.Size(), FileSize)
	}

	decoded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if decoded != m {
		t.Error("file round trip changed the matrix")
	}
}

func TestWriteFileLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, FileName("qwerty")), qwertyMatrix()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", FileName("qwerty"))

	err := WriteFile(path, qwertyMatrix())
	if err == nil {
		t.Fatal("WriteFile into a missing directory should fail")
	}
	if !errors.Is(err, errors.ErrCodeIOFailure) {
		t.Errorf("code = %s, want IO_FAILURE", errors.GetCode(err))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.bin"))
	if err == nil {
		t.Fatal("ReadFile on a missing file should fail")
	}
	if !errors.Is(err, errors.ErrCodeIOFailure) {
		t.Errorf("code = %s, want IO_FAILURE", errors.GetCode(err))
	}
}
