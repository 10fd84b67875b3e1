package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.pwn", []byte("new a;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.pwn", []byte("new b;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// Lookup указывает на последнюю версию
	latestID, ok := fs.Lookup("./test.pwn")
	if !ok || latestID != id2 {
		t.Fatalf("Lookup = (%d, %v), want (%d, true)", latestID, ok, id2)
	}
	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "new a;" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.pwn", []byte("a\nb\n")))

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("lines.pwn", []byte("first\nsecond\n\nlast")))

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "",
		4: "last",
		5: "",
	}
	for line, want := range cases {
		if got := file.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
	if file.LineCount() != 4 {
		t.Errorf("LineCount() = %d, want 4", file.LineCount())
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.pwn")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("new a;\r\nnew b;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got := string(file.Content); got != "new a;\nnew b;\n" {
		t.Fatalf("content = %q", got)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF bits", file.Flags)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.pwn")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatPathBasename(t *testing.T) {
	f := File{Path: "/very/long/path/to/some/deeply/nested/gamemodes/main.pwn"}
	if got := f.FormatPath("basename", ""); got != "main.pwn" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "main.pwn" {
		t.Errorf("auto for long absolute path = %q", got)
	}
	short := File{Path: "gm/main.pwn"}
	if got := short.FormatPath("auto", ""); got != "gm/main.pwn" {
		t.Errorf("auto for short path = %q", got)
	}
}
