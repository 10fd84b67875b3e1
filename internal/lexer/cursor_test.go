package lexer

import (
	"testing"
	"unicode/utf8"

	"pawnc/internal/source"
)

func newTestCursor(src string) Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.pwn", []byte(src))
	return NewCursor(fs.Get(id))
}

func TestCursorTracksLineAndColumn(t *testing.T) {
	c := newTestCursor("ab\ncд")
	want := []struct {
		r         rune
		line, col uint32
	}{
		{'a', 1, 2},
		{'b', 1, 3},
		{'\n', 2, 1},
		{'c', 2, 2},
		{'д', 2, 3},
	}
	for i, w := range want {
		r, ok := c.Read()
		if !ok || r != w.r {
			t.Fatalf("read #%d = %q,%v; want %q", i, r, ok, w.r)
		}
		if c.Line != w.line || c.Col != w.col {
			t.Fatalf("after %q: %d:%d, want %d:%d", r, c.Line, c.Col, w.line, w.col)
		}
	}
	if _, ok := c.Read(); ok {
		t.Fatalf("Read past end must report ok=false")
	}
	if !c.EOF() {
		t.Fatalf("cursor must be at EOF")
	}
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := newTestCursor("ж=")
	r, ok := c.Peek()
	r2, ok2 := c.Peek2()
	if !ok || !ok2 || r != 'ж' || r2 != '=' {
		t.Fatalf("Peek/Peek2 = %q,%q", r, r2)
	}
	if c.Off != 0 || c.Col != 1 {
		t.Fatalf("peek moved the cursor")
	}
	c.Read()
	if _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 on last rune must report ok=false")
	}
}

func TestCursorInvalidUTF8ConsumesOneByte(t *testing.T) {
	c := newTestCursor("\xff\xfeA")
	for range 2 {
		r, ok := c.Read()
		if !ok || r != utf8.RuneError {
			t.Fatalf("Read() = %q,%v; want RuneError", r, ok)
		}
	}
	if r, _ := c.Read(); r != 'A' {
		t.Fatalf("third rune = %q, want 'A'", r)
	}
	if c.Col != 4 {
		t.Fatalf("col = %d, want 4", c.Col)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := newTestCursor("x\nyz")
	c.Read()
	m := c.Mark()
	c.Read()
	c.Read()
	c.Read()
	sp := c.SpanFrom(m)
	want := source.Span{LineStart: 1, LineEnd: 2, ColStart: 2, ColEnd: 3}
	if sp != want {
		t.Fatalf("SpanFrom = %+v, want %+v", sp, want)
	}
	if got := c.TextFrom(m); got != "\nyz" {
		t.Fatalf("TextFrom = %q", got)
	}
	c.Reset(m)
	if c.Line != 1 || c.Col != 2 || c.Off != 1 {
		t.Fatalf("Reset -> off=%d %d:%d", c.Off, c.Line, c.Col)
	}
	if !c.Eat('\n') || c.Eat('q') {
		t.Fatalf("Eat mismatch")
	}
}
