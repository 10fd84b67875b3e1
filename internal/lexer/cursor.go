package lexer

import (
	"fmt"
	"unicode/utf8"

	"pawnc/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле: байтовое смещение плюс строка/колонка.
// Колонки считаются в рунах; '\n' переводит на следующую строку и сбрасывает колонку в 1.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
	Line  uint32
	Col   uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Limit: limit,
		Line:  1,
		Col:   1,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// decodeAt декодирует руну по смещению off; невалидный байт даёт RuneError размером 1.
func (c *Cursor) decodeAt(off uint32) (r rune, size uint32) {
	if off >= c.Limit {
		return utf8.RuneError, 0
	}
	b := c.File.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.File.Content[off:c.Limit])
	return r, uint32(sz) // #nosec G115 -- sz <= utf8.UTFMax
}

// Peek читает текущую руну, не сдвигая курсор; ok=false на конце.
func (c *Cursor) Peek() (rune, bool) {
	r, sz := c.decodeAt(c.Off)
	return r, sz != 0
}

// Peek2 читает руну, следующую за текущей.
func (c *Cursor) Peek2() (rune, bool) {
	_, sz := c.decodeAt(c.Off)
	if sz == 0 {
		return utf8.RuneError, false
	}
	r, sz2 := c.decodeAt(c.Off + sz)
	return r, sz2 != 0
}

// Read потребляет руну и обновляет строку/колонку.
func (c *Cursor) Read() (rune, bool) {
	r, sz := c.decodeAt(c.Off)
	if sz == 0 {
		return utf8.RuneError, false
	}
	c.Off += sz
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r, true
}

// Eat consumes the next rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if got, ok := c.Peek(); ok && got == r {
		c.Read()
		return true
	}
	return false
}

// Pos returns the current human-readable position.
func (c *Cursor) Pos() source.LineCol {
	return source.LineCol{Line: c.Line, Col: c.Col}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	off  uint32
	line uint32
	col  uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:      c.File.ID,
		LineStart: m.line,
		LineEnd:   c.Line,
		ColStart:  m.col,
		ColEnd:    c.Col,
	}
}

// TextFrom возвращает исходный текст от метки до курсора.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m.off:c.Off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line, c.Col = m.off, m.line, m.col
}
