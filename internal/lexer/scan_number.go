package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"pawnc/internal/diag"
	"pawnc/internal/token"

	"fortio.org/safecast"
)

// Поддержка: 0, 123, 1_000, 1.5, 2. — только десятичные.
// Одна '.' превращает число в float, если за ней не идёт ещё одна '.' ("1..5" — это диапазон).
// Значение вне диапазона int32/float32 → Illegal с исходным текстом и диагностикой.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	isFloat := false

	lx.eatDigits()
	if r, ok := lx.cursor.Peek(); ok && r == '.' {
		if r2, ok2 := lx.cursor.Peek2(); !ok2 || r2 != '.' {
			lx.cursor.Read() // '.'
			isFloat = true
			lx.eatDigits()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	digits := strings.ReplaceAll(text, "_", "")

	if isFloat {
		f, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			lx.errLex(diag.LexNumberOutOfRange, sp, fmt.Sprintf("float literal %s does not fit in 32 bits", text))
			return token.Token{Kind: token.Illegal, Value: token.NewText(text), Span: sp}
		}
		return token.Token{Kind: token.Float, Value: token.NewFloat(float32(f)), Span: sp}
	}

	i, err := strconv.ParseInt(digits, 10, 64)
	if err == nil {
		var v int32
		if v, err = safecast.Conv[int32](i); err == nil {
			return token.Token{Kind: token.Integer, Value: token.NewInt(v), Span: sp}
		}
	}
	lx.errLex(diag.LexNumberOutOfRange, sp, fmt.Sprintf("integer literal %s does not fit in 32 bits", text))
	return token.Token{Kind: token.Illegal, Value: token.NewText(text), Span: sp}
}

// eatDigits съедает [0-9_]*.
func (lx *Lexer) eatDigits() {
	for {
		r, ok := lx.cursor.Peek()
		if !ok || (!isDec(r) && r != '_') {
			return
		}
		lx.cursor.Read()
	}
}
