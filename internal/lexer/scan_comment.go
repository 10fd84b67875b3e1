package lexer

import (
	"strings"
	"unicode"

	"pawnc/internal/diag"
	"pawnc/internal/ring"
	"pawnc/internal/token"
)

// scanComment разбирает "//..." и "/*...*/". Вызывается, когда commentAhead() == true.
//   - "//" — до перевода строки, сам '\n' не входит; payload без ведущих пробелов.
//   - "/*" — до "*/" (без вложенности); терминатор отбрасывается, payload обрезан с обеих сторон.
//     Незакрытый комментарий съедает всё до конца и всё равно даёт Comment (+ диагностика).
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Read() // '/'
	second, _ := lx.cursor.Read()

	if second == '/' {
		body := lx.cursor.Mark()
		for {
			r, ok := lx.cursor.Peek()
			if !ok || r == '\n' {
				break
			}
			lx.cursor.Read()
		}
		text := strings.TrimLeftFunc(lx.cursor.TextFrom(body), unicode.IsSpace)
		return token.Token{Kind: token.Comment, Value: token.NewText(text), Span: lx.cursor.SpanFrom(start)}
	}

	// '*'
	lx.window.Reset()
	var b strings.Builder
	closed := false
	for {
		r, ok := lx.cursor.Read()
		if !ok {
			break
		}
		b.WriteRune(r)
		lx.window.Insert(r)
		if ring.Equal(lx.window, blockTerm) {
			closed = true
			break
		}
	}

	text := b.String()
	sp := lx.cursor.SpanFrom(start)
	if closed {
		text = text[:len(text)-len("*/")]
	} else {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	return token.Token{Kind: token.Comment, Value: token.NewText(strings.TrimSpace(text)), Span: sp}
}
