package lexer

import (
	"strings"

	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// "..." с escape через '\': \n \t \r \0 \\ \" \'; любой другой символ после '\' берётся как есть.
// Перевод строки или конец ввода до закрывающей кавычки → Illegal с исходным текстом.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Read() // opening '"'

	var b strings.Builder
	for {
		r, ok := lx.cursor.Peek()
		if !ok {
			break
		}
		if r == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Illegal, Value: token.NewText(lx.cursor.TextFrom(start)), Span: sp}
		}
		lx.cursor.Read()
		switch r {
		case '"':
			return token.Token{Kind: token.Literal, Value: token.NewText(b.String()), Span: lx.cursor.SpanFrom(start)}
		case '\\':
			esc, ok := lx.cursor.Peek()
			if !ok || esc == '\n' {
				continue // ошибку выдаст следующая итерация
			}
			lx.cursor.Read()
			b.WriteRune(unescape(esc))
		default:
			b.WriteRune(r)
		}
	}

	// конец ввода без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Illegal, Value: token.NewText(lx.cursor.TextFrom(start)), Span: sp}
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}
