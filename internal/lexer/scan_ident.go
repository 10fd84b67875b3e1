package lexer

import (
	"pawnc/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые; ключевое слово не несёт payload.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Read()
	for {
		r, ok := lx.cursor.Peek()
		if !ok || !lx.isIdentContinue(r) {
			break
		}
		lx.cursor.Read()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp}
	}
	return token.Token{Kind: token.Symbol, Value: token.NewText(text), Span: sp}
}
