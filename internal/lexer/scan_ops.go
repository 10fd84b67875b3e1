package lexer

import (
	"fmt"
	"unicode/utf8"

	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// Жадность: после первого символа пробуем продолжения через Eat,
// так что "<<=" всегда побеждает "<<" и "<".
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}
	}
	// pick возвращает withEq, если дальше '=', иначе plain.
	pick := func(plain, withEq token.Kind) token.Token {
		if lx.cursor.Eat('=') {
			return emit(withEq)
		}
		return emit(plain)
	}

	ch, _ := lx.cursor.Read()
	switch ch {
	case '=':
		return pick(token.Assign, token.Equal)
	case '!':
		return pick(token.Bang, token.NotEqual)
	case '+':
		if lx.cursor.Eat('+') {
			return emit(token.PlusPlus)
		}
		return pick(token.Plus, token.PlusAssign)
	case '-':
		if lx.cursor.Eat('-') {
			return emit(token.MinusMinus)
		}
		return pick(token.Minus, token.MinusAssign)
	case '*':
		return pick(token.Asterisk, token.AsteriskAssign)
	case '/':
		return pick(token.Slash, token.SlashAssign)
	case '%':
		return pick(token.Percent, token.PercentAssign)
	case '^':
		return pick(token.BitXor, token.BitXorAssign)
	case '&':
		if lx.cursor.Eat('&') {
			return emit(token.And)
		}
		return pick(token.BitAnd, token.BitAndAssign)
	case '|':
		if lx.cursor.Eat('|') {
			return emit(token.Or)
		}
		return pick(token.BitOr, token.BitOrAssign)
	case '<':
		if lx.cursor.Eat('<') {
			return pick(token.BitLeft, token.BitLeftAssign)
		}
		return pick(token.LowerThan, token.LowerThanEqual)
	case '>':
		if lx.cursor.Eat('>') {
			return pick(token.BitRight, token.BitRightAssign)
		}
		return pick(token.GreaterThan, token.GreaterThanEqual)
	case '.':
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('.') {
				return emit(token.Ellipsis)
			}
			return emit(token.Range)
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexLoneDot, sp, "unexpected '.'")
		return token.Token{Kind: token.Illegal, Value: token.NewText("."), Span: sp}
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '{':
		return emit(token.LeftBrace)
	case '}':
		return emit(token.RightBrace)
	case '(':
		return emit(token.LeftBracket)
	case ')':
		return emit(token.RightBracket)
	case '[':
		return emit(token.LeftSquare)
	case ']':
		return emit(token.RightSquare)
	case '#':
		return emit(token.Directive)
	}

	// неизвестный символ
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if ch == utf8.RuneError && len(text) == 1 {
		lx.errLex(diag.LexInvalidUTF8, sp, fmt.Sprintf("invalid UTF-8 byte 0x%02x", text[0]))
	} else {
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
	}
	return token.Token{Kind: token.Illegal, Value: token.NewText(text), Span: sp}
}
