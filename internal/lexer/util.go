package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentContinue: буквы, '_' и (если не legacy) цифры.
func (lx *Lexer) isIdentContinue(r rune) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !lx.opts.LegacyIdentifiers && unicode.IsDigit(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

// commentAhead: текущая '/' начинает "//" или "/*".
func (lx *Lexer) commentAhead() bool {
	r, ok := lx.cursor.Peek2()
	return ok && (r == '/' || r == '*')
}
