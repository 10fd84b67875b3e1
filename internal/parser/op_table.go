package parser

import (
	"pawnc/internal/token"
)

// Таблица приоритетов для бинарных операторов (порядок как в C).
// Чем больше число, тем выше приоритет
const (
	precAssignment     = 1  // = += -= *= /= %= &= |= ^= <<= >>=
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == !=
	precComparison     = 8  // < <= > >=
	precShift          = 9  // << >>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный); -1 — не бинарный оператор.
func getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.AsteriskAssign, token.SlashAssign,
		token.PercentAssign, token.BitAndAssign, token.BitOrAssign, token.BitXorAssign,
		token.BitLeftAssign, token.BitRightAssign:
		return precAssignment, true

	case token.Or:
		return precLogicalOr, false
	case token.And:
		return precLogicalAnd, false

	case token.BitOr:
		return precBitwiseOr, false
	case token.BitXor:
		return precBitwiseXor, false
	case token.BitAnd:
		return precBitwiseAnd, false

	case token.Equal, token.NotEqual:
		return precEquality, false
	case token.LowerThan, token.LowerThanEqual, token.GreaterThan, token.GreaterThanEqual:
		return precComparison, false

	case token.BitLeft, token.BitRight:
		return precShift, false

	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Asterisk, token.Slash, token.Percent:
		return precMultiplicative, false

	default:
		return -1, false
	}
}

func isPrefixOperator(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.Bang, token.PlusPlus, token.MinusMinus:
		return true
	}
	return false
}

func isPostfixOperator(kind token.Kind) bool {
	return kind == token.PlusPlus || kind == token.MinusMinus
}
