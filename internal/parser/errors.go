package parser

import (
	"fmt"

	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// Error describes the structural problem that stopped parsing.
type Error struct {
	Code     diag.Code
	Expected string      // "symbol", "semicolon", "expression", ...
	Found    token.Token // токен, на котором остановились (End на конце ввода)
}

func (e *Error) Error() string {
	return fmt.Sprintf("expected %s, found %s at %s", e.Expected, describe(e.Found), e.Found.Span)
}

// describe: Assign ("="), Symbol ("x"), Integer ("5"), End.
func describe(t token.Token) string {
	switch {
	case t.Kind.HasFixedSpelling():
		return fmt.Sprintf("%s (%q)", t.Kind.Name(), t.Kind.String())
	case t.Value.IsSet():
		return fmt.Sprintf("%s (%q)", t.Kind.Name(), t.Value.String())
	default:
		return t.Kind.Name()
	}
}
