package token

import "sort"

var keywords = map[string]Kind{
	"const":    KwConst,
	"new":      KwNew,
	"static":   KwStatic,
	"stock":    KwStock,
	"forward":  KwForward,
	"public":   KwPublic,
	"native":   KwNative,
	"operator": KwOperator,
	"char":     KwChar,
	"enum":     KwEnum,
	"state":    KwState,

	"if":       KwIf,
	"else":     KwElse,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"for":      KwFor,
	"while":    KwWhile,
	"do":       KwDo,
	"break":    KwBreak,
	"continue": KwContinue,
	"goto":     KwGoto,
	"return":   KwReturn,
	"sizeof":   KwSizeof,
	"tagof":    KwTagof,
	"__emit":   KwEmit,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Регистр важен: "New" и "NEW" — обычные символы.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns all reserved spellings, sorted.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
