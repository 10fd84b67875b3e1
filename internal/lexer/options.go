package lexer

import (
	"pawnc/internal/diag"
	"pawnc/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	// LegacyIdentifiers запрещает цифры в продолжении идентификатора:
	// "x123" лексится как Symbol("x"), Integer(123).
	LegacyIdentifiers bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
