package parser

import (
	"slices"

	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// advance: съедает следующий токен; на конце возвращает End и никуда не двигается.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect: ожидаем конкретный токен. Если нет, фиксируем ошибку и возвращаем (found,false).
func (p *Parser) expect(k token.Kind, code diag.Code, expected string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return p.fail(code, expected)
}

// fail записывает первую ошибку разбора и отправляет её в Reporter.
func (p *Parser) fail(code diag.Code, expected string) (token.Token, bool) {
	found := p.peek()
	if p.err == nil {
		p.err = &Error{Code: code, Expected: expected, Found: found}
		if p.opts.Reporter != nil {
			diag.ReportError(p.opts.Reporter, code, found.Span, p.err.Error()).Emit()
		}
	}
	return found, false
}

// consumedSince копирует токены с индекса start до текущей позиции.
func (p *Parser) consumedSince(start int) []token.Token {
	return slices.Clone(p.tokens[start:p.pos])
}
