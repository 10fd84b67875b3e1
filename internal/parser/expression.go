package parser

import (
	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.Expression, bool) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expression, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	for {
		prec, isRightAssoc := getBinaryOperatorPrec(p.peek().Kind)
		if prec < 0 || prec < minPrec {
			break
		}
		opTok := p.advance()

		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			return nil, false
		}
		left = &ast.BinaryOperation{Operator: opTok, Left: left, Right: right}
	}
	return left, true
}

// parseUnaryExpr обрабатывает унарные операторы (префиксы); применяются справа налево.
func (p *Parser) parseUnaryExpr() (ast.Expression, bool) {
	var prefixes []token.Token
	for isPrefixOperator(p.peek().Kind) {
		prefixes = append(prefixes, p.advance())
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return nil, false
	}
	for i := len(prefixes) - 1; i >= 0; i-- {
		expr = &ast.UnaryOperation{Operator: prefixes[i], Operand: expr}
	}
	return expr, true
}

// parsePostfixExpr обрабатывает постфиксные ++ и --
func (p *Parser) parsePostfixExpr() (ast.Expression, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}
	for isPostfixOperator(p.peek().Kind) {
		expr = &ast.PostfixOperation{Operator: p.advance(), Operand: expr}
	}
	return expr, true
}

// parsePrimaryExpr парсит основные (атомарные) выражения
func (p *Parser) parsePrimaryExpr() (ast.Expression, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.Symbol:
		if p.peekAt(1).Kind == token.Colon && p.peekAt(2).Kind != token.Symbol {
			// Float:-1.5, bool:1, Tag:"s", Float:(a + b)
			p.advance()
			p.advance()
			return p.parseTagged(tok.Text())
		}
		v, ok := p.parseSymbol()
		if !ok {
			return nil, false
		}
		return v, true

	case token.Integer, token.Float, token.Literal:
		p.advance()
		return &ast.Literal{Tag: ast.NoTag, Value: tok.Value}, true

	case token.LeftBracket:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RightBracket, diag.SynExpectRightBracket, "')'"); !ok {
			return nil, false
		}
		return inner, true

	case token.LeftBrace:
		return p.parseArrayLiteral()

	default:
		p.fail(diag.SynExpectExpression, "expression")
		return nil, false
	}
}

// parseTagged разбирает то, что стоит после `tag:`.
func (p *Parser) parseTagged(tag string) (ast.Expression, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.LeftBracket:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RightBracket, diag.SynExpectRightBracket, "')'"); !ok {
			return nil, false
		}
		return &ast.TagOverride{Tag: tag, Operand: inner}, true
	case token.Literal:
		p.advance()
		return &ast.Literal{Tag: tag, Value: tok.Value}, true
	default:
		return p.parseLiteralScalar(tag)
	}
}

// parseLiteralScalar: после `tag:` — необязательный знак и число. Знак сворачивается в значение.
func (p *Parser) parseLiteralScalar(tag string) (ast.Expression, bool) {
	negative := false
	for p.at_or(token.Minus, token.Plus) {
		if p.advance().Kind == token.Minus {
			negative = !negative
		}
	}
	if !p.at_or(token.Integer, token.Float) {
		p.fail(diag.SynExpectLiteral, "number literal")
		return nil, false
	}
	v := p.advance().Value
	if negative {
		switch v.Kind {
		case token.ValueInt:
			v.Int = -v.Int
		case token.ValueFloat:
			v.Float = -v.Float
		}
	}
	return &ast.Literal{Tag: tag, Value: v}, true
}

// parseArrayLiteral: `{}`, `{a, b}`, `{a, b, ...}`.
func (p *Parser) parseArrayLiteral() (ast.Expression, bool) {
	p.advance() // '{'
	arr := &ast.ArrayLiteral{}
	for !p.at(token.RightBrace) {
		if p.at(token.Ellipsis) && len(arr.Elements) > 0 {
			p.advance()
			arr.Fill = true
			break
		}
		el, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		arr.Elements = append(arr.Elements, el)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RightBrace, diag.SynExpectRightBrace, "'}'"); !ok {
		return nil, false
	}
	return arr, true
}
