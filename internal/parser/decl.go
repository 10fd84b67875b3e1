package parser

import (
	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/token"
)

// parseDeclaration разбирает
//
//	new [tag:]name[dim]... [= initializer];
//
// Узел объявления несёт все свои токены от `new` до `;`; инициализатор — первый ребёнок.
func (p *Parser) parseDeclaration() (*ast.Node, bool) {
	start := p.pos
	p.advance() // new

	if !p.at(token.Symbol) {
		p.fail(diag.SynExpectSymbol, "symbol")
		return nil, false
	}
	v, ok := p.parseSymbol()
	if !ok {
		return nil, false
	}
	for p.at(token.LeftSquare) {
		dim, ok := p.parseDimension()
		if !ok {
			return nil, false
		}
		v.Dims = append(v.Dims, dim)
	}

	node := &ast.Node{Expr: v}
	if p.at(token.Assign) {
		p.advance()
		initStart := p.pos
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		node.AddChild(&ast.Node{Expr: init, Tokens: p.consumedSince(initStart)})
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "semicolon"); !ok {
		return nil, false
	}
	node.Tokens = p.consumedSince(start)
	return node, true
}

// parseSymbol: `tag:name` или `name` (тег NoTag). Текущий токен: Symbol.
func (p *Parser) parseSymbol() (*ast.Variable, bool) {
	first := p.advance()
	if !p.at(token.Colon) {
		return &ast.Variable{Name: first.Text(), Tag: ast.NoTag}, true
	}
	p.advance() // ':'
	name, ok := p.expect(token.Symbol, diag.SynExpectSymbol, "symbol")
	if !ok {
		return nil, false
	}
	return &ast.Variable{Name: name.Text(), Tag: first.Text()}, true
}

// parseDimension: `[expr]` или `[]` (nil: размер выводится из инициализатора).
func (p *Parser) parseDimension() (ast.Expression, bool) {
	p.advance() // '['
	if p.at(token.RightSquare) {
		p.advance()
		return nil, true
	}
	size, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RightSquare, diag.SynExpectRightSquare, "']'"); !ok {
		return nil, false
	}
	return size, true
}
