package parser

import (
	"slices"

	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/lexer"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

type Options struct {
	// Reporter получает ту же ошибку, что возвращает Parse, в виде диагностики. Может быть nil.
	Reporter diag.Reporter
}

// Parser: состояние парсера на один поток токенов
type Parser struct {
	tokens []token.Token // только значимые токены, комментарии выброшены
	pos    int           // индекс следующего непрочитанного токена
	opts   Options
	root   *ast.Node
	err    *Error
}

// New creates a parser over the lexer output. Comment tokens are dropped up front.
func New(tokens []token.Token, opts Options) *Parser {
	sig := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != token.Comment {
			sig = append(sig, t)
		}
	}
	return &Parser{
		tokens: sig,
		opts:   opts,
		root:   ast.NewRoot(),
	}
}

// Parse: входная точка: лексит src и разбирает его.
func Parse(src string, lexOpts lexer.Options, opts Options) (*ast.Node, error) {
	return New(lexer.Tokenize(src, lexOpts), opts).Parse()
}

// Parse walks the top level. `new` starts a declaration; everything else, including
// whole `{ ... }` blocks, is skipped. The first error stops parsing: the returned root
// keeps the declarations committed before it.
func (p *Parser) Parse() (*ast.Node, error) {
	depth := 0
	for !p.at(token.End) {
		switch p.peek().Kind {
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			if depth > 0 {
				depth--
			}
		case token.KwNew:
			if depth == 0 {
				decl, ok := p.parseDeclaration()
				if !ok {
					return p.root, p.err
				}
				p.root.AddChild(decl)
				continue
			}
		}
		p.advance()
	}
	return p.root, nil
}

// Root returns the tree built so far.
func (p *Parser) Root() *ast.Node { return p.root }

// Err returns the error that stopped parsing, if any.
func (p *Parser) Err() *Error { return p.err }

func (p *Parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.endToken()
}

// peekAt смотрит на n токенов вперёд (0 это текущий).
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.endToken()
}

// endToken: синтетический End сразу за последним токеном.
func (p *Parser) endToken() token.Token {
	sp := source.Span{LineStart: 1, LineEnd: 1, ColStart: 1, ColEnd: 1}
	if n := len(p.tokens); n > 0 {
		sp = p.tokens[n-1].Span.ZeroideToEnd()
	}
	return token.Token{Kind: token.End, Span: sp}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.err != nil
}
