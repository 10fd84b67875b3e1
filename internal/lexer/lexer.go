package lexer

import (
	"pawnc/internal/ring"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

// blockTerm: терминатор блочного комментария.
var blockTerm = []rune("*/")

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token       // 1 элементный буфер для токена
	window *ring.Window[rune] // последние руны внутри /* ... */
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		window: ring.New[rune](len(blockTerm)),
	}
}

// Tokenize lexes src as an anonymous in-memory file and returns all tokens.
func Tokenize(src string, opts Options) []token.Token {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return New(fs.Get(id), opts).Lex()
}

// Next возвращает следующий токен, комментарии тоже токены.
// После конца ввода всегда возвращает End.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpace()

	r, ok := lx.cursor.Peek()
	if !ok {
		return token.Token{Kind: token.End, Span: lx.emptySpan()}
	}

	switch {
	case isIdentStart(r):
		return lx.scanIdentOrKeyword()
	case isDec(r):
		return lx.scanNumber()
	case r == '"':
		return lx.scanString()
	case r == '/' && lx.commentAhead():
		return lx.scanComment()
	default:
		// иначе → scanOperatorOrPunct() (включая '#', скобки, запятые и т.д.)
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Lex собирает все токены до End; сам End в результат не входит.
func (lx *Lexer) Lex() []token.Token {
	out := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.End {
			return out
		}
		out = append(out, tok)
	}
}

func (lx *Lexer) skipSpace() {
	for {
		r, ok := lx.cursor.Peek()
		if !ok || !isSpace(r) {
			return
		}
		lx.cursor.Read()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return lx.cursor.SpanFrom(lx.cursor.Mark())
}
