package driver

import (
	"context"
	"fmt"
	"strconv"

	"pawnc/internal/diag"
	"pawnc/internal/lexer"
	"pawnc/internal/source"
	"pawnc/internal/token"
	"pawnc/internal/trace"
)

// TokenizeResult holds the tokens of one file. The End marker is not part of Tokens.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and runs the lexer over it.
// Only I/O problems are returned as errors; lexical problems land in Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "tokenize")
	defer span.End(path)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	idx := opts.Timer.Begin("tokenize")
	tokens := lexFile(ctx, file, diag.NewDedupReporter(diag.BagReporter{Bag: bag}), opts)
	opts.Timer.End(idx, strconv.Itoa(len(tokens))+" tokens")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// lexFile собирает все токены файла; End в срез не попадает.
func lexFile(ctx context.Context, file *source.File, reporter diag.Reporter, opts Options) []token.Token {
	span, _ := trace.StartSpan(ctx, trace.ScopeModule, "lex:"+file.Path)
	lexOpts := opts.lexerOptions()
	lexOpts.Reporter = reporter
	lx := lexer.New(file, lexOpts)

	tokens := lx.Lex()
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")
	return tokens
}
