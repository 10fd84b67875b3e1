package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/parser"
	"pawnc/internal/source"
	"pawnc/internal/trace"
)

// ParseResult holds the tree of one file.
// Err is the first syntax error; Root still carries the declarations parsed before it.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *ast.Node
	Err     *parser.Error
	Bag     *diag.Bag
}

// Parse loads path, tokenizes and parses it.
// Only I/O problems are returned as errors.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "parse")
	defer span.End(path)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	idx := opts.Timer.Begin("parse")
	root, perr := parseFile(ctx, file, diag.NewDedupReporter(diag.BagReporter{Bag: bag}), opts)
	opts.Timer.End(idx, strconv.Itoa(len(root.Children))+" declarations")

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    root,
		Err:     perr,
		Bag:     bag,
	}, nil
}

func parseFile(ctx context.Context, file *source.File, reporter diag.Reporter, opts Options) (*ast.Node, *parser.Error) {
	tokens := lexFile(ctx, file, reporter, opts)

	span, ctx := trace.StartSpan(ctx, trace.ScopeModule, "parse:"+file.Path)
	root, err := parser.New(tokens, parser.Options{Reporter: reporter}).Parse()
	for _, decl := range root.Children {
		trace.Point(ctx, trace.ScopeNode, "decl", ast.Sexpr(decl.Expr))
	}
	span.WithExtra("decls", strconv.Itoa(len(root.Children)))

	var perr *parser.Error
	if errors.As(err, &perr) {
		span.End(perr.Error())
		return root, perr
	}
	span.End("")
	return root, nil
}
