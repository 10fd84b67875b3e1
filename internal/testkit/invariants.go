// Package testkit holds structural checks shared by parser, driver and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pawnc/internal/ast"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every token span is valid, belongs to sf and stays within its lines
// 2) every declaration covers a non-empty span
// 3) declarations appear in source order and do not overlap
func CheckSpanInvariants(root *ast.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	if _, ok := root.Expr.(*ast.GlobalScope); !ok {
		return fmt.Errorf("root is %T, want *ast.GlobalScope", root.Expr)
	}
	lineCount, err := safecast.Conv[uint32](sf.LineCount())
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}
	// End стоит сразу за последней строкой
	maxLine := lineCount + 1

	var tokErr error
	ast.Walk(root, func(n *ast.Node) bool {
		for _, tok := range n.Tokens {
			if err := checkToken(tok, sf.ID, maxLine); err != nil {
				tokErr = err
				return false
			}
		}
		return tokErr == nil
	})
	if tokErr != nil {
		return tokErr
	}

	var prev source.Span
	for i, decl := range root.Children {
		sp, ok := decl.Span()
		if !ok {
			return fmt.Errorf("declaration #%d has no tokens", i)
		}
		if i > 0 && sp.Start().Before(prev.End()) {
			return fmt.Errorf("declaration #%d span %v overlaps previous %v", i, sp, prev)
		}
		prev = sp
	}
	return nil
}

func checkToken(tok token.Token, file source.FileID, maxLine uint32) error {
	sp := tok.Span
	if !sp.Valid() {
		return fmt.Errorf("token %s %q has invalid span %v", tok.Kind, tok.Text(), sp)
	}
	if sp.File != file {
		return fmt.Errorf("token %s span file mismatch: got=%d want=%d", tok.Kind, sp.File, file)
	}
	if sp.LineEnd > maxLine {
		return fmt.Errorf("token %s span %v is beyond the last line %d", tok.Kind, sp, maxLine-1)
	}
	return nil
}
