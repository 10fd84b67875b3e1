package parser

import (
	"fmt"
	"strings"
	"testing"

	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/lexer"
)

func parseSource(t *testing.T, src string) (*ast.Node, error, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(16)
	root, err := Parse(src, lexer.Options{}, Options{Reporter: diag.BagReporter{Bag: bag}})
	if root == nil {
		t.Fatalf("Parse(%q) returned nil root", src)
	}
	return root, err, bag
}

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, err, bag := parseSource(t, src)
	if err != nil {
		t.Fatalf("Parse(%q): %v (diagnostics: %s)", src, err, diagnosticsSummary(bag))
	}
	return root
}

// initializer возвращает S-выражение инициализатора единственного объявления.
func initializer(t *testing.T, src string) string {
	t.Helper()
	root := mustParse(t, src)
	if len(root.Children) != 1 || len(root.Children[0].Children) != 1 {
		t.Fatalf("Parse(%q): want one declaration with initializer, got %d children", src, len(root.Children))
	}
	return ast.Sexpr(root.Children[0].Children[0].Expr)
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
