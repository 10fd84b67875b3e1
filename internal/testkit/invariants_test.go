package testkit

import (
	"strings"
	"testing"

	"pawnc/internal/ast"
	"pawnc/internal/lexer"
	"pawnc/internal/parser"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

func parseVirtual(t *testing.T, src string) (*ast.Node, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("inv.pwn", []byte(src)))
	toks := lexer.New(file, lexer.Options{}).Lex()
	root, err := parser.New(toks, parser.Options{}).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return root, file
}

func TestCheckSpanInvariantsAccepts(t *testing.T) {
	sources := []string{
		"",
		"new x;",
		"new a = 1;\nnew b[3] = {1, 2, 3};\nnew Float:c = 5.5;\n",
		"new s[] = \"text\";\r\nnew t = a + b * 2;",
	}
	for _, src := range sources {
		root, file := parseVirtual(t, src)
		if err := CheckSpanInvariants(root, file); err != nil {
			t.Errorf("CheckSpanInvariants(%q): %v", src, err)
		}
	}
}

func TestCheckSpanInvariantsRejects(t *testing.T) {
	root, file := parseVirtual(t, "new a;\nnew b;")
	if len(root.Children) != 2 {
		t.Fatalf("want 2 declarations, got %d", len(root.Children))
	}

	// меняем объявления местами: порядок нарушен
	root.Children[0], root.Children[1] = root.Children[1], root.Children[0]
	if err := CheckSpanInvariants(root, file); err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("swapped declarations: got %v", err)
	}
	root.Children[0], root.Children[1] = root.Children[1], root.Children[0]

	root.Children[0].Tokens = append(root.Children[0].Tokens, token.Token{Kind: token.Symbol})
	if err := CheckSpanInvariants(root, file); err == nil || !strings.Contains(err.Error(), "invalid span") {
		t.Fatalf("zero span: got %v", err)
	}

	if err := CheckSpanInvariants(nil, file); err == nil {
		t.Fatalf("nil root accepted")
	}
}
