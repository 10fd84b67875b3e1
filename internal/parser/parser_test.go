package parser

import (
	"errors"
	"testing"

	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/token"
)

func TestParseSimpleDeclaration(t *testing.T) {
	root := mustParse(t, "new a;")
	if root.Expr.Kind() != ast.ExprGlobalScope || len(root.Tokens) != 0 {
		t.Fatalf("root = %s with %d tokens", root.Expr.Kind(), len(root.Tokens))
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	decl := root.Children[0]
	v, ok := decl.Expr.(*ast.Variable)
	if !ok || v.Name != "a" || v.Tag != ast.NoTag || v.IsArray() {
		t.Fatalf("declaration = %#v", decl.Expr)
	}
	if len(decl.Children) != 0 {
		t.Fatalf("declaration without initializer has %d children", len(decl.Children))
	}
	if len(decl.Tokens) != 3 || decl.Tokens[0].Kind != token.KwNew || decl.Tokens[2].Kind != token.Semicolon {
		t.Fatalf("declaration tokens = %v", decl.Tokens)
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		decl  string
		init  string
	}{
		{"initializer", "new a = 4;", "a", "4"},
		{"tagged", "new Float:x = 5.5;", "Float:x", "5.5"},
		{"tagged negative literal", "new Float:x = Float:-1.5;", "Float:x", "Float:-1.5"},
		{"double sign", "new x = bool:- -1;", "x", "bool:1"},
		{"symbol initializer", "new b = a;", "b", "a"},
		{"tagged symbol initializer", "new b = Float:a;", "b", "Float:a"},
		{"auto-size array", "new x[] = {1, 2, 3};", "x[]", "{1, 2, 3}"},
		{"sized array", "new x[4] = {1, 2, 3};", "x[4]", "{1, 2, 3}"},
		{"two dims", "new m[2][3];", "m[2][3]", ""},
		{"fill", "new x[8] = {0, ...};", "x[8]", "{0, ...}"},
		{"empty array", "new x[4] = {};", "x[4]", "{}"},
		{"string", `new s[] = "hi";`, "s[]", `"hi"`},
		{"dim expression", "new x[MAX + 1];", "x[(+ MAX 1)]", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.input)
			if len(root.Children) != 1 {
				t.Fatalf("got %d declarations", len(root.Children))
			}
			decl := root.Children[0]
			if got := ast.Sexpr(decl.Expr); got != tt.decl {
				t.Errorf("declaration = %q, want %q", got, tt.decl)
			}
			if tt.init == "" {
				if len(decl.Children) != 0 {
					t.Fatalf("unexpected initializer %s", ast.Sexpr(decl.Children[0].Expr))
				}
				return
			}
			if len(decl.Children) != 1 {
				t.Fatalf("want initializer child, got %d", len(decl.Children))
			}
			if got := ast.Sexpr(decl.Children[0].Expr); got != tt.init {
				t.Errorf("initializer = %q, want %q", got, tt.init)
			}
		})
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"new x = a + b * c;", "(+ a (* b c))"},
		{"new x = a * b + c;", "(+ (* a b) c)"},
		{"new x = a - b - c;", "(- (- a b) c)"},
		{"new x = (a - b) * c;", "(* (- a b) c)"},
		{"new x = a || b && c;", "(|| a (&& b c))"},
		{"new x = a | b ^ c & d;", "(| a (^ b (& c d)))"},
		{"new x = a == b < c;", "(== a (< b c))"},
		{"new x = a & b == c;", "(& a (== b c))"},
		{"new x = a << 1 + 2;", "(<< a (+ 1 2))"},
		{"new x = a < b << c;", "(< a (<< b c))"},
		{"new x = a % b / c;", "(/ (% a b) c)"},
		{"new x = a = b += 3;", "(= a (+= b 3))"},
		{"new x = -a * b;", "(* (- a) b)"},
		{"new x = !-a;", "(! (- a))"},
		{"new x = ++a++;", "(++ (post++ a))"},
		{"new x = a-- - --b;", "(- (post-- a) (-- b))"},
		{"new x = -5;", "(- 5)"},
		{"new x = a != b >= c;", "(!= a (>= b c))"},
		{"new x = a >>= 2;", "(>>= a 2)"},
		{"new x = Float:(1);", "Float:(1)"},
		{"new x = Float:(a);", "Float:(a)"},
		{"new x = Float:(a + 1) * 2;", "(* Float:(+ a 1) 2)"},
		{"new x = -Float:(a);", "(- Float:(a))"},
		{`new x = Tag:"hi";`, `Tag:"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := initializer(t, tt.input); got != tt.want {
				t.Fatalf("initializer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitializerNodeTokens(t *testing.T) {
	root := mustParse(t, "new x = a + 1;")
	init := root.Children[0].Children[0]
	if len(init.Tokens) != 3 || init.Tokens[1].Kind != token.Plus {
		t.Fatalf("initializer tokens = %v", init.Tokens)
	}
	sp, ok := root.Children[0].Span()
	if !ok || sp.ColStart != 1 || sp.ColEnd != 15 {
		t.Fatalf("declaration span = %s", sp)
	}
}

func TestParseSkipsNonDeclarations(t *testing.T) {
	src := `
#include <a_samp>
// header comment
new a;

main() {
    new local = 1;
    if (local == 1) { local++; }
}

forward OnInit();
new /* inline */ Float:b = 2.0;
`
	root := mustParse(t, src)
	if len(root.Children) != 2 {
		t.Fatalf("got %d top-level declarations, want 2", len(root.Children))
	}
	names := []string{ast.Sexpr(root.Children[0].Expr), ast.Sexpr(root.Children[1].Expr)}
	if names[0] != "a" || names[1] != "Float:b" {
		t.Fatalf("declarations = %v", names)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n", "// nothing"} {
		root := mustParse(t, src)
		if len(root.Children) != 0 {
			t.Fatalf("Parse(%q) produced %d children", src, len(root.Children))
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     diag.Code
		expected string
		found    token.Kind
		message  string
		kept     int
	}{
		{
			name: "missing semicolon at end", input: "new x = 5",
			code: diag.SynExpectSemicolon, expected: "semicolon", found: token.End,
			message: "expected semicolon, found End at 1:10-1:10",
		},
		{
			name: "missing semicolon before next token", input: "new a new b;",
			code: diag.SynExpectSemicolon, expected: "semicolon", found: token.KwNew,
			message: `expected semicolon, found New ("new") at 1:7-1:10`,
		},
		{
			name: "equal is not assignment", input: "new x == 5;",
			code: diag.SynExpectSemicolon, expected: "semicolon", found: token.Equal,
			message: `expected semicolon, found Equal ("==") at 1:7-1:9`,
		},
		{
			name: "number instead of name", input: "new 5;",
			code: diag.SynExpectSymbol, expected: "symbol", found: token.Integer,
			message: `expected symbol, found Integer ("5") at 1:5-1:6`,
		},
		{
			name: "keyword instead of name", input: "new a; new if;",
			code: diag.SynExpectSymbol, expected: "symbol", found: token.KwIf, kept: 1,
		},
		{
			name: "tag without name", input: "new Float: = 1;",
			code: diag.SynExpectSymbol, expected: "symbol", found: token.Assign,
		},
		{
			name: "missing initializer", input: "new x = ;",
			code: diag.SynExpectExpression, expected: "expression", found: token.Semicolon,
		},
		{
			name: "unclosed paren", input: "new x = (1 + 2;",
			code: diag.SynExpectRightBracket, expected: "')'", found: token.Semicolon,
		},
		{
			name: "unclosed dimension", input: "new x[4;",
			code: diag.SynExpectRightSquare, expected: "']'", found: token.Semicolon,
		},
		{
			name: "unclosed array", input: "new x[] = {1, 2;",
			code: diag.SynExpectRightBrace, expected: "'}'", found: token.Semicolon,
		},
		{
			name: "tagged non-number", input: "new x = Float:[1];",
			code: diag.SynExpectLiteral, expected: "number literal", found: token.LeftSquare,
		},
		{
			name: "illegal token", input: "new x = @;",
			code: diag.SynExpectExpression, expected: "expression", found: token.Illegal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err, bag := parseSource(t, tt.input)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %v, want *Error", tt.input, err)
			}
			if perr.Code != tt.code || perr.Expected != tt.expected || perr.Found.Kind != tt.found {
				t.Fatalf("error = {%s %q %s}, want {%s %q %s}",
					perr.Code.ID(), perr.Expected, perr.Found.Kind.Name(), tt.code.ID(), tt.expected, tt.found.Name())
			}
			if tt.message != "" && err.Error() != tt.message {
				t.Fatalf("message = %q, want %q", err.Error(), tt.message)
			}
			if len(root.Children) != tt.kept {
				t.Fatalf("root kept %d declarations, want %d", len(root.Children), tt.kept)
			}
			if bag.Len() != 1 || bag.Items()[0].Code != tt.code || bag.Items()[0].Message != err.Error() {
				t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestParserWithoutReporter(t *testing.T) {
	p := New(nil, Options{})
	root, err := p.Parse()
	if err != nil || len(root.Children) != 0 || p.IsError() {
		t.Fatalf("empty token stream: %v", err)
	}
}
