package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pawnc/internal/ast"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty prints the declarations of root as an indented tree:
//
//	basic.pwn
//	├─ Decl[0]: counter (span: 4:1-4:13)
//	└─ Decl[1]: Float:speed (span: 5:1-5:23)
//	   └─ Init: Literal 5.5
func FormatASTPretty(w io.Writer, root *ast.Node, file *source.File) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	header := "<input>"
	if file != nil {
		header = file.Path
	}
	tree := &treeNode{label: header}
	for i, decl := range root.Children {
		tree.children = append(tree.children, buildDeclTreeNode(decl, i))
	}

	var sb strings.Builder
	sb.WriteString(tree.label)
	sb.WriteByte('\n')
	for i, child := range tree.children {
		writeTree(&sb, child, "", i == len(tree.children)-1)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatASTSexpr prints one S-expression per declaration, `init` after `=`.
func FormatASTSexpr(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	var sb strings.Builder
	for _, decl := range root.Children {
		sb.WriteString(ast.Sexpr(decl.Expr))
		if len(decl.Children) > 0 {
			sb.WriteString(" = ")
			sb.WriteString(ast.Sexpr(decl.Children[0].Expr))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, n *treeNode, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(n.label)
	sb.WriteByte('\n')
	for i, child := range n.children {
		writeTree(sb, child, prefix+next, i == len(n.children)-1)
	}
}

func nodeSpanLabel(n *ast.Node) string {
	if sp, ok := n.Span(); ok {
		return fmt.Sprintf(" (span: %s)", sp)
	}
	return ""
}

func buildDeclTreeNode(decl *ast.Node, idx int) *treeNode {
	label := fmt.Sprintf("Decl[%d]: %s%s", idx, ast.Sexpr(decl.Expr), nodeSpanLabel(decl))
	node := &treeNode{label: label}
	if v, ok := decl.Expr.(*ast.Variable); ok {
		for i, dim := range v.Dims {
			if dim == nil {
				node.children = append(node.children, &treeNode{label: fmt.Sprintf("Dim[%d]: auto", i)})
				continue
			}
			dimNode := buildExprTreeNode(dim)
			dimNode.label = fmt.Sprintf("Dim[%d]: %s", i, dimNode.label)
			node.children = append(node.children, dimNode)
		}
	}
	for _, child := range decl.Children {
		initNode := buildExprTreeNode(child.Expr)
		initNode.label = "Init: " + initNode.label
		node.children = append(node.children, initNode)
	}
	return node
}

func buildExprTreeNode(e ast.Expression) *treeNode {
	switch x := e.(type) {
	case *ast.Variable:
		return &treeNode{label: "Variable " + ast.Sexpr(x)}
	case *ast.Literal:
		return &treeNode{label: "Literal " + ast.Sexpr(x)}
	case *ast.BinaryOperation:
		return &treeNode{
			label:    "Binary " + x.Operator.Kind.String(),
			children: []*treeNode{buildExprTreeNode(x.Left), buildExprTreeNode(x.Right)},
		}
	case *ast.UnaryOperation:
		return &treeNode{label: "Unary " + x.Operator.Kind.String(), children: []*treeNode{buildExprTreeNode(x.Operand)}}
	case *ast.PostfixOperation:
		return &treeNode{label: "Postfix " + x.Operator.Kind.String(), children: []*treeNode{buildExprTreeNode(x.Operand)}}
	case *ast.TagOverride:
		return &treeNode{label: "TagOverride " + x.Tag, children: []*treeNode{buildExprTreeNode(x.Operand)}}
	case *ast.ArrayLiteral:
		label := fmt.Sprintf("Array (%d elements)", len(x.Elements))
		if x.Fill {
			label += " ..."
		}
		node := &treeNode{label: label}
		for _, el := range x.Elements {
			node.children = append(node.children, buildExprTreeNode(el))
		}
		return node
	case nil:
		return &treeNode{label: "<nil>"}
	default:
		return &treeNode{label: e.Kind().String()}
	}
}

// ASTNodeOutput: узел дерева для JSON вывода.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     *SpanOutput     `json:"span,omitempty"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// BuildASTOutput converts the tree rooted at root. Nodes carry their span;
// expressions inside a node don't keep token positions.
// A declaration's initializer goes to fields["init"].
func BuildASTOutput(root *ast.Node) ASTNodeOutput {
	out := exprOutput(root.Expr)
	if sp, ok := root.Span(); ok {
		s := makeSpan(sp)
		out.Span = &s
	}
	for _, child := range root.Children {
		childOut := BuildASTOutput(child)
		if root.Expr.Kind() == ast.ExprGlobalScope {
			out.Children = append(out.Children, childOut)
			continue
		}
		out.Fields = withField(out.Fields, "init", childOut)
	}
	return out
}

func withField(fields map[string]any, key string, value any) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[key] = value
	return fields
}

func exprOutput(e ast.Expression) ASTNodeOutput {
	if e == nil {
		return ASTNodeOutput{Type: "AutoSize"}
	}
	out := ASTNodeOutput{Type: e.Kind().String()}
	switch x := e.(type) {
	case *ast.Variable:
		out.Text = x.Name
		out.Fields = withField(out.Fields, "tag", x.Tag)
		for _, d := range x.Dims {
			out.Children = append(out.Children, exprOutput(d))
		}
	case *ast.Literal:
		out.Text = x.Value.String()
		out.Fields = withField(out.Fields, "tag", x.Tag)
		out.Fields["value_kind"] = literalKind(x.Value)
	case *ast.BinaryOperation:
		out.Text = x.Operator.Kind.String()
		out.Children = []ASTNodeOutput{exprOutput(x.Left), exprOutput(x.Right)}
	case *ast.UnaryOperation:
		out.Text = x.Operator.Kind.String()
		out.Children = []ASTNodeOutput{exprOutput(x.Operand)}
	case *ast.PostfixOperation:
		out.Text = x.Operator.Kind.String()
		out.Children = []ASTNodeOutput{exprOutput(x.Operand)}
	case *ast.TagOverride:
		out.Text = x.Tag
		out.Children = []ASTNodeOutput{exprOutput(x.Operand)}
	case *ast.ArrayLiteral:
		for _, el := range x.Elements {
			out.Children = append(out.Children, exprOutput(el))
		}
		if x.Fill {
			out.Fields = withField(out.Fields, "fill", true)
		}
	}
	return out
}

func literalKind(v token.Value) string {
	switch v.Kind {
	case token.ValueInt:
		return "int"
	case token.ValueFloat:
		return "float"
	case token.ValueText:
		return "string"
	}
	return "none"
}

// FormatASTJSON пишет дерево в JSON.
func FormatASTJSON(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(root))
}
