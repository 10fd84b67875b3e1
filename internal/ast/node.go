package ast

import (
	"pawnc/internal/source"
	"pawnc/internal/token"
)

// Node: узел дерева: выражение, токены, из которых оно собрано, и дети.
// Дети принадлежат родителю единолично; общих поддеревьев и циклов нет.
type Node struct {
	Expr     Expression
	Tokens   []token.Token
	Children []*Node
}

// NewRoot creates the GlobalScope root: no tokens, children are top-level declarations.
func NewRoot() *Node {
	return &Node{Expr: &GlobalScope{}}
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Span covers every token of the node and its descendants; ok=false when there are none.
func (n *Node) Span() (sp source.Span, ok bool) {
	Walk(n, func(cur *Node) bool {
		for _, t := range cur.Tokens {
			if !ok {
				sp, ok = t.Span, true
				continue
			}
			sp = sp.Cover(t.Span)
		}
		return true
	})
	return sp, ok
}

// Walk visits n and its descendants in pre-order; returning false skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Inspect visits e and its sub-expressions in pre-order; returning false skips the operands.
func Inspect(e Expression, fn func(Expression) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch x := e.(type) {
	case *Variable:
		for _, d := range x.Dims {
			Inspect(d, fn)
		}
	case *BinaryOperation:
		Inspect(x.Left, fn)
		Inspect(x.Right, fn)
	case *UnaryOperation:
		Inspect(x.Operand, fn)
	case *PostfixOperation:
		Inspect(x.Operand, fn)
	case *ArrayLiteral:
		for _, el := range x.Elements {
			Inspect(el, fn)
		}
	}
}
