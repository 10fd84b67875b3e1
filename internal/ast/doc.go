// Package ast holds the syntax tree built by the parser.
//
// Expression is a closed set of variants (GlobalScope, Variable, BinaryOperation,
// UnaryOperation, PostfixOperation, Literal, ArrayLiteral). Node wraps an expression
// together with the tokens it was built from and its children. The root of every
// parse is a GlobalScope node without tokens; each top-level declaration becomes one
// child, in source order, and a declaration's initializer is its first child.
package ast
