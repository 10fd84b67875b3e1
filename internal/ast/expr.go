package ast

import (
	"pawnc/internal/token"
)

// NoTag: тег переменной/литерала, если явный `tag:` не указан.
const NoTag = "_"

type ExprKind uint8

const (
	ExprGlobalScope ExprKind = iota
	ExprVariable
	ExprBinary
	ExprUnary
	ExprPostfix
	ExprLit
	ExprArray
	ExprTagOverride
)

func (k ExprKind) String() string {
	switch k {
	case ExprGlobalScope:
		return "GlobalScope"
	case ExprVariable:
		return "Variable"
	case ExprBinary:
		return "BinaryOperation"
	case ExprUnary:
		return "UnaryOperation"
	case ExprPostfix:
		return "PostfixOperation"
	case ExprLit:
		return "Literal"
	case ExprArray:
		return "ArrayLiteral"
	case ExprTagOverride:
		return "TagOverride"
	}
	return "ExprKind(?)"
}

// Expression: закрытое множество вариантов; реализовать снаружи пакета нельзя.
type Expression interface {
	Kind() ExprKind
	exprNode()
}

// GlobalScope marks the synthetic root of a file.
type GlobalScope struct{}

// Variable is a declared or referenced name. Dims holds the sizes of `new x[4][]`;
// nil entry means an auto-sized dimension.
type Variable struct {
	Name string
	Tag  string
	Dims []Expression
}

type BinaryOperation struct {
	Operator token.Token
	Left     Expression
	Right    Expression
}

// UnaryOperation is a prefix operator: + - ! ++ --.
type UnaryOperation struct {
	Operator token.Token
	Operand  Expression
}

// PostfixOperation is `x++` or `x--`.
type PostfixOperation struct {
	Operator token.Token
	Operand  Expression
}

// Literal is a number or string constant. Value has the sign already folded in.
type Literal struct {
	Tag   string
	Value token.Value
}

// ArrayLiteral is `{a, b, c}`; Fill is set by a trailing `...`.
type ArrayLiteral struct {
	Elements []Expression
	Fill     bool
}

// TagOverride is `Tag:(expr)`: the operand is re-tagged as a whole.
type TagOverride struct {
	Tag     string
	Operand Expression
}

func (*GlobalScope) Kind() ExprKind { return ExprGlobalScope }
func (*Variable) Kind() ExprKind { return ExprVariable }
func (*BinaryOperation) Kind() ExprKind { return ExprBinary }
func (*UnaryOperation) Kind() ExprKind { return ExprUnary }
func (*PostfixOperation) Kind() ExprKind { return ExprPostfix }
func (*Literal) Kind() ExprKind { return ExprLit }
func (*ArrayLiteral) Kind() ExprKind { return ExprArray }
func (*TagOverride) Kind() ExprKind { return ExprTagOverride }

func (*GlobalScope) exprNode() {}
func (*Variable) exprNode() {}
func (*BinaryOperation) exprNode() {}
func (*UnaryOperation) exprNode() {}
func (*PostfixOperation) exprNode() {}
func (*Literal) exprNode() {}
func (*ArrayLiteral) exprNode() {}
func (*TagOverride) exprNode() {}

// IsTagged reports whether the variable carries an explicit tag.
func (v *Variable) IsTagged() bool { return v.Tag != "" && v.Tag != NoTag }

// IsArray reports whether the variable was declared with dimensions.
func (v *Variable) IsArray() bool { return len(v.Dims) > 0 }
