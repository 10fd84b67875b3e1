package ast

import (
	"strings"

	"pawnc/internal/token"
)

// Sexpr renders an expression as a compact S-expression, e.g. (+ a (* Float:b 2)).
// Used by tests and the `parse --format tree` dump.
func Sexpr(e Expression) string {
	var b strings.Builder
	writeSexpr(&b, e)
	return b.String()
}

func writeSexpr(b *strings.Builder, e Expression) {
	switch x := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *GlobalScope:
		b.WriteString("<global>")
	case *Variable:
		writeTag(b, x.Tag)
		b.WriteString(x.Name)
		for _, d := range x.Dims {
			b.WriteByte('[')
			if d != nil {
				writeSexpr(b, d)
			}
			b.WriteByte(']')
		}
	case *Literal:
		writeTag(b, x.Tag)
		if x.Value.Kind == token.ValueText {
			b.WriteString(token.Quote(x.Value.Text))
		} else {
			b.WriteString(x.Value.String())
		}
	case *BinaryOperation:
		b.WriteByte('(')
		b.WriteString(x.Operator.Kind.String())
		b.WriteByte(' ')
		writeSexpr(b, x.Left)
		b.WriteByte(' ')
		writeSexpr(b, x.Right)
		b.WriteByte(')')
	case *UnaryOperation:
		b.WriteByte('(')
		b.WriteString(x.Operator.Kind.String())
		b.WriteByte(' ')
		writeSexpr(b, x.Operand)
		b.WriteByte(')')
	case *PostfixOperation:
		b.WriteString("(post")
		b.WriteString(x.Operator.Kind.String())
		b.WriteByte(' ')
		writeSexpr(b, x.Operand)
		b.WriteByte(')')
	case *TagOverride:
		writeTag(b, x.Tag)
		switch x.Operand.(type) {
		case *BinaryOperation, *UnaryOperation, *PostfixOperation:
			writeSexpr(b, x.Operand)
		default:
			b.WriteByte('(')
			writeSexpr(b, x.Operand)
			b.WriteByte(')')
		}
	case *ArrayLiteral:
		b.WriteByte('{')
		for i, el := range x.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			writeSexpr(b, el)
		}
		if x.Fill {
			b.WriteString(", ...")
		}
		b.WriteByte('}')
	}
}

func writeTag(b *strings.Builder, tag string) {
	if tag != "" && tag != NoTag {
		b.WriteString(tag)
		b.WriteByte(':')
	}
}
