package token

import (
	"strconv"
	"strings"

	"pawnc/internal/source"
)

// Token: минимальная единица лексического анализа.
type Token struct {
	Kind  Kind
	Value Value
	Span  source.Span
}

// Text returns the text payload, or "" when the token has none.
func (t Token) Text() string {
	if t.Value.Kind == ValueText {
		return t.Value.Text
	}
	return ""
}

func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

func (t Token) IsIdent() bool { return t.Kind == Symbol }

func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// Lexeme reconstructs source text that tokenizes back to an equal token
// (same kind and payload). Illegal tokens return their raw text.
func (t Token) Lexeme() string {
	switch {
	case t.Kind.HasFixedSpelling():
		return t.Kind.String()
	case t.Kind == Literal:
		return Quote(t.Value.Text)
	case t.Kind == Comment:
		if strings.Contains(t.Value.Text, "\n") {
			return "/* " + t.Value.Text + " */"
		}
		return "// " + t.Value.Text
	default:
		return t.Value.String()
	}
}

// String is a debug rendering: Kind("payload") or just the kind.
func (t Token) String() string {
	if !t.Value.IsSet() {
		return t.Kind.Name()
	}
	return t.Kind.Name() + "(" + strconv.Quote(t.Value.String()) + ")"
}

// Quote renders s as a string literal using the lexer's escape rules.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
