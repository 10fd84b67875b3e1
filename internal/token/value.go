package token

import (
	"strconv"
	"strings"
)

// ValueKind tells which field of Value is meaningful.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueText
	ValueInt
	ValueFloat
)

// Value is the optional payload of a token.
type Value struct {
	Kind  ValueKind
	Text  string
	Int   int32
	Float float32
}

// NewText wraps a text payload (Symbol, Literal, Comment, Illegal).
func NewText(s string) Value { return Value{Kind: ValueText, Text: s} }

// NewInt wraps an integer payload.
func NewInt(i int32) Value { return Value{Kind: ValueInt, Int: i} }

// NewFloat wraps a float payload.
func NewFloat(f float32) Value { return Value{Kind: ValueFloat, Float: f} }

// IsSet reports whether the value carries a payload.
func (v Value) IsSet() bool { return v.Kind != ValueNone }

// String renders the payload. Floats always contain a decimal point,
// so the rendering re-tokenizes as a float again.
func (v Value) String() string {
	switch v.Kind {
	case ValueText:
		return v.Text
	case ValueInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case ValueFloat:
		s := strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}

// Len returns the byte length of the rendered payload.
func (v Value) Len() int { return len(v.String()) }
