package token

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"none", Value{}, ""},
		{"text", NewText("abc"), "abc"},
		{"int", NewInt(-42), "-42"},
		{"float", NewFloat(5.5), "5.5"},
		{"whole float keeps point", NewFloat(5), "5.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			if tt.v.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", tt.v.Len(), len(tt.want))
			}
		})
	}
}

func TestLexeme(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KwNew}, "new"},
		{Token{Kind: BitLeftAssign}, "<<="},
		{Token{Kind: Symbol, Value: NewText("x")}, "x"},
		{Token{Kind: Integer, Value: NewInt(7)}, "7"},
		{Token{Kind: Float, Value: NewFloat(1.25)}, "1.25"},
		{Token{Kind: Literal, Value: NewText("a\"b\\c\n")}, `"a\"b\\c\n"`},
		{Token{Kind: Comment, Value: NewText("note")}, "// note"},
		{Token{Kind: Comment, Value: NewText("two\nlines")}, "/* two\nlines */"},
	}
	for _, tt := range tests {
		if got := tt.tok.Lexeme(); got != tt.want {
			t.Errorf("%s.Lexeme() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	if got := (Token{Kind: Semicolon}).String(); got != "Semicolon" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Token{Kind: Symbol, Value: NewText("x")}).String(); got != `Symbol("x")` {
		t.Fatalf("String() = %q", got)
	}
	if (Token{Kind: Integer, Value: NewInt(1)}).Text() != "" {
		t.Fatalf("Text() on integer token must be empty")
	}
}
