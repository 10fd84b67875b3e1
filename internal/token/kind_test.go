package token

import "testing"

func TestEveryKindHasSpellingAndName(t *testing.T) {
	for _, k := range Kinds() {
		if k.String() == "" {
			t.Errorf("kind %d has no spelling", k)
		}
		if k.Name() == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if got := len(Kinds()); got != int(kindCount) {
		t.Fatalf("Kinds() returned %d kinds, want %d", got, kindCount)
	}
}

func TestCanonicalSpellings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Assign, "="},
		{Equal, "=="},
		{KwNew, "new"},
		{Symbol, "Symbol"},
		{BitRightAssign, ">>="},
		{Ellipsis, "..."},
		{Range, ".."},
		{Directive, "#"},
		{LeftBracket, "("},
		{LeftBrace, "{"},
		{LeftSquare, "["},
		{KwEmit, "__emit"},
		{End, "End"},
		{Illegal, "Illegal"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%s.String() = %q, want %q", tt.kind.Name(), got, tt.want)
		}
	}
}

func TestKeywordSpellingRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		if !k.IsKeyword() {
			continue
		}
		got, ok := LookupKeyword(k.String())
		if !ok || got != k {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v", k.String(), got.Name(), ok, k.Name())
		}
	}
	if n := len(Keywords()); n != int(KwEmit-KwConst+1) {
		t.Fatalf("keyword table has %d entries, want %d", n, KwEmit-KwConst+1)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	for _, s := range []string{"New", "NEW", "If", "Return", "emit", "_emit"} {
		if k, ok := LookupKeyword(s); ok {
			t.Errorf("LookupKeyword(%q) = %s, want miss", s, k.Name())
		}
	}
}

func TestKindClasses(t *testing.T) {
	if !PlusAssign.IsAssignOp() || Equal.IsAssignOp() {
		t.Fatalf("IsAssignOp misclassifies += or ==")
	}
	if !Integer.IsLiteral() || Symbol.IsLiteral() {
		t.Fatalf("IsLiteral misclassifies")
	}
	if Symbol.HasFixedSpelling() || !Semicolon.HasFixedSpelling() || !KwState.HasFixedSpelling() {
		t.Fatalf("HasFixedSpelling misclassifies")
	}
}
