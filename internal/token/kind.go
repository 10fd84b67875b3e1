package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks an unrecognized character or malformed literal.
	Illegal Kind = iota
	// End marks the end of the source input.
	End

	Equal            // ==
	Assign           // =
	Plus             // +
	PlusPlus         // ++
	PlusAssign       // +=
	Minus            // -
	MinusMinus       // --
	MinusAssign      // -=
	Asterisk         // *
	AsteriskAssign   // *=
	Slash            // /
	SlashAssign      // /=
	Percent          // %
	PercentAssign    // %=
	And              // &&
	BitAnd           // &
	BitAndAssign     // &=
	Or               // ||
	BitOr            // |
	BitOrAssign      // |=
	BitXor           // ^
	BitXorAssign     // ^=
	LowerThan        // <
	LowerThanEqual   // <=
	BitLeft          // <<
	BitLeftAssign    // <<=
	GreaterThan      // >
	GreaterThanEqual // >=
	BitRight         // >>
	BitRightAssign   // >>=
	NotEqual         // !=
	Bang             // !
	Colon            // :
	Semicolon        // ;
	Comma            // ,
	LeftBrace        // {
	RightBrace       // }
	LeftBracket      // (
	RightBracket     // )
	LeftSquare       // [
	RightSquare      // ]
	Ellipsis         // ...
	Range            // ..
	Directive        // #

	// объявления/определения
	KwConst    // const
	KwNew      // new
	KwStatic   // static
	KwStock    // stock
	KwForward  // forward
	KwPublic   // public
	KwNative   // native
	KwOperator // operator
	KwChar     // char
	KwEnum     // enum
	KwState    // state

	// управление потоком
	KwIf       // if
	KwElse     // else
	KwSwitch   // switch
	KwCase     // case
	KwDefault  // default
	KwFor      // for
	KwWhile    // while
	KwDo       // do
	KwBreak    // break
	KwContinue // continue
	KwGoto     // goto
	KwReturn   // return
	KwSizeof   // sizeof
	KwTagof    // tagof
	KwEmit     // __emit

	// Integer is a decimal integer literal (payload int32).
	Integer
	// Float is a decimal floating point literal (payload float32).
	Float
	// Symbol is an identifier that is not a keyword (payload text).
	Symbol
	// Label is reserved for `name:` jump labels; the lexer does not produce it,
	// since `name:` is indistinguishable from a tag prefix at the lexical level.
	Label
	// Literal is a string literal (payload: unescaped text).
	Literal
	// Comment is a line or block comment (payload: trimmed text).
	Comment

	kindCount
)

// spellings: каноническое написание каждого вида; используется в диагностике, менять нельзя.
var spellings = [kindCount]string{
	Illegal:          "Illegal",
	End:              "End",
	Equal:            "==",
	Assign:           "=",
	Plus:             "+",
	PlusPlus:         "++",
	PlusAssign:       "+=",
	Minus:            "-",
	MinusMinus:       "--",
	MinusAssign:      "-=",
	Asterisk:         "*",
	AsteriskAssign:   "*=",
	Slash:            "/",
	SlashAssign:      "/=",
	Percent:          "%",
	PercentAssign:    "%=",
	And:              "&&",
	BitAnd:           "&",
	BitAndAssign:     "&=",
	Or:               "||",
	BitOr:            "|",
	BitOrAssign:      "|=",
	BitXor:           "^",
	BitXorAssign:     "^=",
	LowerThan:        "<",
	LowerThanEqual:   "<=",
	BitLeft:          "<<",
	BitLeftAssign:    "<<=",
	GreaterThan:      ">",
	GreaterThanEqual: ">=",
	BitRight:         ">>",
	BitRightAssign:   ">>=",
	NotEqual:         "!=",
	Bang:             "!",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	LeftBrace:        "{",
	RightBrace:       "}",
	LeftBracket:      "(",
	RightBracket:     ")",
	LeftSquare:       "[",
	RightSquare:      "]",
	Ellipsis:         "...",
	Range:            "..",
	Directive:        "#",
	KwConst:          "const",
	KwNew:            "new",
	KwStatic:         "static",
	KwStock:          "stock",
	KwForward:        "forward",
	KwPublic:         "public",
	KwNative:         "native",
	KwOperator:       "operator",
	KwChar:           "char",
	KwEnum:           "enum",
	KwState:          "state",
	KwIf:             "if",
	KwElse:           "else",
	KwSwitch:         "switch",
	KwCase:           "case",
	KwDefault:        "default",
	KwFor:            "for",
	KwWhile:          "while",
	KwDo:             "do",
	KwBreak:          "break",
	KwContinue:       "continue",
	KwGoto:           "goto",
	KwReturn:         "return",
	KwSizeof:         "sizeof",
	KwTagof:          "tagof",
	KwEmit:           "__emit",
	Integer:          "Integer",
	Float:            "Float",
	Symbol:           "Symbol",
	Label:            "Label",
	Literal:          "Literal",
	Comment:          "Comment",
}

var names = [kindCount]string{
	Illegal:          "Illegal",
	End:              "End",
	Equal:            "Equal",
	Assign:           "Assign",
	Plus:             "Plus",
	PlusPlus:         "PlusPlus",
	PlusAssign:       "PlusAssign",
	Minus:            "Minus",
	MinusMinus:       "MinusMinus",
	MinusAssign:      "MinusAssign",
	Asterisk:         "Asterisk",
	AsteriskAssign:   "AsteriskAssign",
	Slash:            "Slash",
	SlashAssign:      "SlashAssign",
	Percent:          "Percent",
	PercentAssign:    "PercentAssign",
	And:              "And",
	BitAnd:           "BitAnd",
	BitAndAssign:     "BitAndAssign",
	Or:               "Or",
	BitOr:            "BitOr",
	BitOrAssign:      "BitOrAssign",
	BitXor:           "BitXor",
	BitXorAssign:     "BitXorAssign",
	LowerThan:        "LowerThan",
	LowerThanEqual:   "LowerThanEqual",
	BitLeft:          "BitLeft",
	BitLeftAssign:    "BitLeftAssign",
	GreaterThan:      "GreaterThan",
	GreaterThanEqual: "GreaterThanEqual",
	BitRight:         "BitRight",
	BitRightAssign:   "BitRightAssign",
	NotEqual:         "NotEqual",
	Bang:             "Bang",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	LeftBrace:        "LeftBrace",
	RightBrace:       "RightBrace",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	LeftSquare:       "LeftSquare",
	RightSquare:      "RightSquare",
	Ellipsis:         "Ellipsis",
	Range:            "Range",
	Directive:        "Directive",
	KwConst:          "Const",
	KwNew:            "New",
	KwStatic:         "Static",
	KwStock:          "Stock",
	KwForward:        "Forward",
	KwPublic:         "Public",
	KwNative:         "Native",
	KwOperator:       "Operator",
	KwChar:           "Char",
	KwEnum:           "Enum",
	KwState:          "State",
	KwIf:             "If",
	KwElse:           "Else",
	KwSwitch:         "Switch",
	KwCase:           "Case",
	KwDefault:        "Default",
	KwFor:            "For",
	KwWhile:          "While",
	KwDo:             "Do",
	KwBreak:          "Break",
	KwContinue:       "Continue",
	KwGoto:           "Goto",
	KwReturn:         "Return",
	KwSizeof:         "Sizeof",
	KwTagof:          "Tagof",
	KwEmit:           "Emit",
	Integer:          "Integer",
	Float:            "Float",
	Symbol:           "Symbol",
	Label:            "Label",
	Literal:          "Literal",
	Comment:          "Comment",
}

// String returns the canonical spelling: the source text for operators and keywords,
// the category name for everything else (e.g. Assign → "=", KwNew → "new", Symbol → "Symbol").
func (k Kind) String() string {
	if k < kindCount {
		return spellings[k]
	}
	return "Kind(?)"
}

// Name returns the identifier-style name of the kind (Assign, New, Symbol, ...).
func (k Kind) Name() string {
	if k < kindCount {
		return names[k]
	}
	return "Kind(?)"
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwConst && k <= KwEmit
}

// IsPunctOrOp reports whether the kind is an operator or punctuation mark.
func (k Kind) IsPunctOrOp() bool {
	return k >= Equal && k <= Directive
}

// IsLiteral reports whether the kind is a numeric or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case Integer, Float, Literal:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the kind belongs to the assignment family (= += -= ... >>=).
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, AsteriskAssign, SlashAssign, PercentAssign,
		BitAndAssign, BitOrAssign, BitXorAssign, BitLeftAssign, BitRightAssign:
		return true
	default:
		return false
	}
}

// HasFixedSpelling reports whether String() is the exact source text of the kind.
func (k Kind) HasFixedSpelling() bool {
	return k.IsKeyword() || k.IsPunctOrOp()
}
