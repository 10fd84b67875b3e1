package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexNumberOutOfRange         Code = 1005
	LexLoneDot                  Code = 1006
	LexInvalidUTF8              Code = 1007

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2012
	SynExpectIdentifier   Code = 2102
	SynExpectRightBracket Code = 2201
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204
	SynExpectRightSquare  Code = 2205
	SynExpectRightBrace   Code = 2206
	SynExpectLiteral      Code = 2207
	SynExpectSymbol       Code = 2208

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002

	// Проект
	ProjInfo          Code = 5000
	ProjConfigInvalid Code = 5001
	ProjConfigUnknown Code = 5002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexNumberOutOfRange:         "Number literal out of range",
		LexLoneDot:                  "Lone '.' is not an operator",
		LexInvalidUTF8:              "Invalid UTF-8 sequence",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynExpectSemicolon:          "Expected semicolon",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectRightBracket:       "Expected ')'",
		SynExpectExpression:         "Expected expression",
		SynExpectColon:              "Expected ':'",
		SynExpectRightSquare:        "Expected ']'",
		SynExpectRightBrace:         "Expected '}'",
		SynExpectLiteral:            "Expected number literal",
		SynExpectSymbol:             "Expected symbol",
		IOLoadFileError:             "I/O load file error",
		IOReadDirError:              "I/O read directory error",
		ProjInfo:                    "Project information",
		ProjConfigInvalid:           "Invalid project configuration",
		ProjConfigUnknown:           "Unknown project configuration key",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
