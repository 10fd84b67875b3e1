package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"pawnc/internal/source"
	"pawnc/internal/token"
)

// SpanOutput is a serialisable span: 1-based, end-exclusive.
type SpanOutput struct {
	LineStart uint32 `json:"line_start" msgpack:"line_start"`
	ColStart  uint32 `json:"col_start" msgpack:"col_start"`
	LineEnd   uint32 `json:"line_end" msgpack:"line_end"`
	ColEnd    uint32 `json:"col_end" msgpack:"col_end"`
}

// TokenOutput: один токен для JSON/msgpack дампа.
// Value хранит payload в родном типе: string, int32 или float32.
type TokenOutput struct {
	Kind   string     `json:"kind" msgpack:"kind"`
	Lexeme string     `json:"lexeme" msgpack:"lexeme"`
	Value  any        `json:"value,omitempty" msgpack:"value,omitempty"`
	Span   SpanOutput `json:"span" msgpack:"span"`
}

func makeSpan(sp source.Span) SpanOutput {
	return SpanOutput{LineStart: sp.LineStart, ColStart: sp.ColStart, LineEnd: sp.LineEnd, ColEnd: sp.ColEnd}
}

func makeTokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:   tok.Kind.Name(),
		Lexeme: tok.Lexeme(),
		Span:   makeSpan(tok.Span),
	}
	switch tok.Value.Kind {
	case token.ValueText:
		out.Value = tok.Value.Text
	case token.ValueInt:
		out.Value = tok.Value.Int
	case token.ValueFloat:
		out.Value = tok.Value.Float
	}
	return out
}

// BuildTokensOutput converts tokens up to End; End itself is not emitted.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.End {
			break
		}
		output = append(output, makeTokenOutput(tok))
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  3: Symbol          "counter" at 4:5-4:12
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	if file != nil {
		if _, err := fmt.Fprintf(w, "%s: %d tokens\n", file.Path, len(tokens)); err != nil {
			return err
		}
	}
	for i, tok := range tokens {
		if tok.Kind == token.End {
			break
		}
		text := ""
		if tok.Value.IsSet() {
			text = " " + token.Quote(tok.Value.String())
		}
		if _, err := fmt.Fprintf(w, "%3d: %-15s%s at %s\n", i+1, tok.Kind.Name(), text, tok.Span); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens))
}

// FormatTokensMsgpack пишет тот же массив, что и FormatTokensJSON, в msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildTokensOutput(tokens))
}
