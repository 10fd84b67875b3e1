package fuzztests

import (
	"testing"

	"pawnc/internal/diag"
	"pawnc/internal/lexer"
	"pawnc/internal/source"
	"pawnc/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.pwn", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		prev := source.LineCol{Line: 1, Col: 1}
		// каждый токен съедает хотя бы одну руну, так что токенов не больше, чем байт
		for range len(input) + 1 {
			tok := lx.Next()
			if tok.Kind == token.End {
				return
			}
			if !tok.Span.Valid() || tok.Span.Start().Before(prev) {
				t.Fatalf("bad span %s after %s for %s", tok.Span, prev, tok)
			}
			prev = tok.Span.End()
		}
		t.Fatalf("lexer did not reach End within %d tokens", len(input)+1)
	})
}
