package fuzztests

import (
	"context"
	"testing"
	"time"

	"pawnc/internal/diag"
	"pawnc/internal/lexer"
	"pawnc/internal/parser"
	"pawnc/internal/source"
	"pawnc/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.pwn", input))

		bag := diag.NewBag(128)
		reporter := diag.BagReporter{Bag: bag}
		toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()

		root, err := parser.New(toks, parser.Options{Reporter: reporter}).Parse()
		if root == nil {
			t.Fatalf("nil root")
		}
		if err != nil && !bag.HasErrors() {
			t.Fatalf("parse error %v was not reported", err)
		}
		if err == nil {
			if invErr := testkit.CheckSpanInvariants(root, file); invErr != nil {
				t.Fatalf("span invariants: %v", invErr)
			}
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("new x = 5"))                 // missing semicolon
	f.Add([]byte("new x[] = {1, 2, ...};"))    // fill
	f.Add([]byte("new a = ((((((1))))));"))    // nested parens
	f.Add([]byte("{ { { new x; } } } new y;")) // nested blocks
	f.Add([]byte("new x = Float:- - -1.0;"))   // signs

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.Parse(string(input), lexer.Options{}, parser.Options{})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
