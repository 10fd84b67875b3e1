// Package token defines lexical token kinds, payloads and the keyword table of the pawnc front end.
// Invariants:
//   - Kind is a closed enumeration; every kind has a fixed canonical spelling (Kind.String)
//     used verbatim in diagnostics.
//   - Keywords are case-sensitive and carry no payload.
//   - Symbol, Literal and Comment tokens carry text; Integer carries int32; Float carries float32.
//   - End is produced by the lexer once input is exhausted and never appears in Lexer.Lex output.
//   - Directives ('#') are tokenized as a Directive marker followed by ordinary tokens;
//     nothing here interprets them.
package token
