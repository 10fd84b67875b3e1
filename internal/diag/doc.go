// Package diag defines the diagnostic model shared by the lexer, the parser and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1xxx, SYN2xxx, IO4xxx, PRJ5xxx).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Phases report through a diag.Reporter and never store diagnostics themselves.
// ReportBuilder (NewReportBuilder, ReportError, ReportWarning) chains WithNote before Emit;
// plain Reporter.Report works when no notes are needed. BagReporter collects into a Bag,
// which is capped and supports Sort/Dedup/Merge. LockedReporter and DedupReporter wrap
// another reporter.
//
// Package diag does no IO; rendering lives in internal/diagfmt, apart from the one-line
// FormatShort listing used by tests and `--diagnostics short`.
package diag
