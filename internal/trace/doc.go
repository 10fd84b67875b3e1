// Package trace is the logging layer of pawnc: levelled, scoped events that show
// what the driver did and how long each step took.
//
// # Usage
//
//	pawnc parse --trace=- --trace-level=detail gamemodes/
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write (text or NDJSON) to a file or stderr
//   - RingTracer: the last N events in memory, dumped when a run fails
//   - MultiTracer: fan-out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits driver and pass events (tokenize, parse), LevelDetail adds
// per-file events, LevelDebug adds node-level events (one per declaration).
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "parse")
//	defer span.End("")
package trace
