// Package trace records what the linter is doing while it runs.
//
// Tracing is off unless enabled from the command line:
//
//	lintcore check --trace=- --trace-level=detail tree.json
//
// A Tracer travels on the context. The driver opens a ScopeDriver span for
// the whole check, ScopePass spans for load/resolve/lint, and one ScopeRule
// span per rule; point events mark notable moments in between.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.BeginCtx(ctx, trace.ScopePass, "resolve")
//	defer span.End("")
//
// Implementations: Nop (disabled), StreamTracer (writes immediately),
// RingTracer (keeps the last N events for dumping after a failure) and
// MultiTracer (fan-out).
package trace
