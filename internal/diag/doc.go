// Package diag defines the diagnostic model shared by the rule core, the
// driver and the renderers.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error); rules emit Warning,
//     the driver may override per code through SeverityReporter.
//   - Code – stable rule identifier, e.g. "no-redeclare".
//   - Message – fixed human-readable text per rule.
//   - Primary span – the source.Span the finding points at.
//   - Notes – optional secondary spans, e.g. "previously declared here".
//
// # Emitting diagnostics
//
// Rules receive a Reporter and either call Report directly or go through
// ReportBuilder (ReportWarning(...).WithNote(...).Emit()). BagReporter
// appends into a Bag. A Bag keeps every diagnostic in append order: there is
// no deduplication and no capacity limit. Sort and Merge exist for the
// driver, which combines per-rule bags after all rules finish.
//
// Rendering lives in internal/diagfmt; FormatShort here is the one-line
// form shared by the CLI and golden tests.
package diag
