// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer, parser, and evaluator.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     1000s are lexical, 2000s syntactic, 3000s evaluation, 6000s observability.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional edit suggestions (e.g. insert a missing bracket).
//
// Notes should be used sparingly: each note must add new context (e.g. “group
// opened here”) rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases should use a diag.Reporter to decouple emission from storage. The
// parser constructs a ReportBuilder via NewReportBuilder (or the helper
// functions ReportError/ReportWarning/ReportInfo) and chains WithNote /
// WithFix before calling Emit. When no additional metadata is needed, phases
// may call Reporter.Report(...) directly. diag.BagReporter aggregates
// diagnostics into a Bag, which supports sorting, deduplication, and merging.
//
// Keep the data model deterministic: diagnostics are serialised for caching
// and compared in tests, so identical inputs must yield identical bags.
package diag
