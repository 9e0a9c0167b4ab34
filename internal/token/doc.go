// Package token defines lexical token kinds and trivia for expression sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Token.Value is set only for Number tokens; every other kind keeps 0.
//   - Keywords match longest-first: arccotan lexes as one token, never as
//     arccot plus stray letters.
//   - Whitespace and '#' line comments are leading Trivia and never appear
//     in the main token stream.
package token
