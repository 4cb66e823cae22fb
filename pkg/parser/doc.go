// Package parser implements a context-sensitive recursive descent parser
// for the language's surface syntax.
//
// Unlike a conventional two-stage lexer+parser pipeline, this grammar cannot
// be tokenized ahead of parsing: text literals use a delimiter-by-repetition
// escape convention that only makes sense scanned rune-by-rune at the point
// of use, and conditional/else keywords are matched against a rotating set
// of phrase variants whose legality depends on parse state accumulated
// earlier in the same parse. The parser therefore owns a rune cursor
// directly instead of consuming a token stream.
//
// Architecture:
//
//   - parser.go: the rune cursor (position/line/column tracking, lookahead
//     and backtracking primitives) and the top-level Parse entry point.
//   - phrases.go: the fixed IFS/ELSES phrase lists and the rotation
//     machinery that enforces "no variant reused until its list cycles".
//   - numbers.go: punctuation-digit number scanning and vector/param
//     component assembly.
//   - text.go: the text-literal scanner.
//   - expressions.go: the expr production — definition, call, text,
//     write-IO, scope, conditional, vector/param, and the trailing
//     operator suffix.
//   - errors.go: the position-tagged ParseError; a parse yields at most one.
//
// Grammar shape:
//
// An expr production attempts, in order: function definition, function
// call, text literal, write-IO, scope, conditional, then a combined
// vector-or-param literal. Whichever alternative matches may be followed by
// one operator suffix (=, *, +, -) whose right-hand side is itself a full
// expr — operators are flat and right-leaning, so `a + b + c` parses as
// `a + (b + c)`.
//
// Error handling:
//
// The grammar offers no recovery: the first unrecognized construct, reused
// phrase variant, or empty text literal aborts the parse. Most internal
// failures are therefore reported immediately rather than backtracked,
// since no other grammar alternative ever shares a leading token with the
// one that failed.
package parser
