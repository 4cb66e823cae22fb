// Package ast provides Abstract Syntax Tree (AST) node definitions for the
// language's expression tree.
//
// The tree is a tagged-variant structure: every node implements Expr and
// represents one syntactic construct (a scope, a binary operation, a
// conditional, a function definition or call, a parameter reference, a text
// literal, a vector literal, or an I/O operation). Nodes are immutable after
// construction and own their children directly — the tree never cycles.
//
// Node Categories:
//
// Control and scoping:
//   - Scope: introduces a fresh function frame around one child expression
//   - Conditional: if/else with an optional failure branch
//
// Functions:
//   - Definition: binds a function body to a name in the current scope
//   - Call: applies a named function to zero or more argument expressions
//   - Param: a positional parameter reference (0 = all parameters)
//
// Literals:
//   - Text: a literal Unicode string
//   - Vector: a non-empty sequence of Number or Param components
//
// Operators:
//   - Op: a binary operation (Add, Sub, Mul, Equ) over two expressions
//
// I/O:
//   - WriteIO: emits an expression's value to the write sink
//   - ReadIO: reads a value from the read source
//
// The parser builds these nodes; the evaluator walks them. Neither package
// depends on the other — Expr is the only shared contract.
package ast
