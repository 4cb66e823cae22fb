// Package eval provides the tree-walking evaluator for the language's
// abstract syntax tree.
//
// The evaluator carries two disjoint LIFO stacks threaded through a run:
//   - a function environment (internal/value.FuncEnv), pushed and popped on
//     Scope entry/exit, consulted by Call and populated by Definition;
//   - a parameter stack (internal/value.ParamStack), pushed and popped on
//     Call, consulted by Param references, flattened across nested frames
//     so a callee with a shorter own frame can address into its caller's
//     arguments.
//
// Functions carry no captured environment — only a suspended expression
// body. Lookups happen at call time against the then-current function
// environment, so this is lexically-dynamic rather than a true closure.
//
// A seedable *rand.Rand supplies the one corner of addition that consumes
// randomness (Boolean+Vector, a permutation draw), and two optional,
// abstract I/O sinks back WriteIO and ReadIO.
//
// File layout mirrors the evaluator's concerns:
//   - evaluator.go: the Evaluator type, construction options, Eval, and the
//     central evalExpr dispatcher.
//   - control_flow.go: Scope and Conditional.
//   - functions.go: Definition, Call, Param, and Vector literal assembly.
//   - operators.go: the Op dispatch table (Equ, Add, and the Sub/Mul
//     placeholders).
//   - truthiness.go: the truthiness predicate, including the vector parity
//     fold.
//   - vectorize.go: the total coercion from any Value to Vector contents.
//   - io.go: WriteIO and ReadIO against the abstract sinks.
package eval
