// Package value provides the runtime value system for the language's
// tree-walking evaluator.
//
// Every expression evaluates to exactly one Value. The value system has five
// variants, and equality between them is structural and variant-exact: two
// values of different variants never compare equal.
//
// Value Types:
//   - Text: a Unicode string
//   - Boolean: true or false
//   - Vector: an ordered list of signed 64-bit integers
//   - Function: a suspended expression body with no captured environment —
//     lookups happen at call time against the then-current call state, so
//     this is lexically-dynamic rather than a true closure
//   - Empty: the unit-like absence of a value
//
// FuncEnv and ParamStack implement the two independent stacks the evaluator
// threads through a run: FuncEnv resolves Call targets by name through
// lexically nested scopes, and ParamStack resolves Param references by
// position, flattened across nested call frames.
package value
