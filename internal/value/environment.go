package value

import "github.com/conneroisu/murmur/internal/ast"

// FuncFrame is one lexical scope's function bindings.
type FuncFrame map[string]ast.Expr

// FuncEnv is the ordered stack of function frames consulted to resolve a
// Call's target. Lookup walks from innermost to outermost and returns the
// first hit; Definition always installs into the innermost frame.
type FuncEnv struct {
	frames []FuncFrame
}

// NewFuncEnv returns an environment with a single, empty top-level frame.
func NewFuncEnv() *FuncEnv {
	return &FuncEnv{frames: []FuncFrame{make(FuncFrame)}}
}

// Push opens a new, empty innermost frame (entering a Scope).
func (e *FuncEnv) Push() {
	e.frames = append(e.frames, make(FuncFrame))
}

// Pop discards the innermost frame (leaving a Scope).
func (e *FuncEnv) Pop() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Define binds name to body in the innermost frame.
func (e *FuncEnv) Define(name string, body ast.Expr) {
	e.frames[len(e.frames)-1][name] = body
}

// Lookup walks frames from innermost to outermost, returning the first bound
// body for name.
func (e *FuncEnv) Lookup(name string) (ast.Expr, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if body, ok := e.frames[i][name]; ok {
			return body, true
		}
	}
	return nil, false
}

// ParamFrame is the ordered list of argument Values passed to one call.
type ParamFrame []Value

// ParamStack is the ordered stack of parameter frames used to resolve Param
// references. It is disjoint from FuncEnv: pushed only on Call, popped on
// return.
type ParamStack struct {
	frames []ParamFrame
}

// NewParamStack returns an empty parameter stack.
func NewParamStack() *ParamStack {
	return &ParamStack{}
}

// Push installs a new innermost parameter frame (entering a Call).
func (s *ParamStack) Push(f ParamFrame) {
	s.frames = append(s.frames, f)
}

// Pop discards the innermost parameter frame (returning from a Call).
func (s *ParamStack) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Current returns the innermost parameter frame, or nil if the stack is
// empty.
func (s *ParamStack) Current() ParamFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Resolve addresses the stack as one flat, 1-indexed sequence: it walks
// frames from innermost to outermost, consuming k against each frame's
// length until k falls inside a frame. A callee whose own frame is shorter
// than k can therefore reach into its caller's parameters.
func (s *ParamStack) Resolve(k uint64) (Value, bool) {
	if k == 0 {
		return nil, false
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		frame := s.frames[i]
		if k <= uint64(len(frame)) {
			return frame[k-1], true
		}
		k -= uint64(len(frame))
	}
	return nil, false
}
