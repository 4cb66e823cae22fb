package eval

import (
	"github.com/conneroisu/murmur/internal/ast"
	"github.com/conneroisu/murmur/internal/value"
)

// evalScope evaluates a Scope by pushing a fresh, empty function frame,
// evaluating the child expression under it, and popping the frame on exit —
// strict LIFO regardless of how the child expression returns.
func (e *Evaluator) evalScope(s *ast.Scope) (value.Value, error) {
	e.funcs.Push()
	defer e.funcs.Pop()
	return e.evalExpr(s.Child)
}

// evalConditional evaluates a Conditional: the condition is evaluated and
// tested for truthiness; the success branch runs if truthy, otherwise the
// failure branch if one was written, otherwise the result is Empty.
func (e *Evaluator) evalConditional(c *ast.Conditional) (value.Value, error) {
	cond, err := e.evalExpr(c.Condition)
	if err != nil {
		return nil, err
	}
	truthy, err := e.truthy(cond)
	if err != nil {
		return nil, err
	}
	if truthy {
		return e.evalExpr(c.Success)
	}
	if c.Failure == nil {
		return value.Empty{}, nil
	}
	return e.evalExpr(c.Failure)
}
