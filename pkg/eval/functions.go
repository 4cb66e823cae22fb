package eval

import (
	"fmt"

	"github.com/conneroisu/murmur/internal/ast"
	"github.com/conneroisu/murmur/internal/value"
)

// evalDefinition installs name→body in the innermost function frame and
// yields the newly bound Function value.
func (e *Evaluator) evalDefinition(d *ast.Definition) (value.Value, error) {
	e.funcs.Define(d.Name, d.Body)
	return value.NewFunction(d.Body), nil
}

// evalCall evaluates a function call: arguments are evaluated left to
// right, the named body is resolved against the function environment, a new
// parameter frame is pushed for the duration of the body's evaluation, and
// popped strictly on return (even on error, via defer).
func (e *Evaluator) evalCall(c *ast.Call) (value.Value, error) {
	args := make(value.ParamFrame, len(c.Args))
	for i, a := range c.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	body, ok := e.funcs.Lookup(c.Name)
	if !ok {
		return nil, fmt.Errorf("undefined function: %s", c.Name)
	}

	e.params.Push(args)
	defer e.params.Pop()
	return e.evalExpr(body)
}

// evalParam resolves a positional parameter reference.
func (e *Evaluator) evalParam(p *ast.Param) (value.Value, error) {
	return e.resolveParamValue(p.Index)
}

// resolveParamValue resolves index 0 ("all parameters as a vector") by
// vectorizing and flattening every value in the current parameter frame;
// indices 1.. are resolved against the flattened parameter stack (§4.2.1),
// which lets a callee with a shorter own frame address into its caller's
// parameters.
func (e *Evaluator) resolveParamValue(idx uint64) (value.Value, error) {
	if idx == 0 {
		frame := e.params.Current()
		var out value.Vector
		for _, v := range frame {
			vv, err := e.vectorize(v)
			if err != nil {
				return nil, err
			}
			out = append(out, vv...)
		}
		return out, nil
	}
	v, ok := e.params.Resolve(idx)
	if !ok {
		return nil, fmt.Errorf("unbound parameter: \\%d", idx)
	}
	return v, nil
}

// evalVector builds a flat integer Vector from a literal's components: a
// Number component contributes itself, a Param component contributes the
// vectorized form of the value its index resolves to.
func (e *Evaluator) evalVector(lit *ast.Vector) (value.Value, error) {
	var out value.Vector
	for _, c := range lit.Components {
		switch cc := c.(type) {
		case ast.NumberComponent:
			out = append(out, int64(cc))
		case ast.ParamComponent:
			pv, err := e.resolveParamValue(cc.Index)
			if err != nil {
				return nil, err
			}
			vv, err := e.vectorize(pv)
			if err != nil {
				return nil, err
			}
			out = append(out, vv...)
		default:
			return nil, fmt.Errorf("unknown vector component type: %T", c)
		}
	}
	return out, nil
}
