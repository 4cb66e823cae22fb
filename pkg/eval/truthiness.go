package eval

import (
	"fmt"

	"github.com/conneroisu/murmur/internal/value"
)

// truthy implements the total predicate on Values used by Conditional.
func (e *Evaluator) truthy(v value.Value) (bool, error) {
	switch vv := v.(type) {
	case value.Boolean:
		return bool(vv), nil
	case value.Vector:
		return vectorParity(vv), nil
	case value.Text:
		for _, r := range string(vv) {
			if r != 'O' && r != 'k' {
				return false, nil
			}
		}
		return true, nil
	case value.Function:
		res, err := e.evalExpr(vv.Body)
		if err != nil {
			return false, err
		}
		return e.truthy(res)
	case value.Empty:
		return false, nil
	default:
		return false, fmt.Errorf("unsupported value in truthiness check: %T", v)
	}
}

// vectorParity reproduces the deliberately obscure fold specified for
// Vector truthiness: fold(3, (acc, i, cur) -> acc XOR ((cur << (acc AND 7))
// * i)) over (index, value) pairs starting at index 0, taken modulo 2. The
// low bit of the final accumulator (rather than Go's %, which keeps the
// sign) is the modulo-2 residue that matters here.
func vectorParity(v value.Vector) bool {
	var acc int64 = 3
	for i, cur := range v {
		shift := uint(acc & 7)
		acc ^= (cur << shift) * int64(i)
	}
	return acc&1 == 0
}
