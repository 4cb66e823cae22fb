package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/conneroisu/murmur/internal/ast"
)

// Signature is a sha256-derived key identifying an expression tree by
// structure: two trees with identical shape and content always produce the
// same Signature, and (modulo hash collision, an accepted approximation)
// differing trees never do.
type Signature string

// Of computes the Signature of expr.
func Of(expr ast.Expr) Signature {
	var b strings.Builder
	encode(&b, expr)
	sum := sha256.Sum256([]byte(b.String()))
	return Signature(hex.EncodeToString(sum[:]))
}

// encode writes a deterministic, unambiguous textual form of e to b.
func encode(b *strings.Builder, e ast.Expr) {
	if e == nil {
		b.WriteString("nil;")
		return
	}
	switch n := e.(type) {
	case *ast.Scope:
		b.WriteString("scope(")
		encode(b, n.Child)
		b.WriteString(")")
	case *ast.Op:
		fmt.Fprintf(b, "op(%s,", n.Operator)
		encode(b, n.Lhs)
		b.WriteString(",")
		encode(b, n.Rhs)
		b.WriteString(")")
	case *ast.Conditional:
		b.WriteString("if(")
		encode(b, n.Condition)
		b.WriteString(",")
		encode(b, n.Success)
		b.WriteString(",")
		encode(b, n.Failure)
		b.WriteString(")")
	case *ast.Definition:
		fmt.Fprintf(b, "def(%s,", n.Name)
		encode(b, n.Body)
		b.WriteString(")")
	case *ast.Call:
		fmt.Fprintf(b, "call(%s", n.Name)
		for _, a := range n.Args {
			b.WriteString(",")
			encode(b, a)
		}
		b.WriteString(")")
	case *ast.Param:
		fmt.Fprintf(b, "param(%d)", n.Index)
	case *ast.Text:
		fmt.Fprintf(b, "text(%q)", n.Value)
	case *ast.Vector:
		b.WriteString("vector(")
		for i, c := range n.Components {
			if i > 0 {
				b.WriteString(",")
			}
			switch cc := c.(type) {
			case ast.NumberComponent:
				fmt.Fprintf(b, "n%d", uint64(cc))
			case ast.ParamComponent:
				fmt.Fprintf(b, "p%d", cc.Index)
			}
		}
		b.WriteString(")")
	case *ast.WriteIO:
		b.WriteString("write(")
		encode(b, n.Src)
		b.WriteString(")")
	case *ast.ReadIO:
		b.WriteString("read()")
	default:
		fmt.Fprintf(b, "unknown(%T)", e)
	}
	b.WriteString(";")
}
