package parser

import (
	"testing"

	"github.com/conneroisu/murmur/internal/ast"
)

func parseOne(t *testing.T, src string) ast.Expr {
	t.Helper()
	exprs, err := New(src).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	if len(exprs) != 1 {
		t.Fatalf("Parse(%q) returned %d expressions, want 1", src, len(exprs))
	}
	return exprs[0]
}

func testVectorLiteral(t *testing.T, e ast.Expr, want ...uint64) {
	t.Helper()
	v, ok := e.(*ast.Vector)
	if !ok {
		t.Fatalf("expected *ast.Vector, got %T", e)
	}
	if len(v.Components) != len(want) {
		t.Fatalf("got %d components, want %d", len(v.Components), len(want))
	}
	for i, c := range v.Components {
		n, ok := c.(ast.NumberComponent)
		if !ok {
			t.Fatalf("component %d: got %T, want NumberComponent", i, c)
		}
		if uint64(n) != want[i] {
			t.Fatalf("component %d: got %d, want %d", i, uint64(n), want[i])
		}
	}
}

func TestNumberEncoding(t *testing.T) {
	cases := []struct {
		src  string
		want uint64
	}{
		{".", 1}, {":", 2}, {".:", 3}, {"::", 4},
		{".::", 5}, {":::", 6}, {".:::", 7},
		{".::::", 9}, {"::::::", 12}, {".:::::::", 15},
	}
	for _, c := range cases {
		e := parseOne(t, c.src)
		testVectorLiteral(t, e, c.want)
	}
}

func TestWhitespaceInsensitivity(t *testing.T) {
	a := parseOne(t, ". + .")
	b := parseOne(t, ".+.")
	if a.String() != b.String() {
		t.Fatalf("whitespace changed the parse tree: %q vs %q", a.String(), b.String())
	}
}

func TestScopeTerminationByParen(t *testing.T) {
	e := parseOne(t, "{. )")
	s, ok := e.(*ast.Scope)
	if !ok {
		t.Fatalf("expected *ast.Scope, got %T", e)
	}
	testVectorLiteral(t, s.Child, 1)
}

func TestScopeTerminationByNewline(t *testing.T) {
	exprs, err := New("{.\n").Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(exprs))
	}
	s, ok := exprs[0].(*ast.Scope)
	if !ok {
		t.Fatalf("expected *ast.Scope, got %T", exprs[0])
	}
	testVectorLiteral(t, s.Child, 1)
}

func TestScopeTerminationByEOF(t *testing.T) {
	e := parseOne(t, "{.")
	s, ok := e.(*ast.Scope)
	if !ok {
		t.Fatalf("expected *ast.Scope, got %T", e)
	}
	testVectorLiteral(t, s.Child, 1)
}

func TestTextLiteralScanner(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"/simple", "simple"},
		{"//", "/"},
		{"/ / ", "  "},
		{"/ey// ey", "ey/ ey"},
		{"/Hello,/ World!", "Hello, World!"},
	}
	for _, c := range cases {
		e := parseOne(t, c.src)
		text, ok := e.(*ast.Text)
		if !ok {
			t.Fatalf("%q: expected *ast.Text, got %T", c.src, e)
		}
		if text.Value != c.want {
			t.Fatalf("%q: got %q, want %q", c.src, text.Value, c.want)
		}
	}
}

func TestEmptyTextLiteralRejected(t *testing.T) {
	if _, err := New("/").Parse(); err == nil {
		t.Fatalf("expected error for empty text literal")
	}
}

func TestPhraseRotationRejectsEarlyReuse(t *testing.T) {
	src := "given that . . given that . ."
	if _, err := New(src).Parse(); err == nil {
		t.Fatalf("expected error reusing a conditional-opener before rotation completed")
	}
}

func TestPhraseRotationAllowsReuseAfterFullCycle(t *testing.T) {
	var src string
	for _, phrase := range IFS {
		src += phrase + " {.) . "
	}
	src += IFS[0] + " {.) ."
	if _, err := New(src).Parse(); err != nil {
		t.Fatalf("unexpected error after a full rotation cycle: %v", err)
	}
}

func TestParamReference(t *testing.T) {
	e := parseOne(t, `\.`)
	p, ok := e.(*ast.Param)
	if !ok {
		t.Fatalf("expected *ast.Param, got %T", e)
	}
	if p.Index != 1 {
		t.Fatalf("got index %d, want 1", p.Index)
	}
}

func TestAllParamsReference(t *testing.T) {
	e := parseOne(t, `\\`)
	p, ok := e.(*ast.Param)
	if !ok {
		t.Fatalf("expected *ast.Param, got %T", e)
	}
	if p.Index != 0 {
		t.Fatalf("got index %d, want 0", p.Index)
	}
}

func TestFunctionDefinition(t *testing.T) {
	e := parseOne(t, `ö ¤ \. + \:`)
	d, ok := e.(*ast.Definition)
	if !ok {
		t.Fatalf("expected *ast.Definition, got %T", e)
	}
	if d.Name != "ö" {
		t.Fatalf("got name %q, want %q", d.Name, "ö")
	}
	if _, ok := d.Body.(*ast.Op); !ok {
		t.Fatalf("expected body *ast.Op, got %T", d.Body)
	}
}

func TestFunctionCallWithArguments(t *testing.T) {
	e := parseOne(t, "ö . .:")
	c, ok := e.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", e)
	}
	if c.Name != "ö" {
		t.Fatalf("got name %q, want %q", c.Name, "ö")
	}
	if len(c.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(c.Args))
	}
}

func TestEndToEndProgram(t *testing.T) {
	src := `ö ¤ {\. + \:) * \. + .:::
given that :::::::::::: = {ö . .:) @ << /true otherwise @ << /false`
	exprs, err := New(src).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("got %d top-level expressions, want 2", len(exprs))
	}
	if _, ok := exprs[0].(*ast.Definition); !ok {
		t.Fatalf("expected first expression to be a *ast.Definition, got %T", exprs[0])
	}
	if _, ok := exprs[1].(*ast.Conditional); !ok {
		t.Fatalf("expected second expression to be a *ast.Conditional, got %T", exprs[1])
	}
}
