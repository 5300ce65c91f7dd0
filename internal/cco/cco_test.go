package cco

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFromSources parses each src as its own document and builds a
// BuiltCore, failing the test immediately on any parse or build issue.
func buildFromSources(t *testing.T, srcs ...string) *BuiltCore {
	t.Helper()
	ds := NewDocumentStore()
	for i, src := range srcs {
		file, diags := hclsyntax.ParseConfig([]byte(src), "test.hcl", hcl.InitialPos)
		if diags.HasErrors() {
			t.Fatalf("source %d: parse error: %s", i, diags.Error())
		}
		body, ok := file.Body.(*hclsyntax.Body)
		if !ok {
			t.Fatalf("source %d: unexpected body type", i)
		}
		ds.Insert(body, nil)
	}
	core, errs := Build(ds)
	if errs != nil {
		t.Fatalf("build issues: %s", errs.Error())
	}
	return core
}

func evalExpr(t *testing.T, core *BuiltCore, src string) Value {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "expr.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("parsing expression %q: %s", src, diags.Error())
	}
	val, err := EvaluateInContext(core, expr)
	if err != nil {
		t.Fatalf("evaluating %q: %s", src, err)
	}
	return val
}

func TestBuildRootAttributeRejected(t *testing.T) {
	ds := NewDocumentStore()
	file, diags := hclsyntax.ParseConfig([]byte(`root_attr = 1`), "test.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("parse error: %s", diags.Error())
	}
	ds.Insert(file.Body.(*hclsyntax.Body), nil)

	_, errs := Build(ds)
	require.NotNil(t, errs, "expected ParseErrors, got none")
	require.Len(t, errs.Issues, 1)
	assert.Equal(t, RootAttribute, errs.Issues[0].Kind)
}

func TestBuildLabelCollisionAfterSanitization(t *testing.T) {
	ds := NewDocumentStore()
	file, diags := hclsyntax.ParseConfig([]byte(`
data one " " {}
data one "_" {}
`), "test.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("parse error: %s", diags.Error())
	}
	ds.Insert(file.Body.(*hclsyntax.Body), nil)

	_, errs := Build(ds)
	if errs == nil {
		t.Fatalf("expected ParseErrors, got none")
	}
	found := false
	for _, issue := range errs.Issues {
		if issue.Kind == DataBlockLabelCollision && issue.Existing == 0 && issue.New == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("got issues %+v, want DataBlockLabelCollision{existing:0,new:1}", errs.Issues)
	}
}

func TestDefaultAttributeInheritance(t *testing.T) {
	core := buildFromSources(t, `
type kind { version = 1 }
data kind one {}
data kind two { version = 2 }
`)

	if got := evalExpr(t, core, "kind.one.version"); got != IntValue(1) {
		t.Errorf("kind.one.version = %#v, want IntValue(1)", got)
	}
	if got := evalExpr(t, core, "kind.two.version"); got != IntValue(2) {
		t.Errorf("kind.two.version = %#v, want IntValue(2)", got)
	}

	got := evalExpr(t, core, "kind")
	obj, ok := got.(ObjectValue)
	if !ok {
		t.Fatalf("kind = %#v, want ObjectValue", got)
	}
	if diff := objectKeys(obj); !equalStrings(diff, []string{"one", "two"}) {
		t.Errorf("kind keys = %v, want [one two] in that order", diff)
	}
	one, _ := obj.Get("one")
	oneObj, ok := one.(ObjectValue)
	if !ok {
		t.Fatalf("kind.one = %#v, want ObjectValue", one)
	}
	v, _ := oneObj.Get("version")
	if v != IntValue(1) {
		t.Errorf("kind.one.version via rollup = %#v, want IntValue(1)", v)
	}
}

func TestCrossReferenceViaPath(t *testing.T) {
	core := buildFromSources(t, `
data x a { v = 1 }
data x b { v = x.a.v }
`)

	if got := evalExpr(t, core, "x.b.v"); got != IntValue(1) {
		t.Errorf("x.b.v = %#v, want IntValue(1)", got)
	}
}

func TestCycleDetection(t *testing.T) {
	core := buildFromSources(t, `
data x a { v = x.b.v }
data x b { v = x.a.v }
`)

	expr, diags := hclsyntax.ParseExpression([]byte("x.a.v"), "expr.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("parse error: %s", diags.Error())
	}
	_, err := EvaluateInContext(core, expr)
	require.Error(t, err)
	var evalErr *EvalError
	require.True(t, errors.As(err, &evalErr), "got error %v, want an *EvalError", err)
	assert.Equal(t, EvalErrorCycle, evalErr.Kind)
}

func TestSelfExpansion(t *testing.T) {
	core := buildFromSources(t, `
type svc { name = self[1] }
data svc api {}
`)

	if got := evalExpr(t, core, "svc.api.name"); got != StringValue("api") {
		t.Errorf("svc.api.name = %#v, want StringValue(\"api\")", got)
	}
}

func TestUnknownAttributeOnKnownPathFails(t *testing.T) {
	core := buildFromSources(t, `data x a { v = 1 }`)

	expr, diags := hclsyntax.ParseExpression([]byte("x.a.typo"), "expr.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("parse error: %s", diags.Error())
	}
	_, err := EvaluateInContext(core, expr)
	if err == nil {
		t.Fatalf("expected an error for an unresolvable path")
	}
}

func TestVirtualRollupSkipsValuelessWaypoint(t *testing.T) {
	core := buildFromSources(t, `
data x a b { v = 1 }
`)

	if got := evalExpr(t, core, "x.a.b.v"); got != IntValue(1) {
		t.Errorf("x.a.b.v = %#v, want IntValue(1)", got)
	}

	got := evalExpr(t, core, "x")
	obj, ok := got.(ObjectValue)
	if !ok {
		t.Fatalf("x = %#v, want ObjectValue", got)
	}
	// "a" is a path-tree waypoint only (no "data x a {...}" block of its
	// own), so the virtual rollup for "x" must omit it rather than panic.
	if diff := cmp.Diff([]string{}, obj.Keys); diff != "" {
		t.Errorf("x keys mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockRollupOrderMatchesSourceOrder(t *testing.T) {
	core := buildFromSources(t, `
data x charlie { v = 1 }
data x alpha { v = 2 }
data x bravo { v = 3 }
`)

	got := evalExpr(t, core, "x")
	want := ObjectValue{
		Keys: []string{"charlie", "alpha", "bravo"},
		Fields: map[string]Value{
			"charlie": ObjectValue{Keys: []string{"v"}, Fields: map[string]Value{"v": IntValue(1)}},
			"alpha":   ObjectValue{Keys: []string{"v"}, Fields: map[string]Value{"v": IntValue(2)}},
			"bravo":   ObjectValue{Keys: []string{"v"}, Fields: map[string]Value{"v": IntValue(3)}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("x rollup mismatch (-want +got):\n%s", diff)
	}
}

func objectKeys(o ObjectValue) []string { return o.Keys }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
