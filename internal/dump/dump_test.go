package dump

import (
	"strings"
	"testing"

	"github.com/cwbudde/jerboa/internal/interp"
)

func TestJSONRoundTripsSimpleVars(t *testing.T) {
	state := interp.NewState()
	state.SetVar("x", 42)
	state.SetVar("y", -7)

	doc, err := JSON(state)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if v, ok := ReadVar(doc, "x"); !ok || v != 42 {
		t.Fatalf("ReadVar(x) = %d, %t, want 42, true", v, ok)
	}
	if v, ok := ReadVar(doc, "y"); !ok || v != -7 {
		t.Fatalf("ReadVar(y) = %d, %t, want -7, true", v, ok)
	}
	if _, ok := ReadVar(doc, "z"); ok {
		t.Fatalf("ReadVar(z) should not exist")
	}
}

func TestJSONRoundTripsNegativeAndSparseArrayIndices(t *testing.T) {
	state := interp.NewState()
	state.SetArrayElem("a", -1, 100)
	state.SetArrayElem("a", 0, 200)
	state.SetArrayElem("a", 1000, 300)

	doc, err := JSON(state)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	for idx, want := range map[int]int{-1: 100, 0: 200, 1000: 300} {
		got, ok := ReadArrayElem(doc, "a", idx)
		if !ok || got != want {
			t.Fatalf("ReadArrayElem(a, %d) = %d, %t, want %d, true", idx, got, ok, want)
		}
	}
	if _, ok := ReadArrayElem(doc, "a", 5); ok {
		t.Fatalf("ReadArrayElem(a, 5) should not exist")
	}
}

func TestJSONAlwaysHasTopLevelSections(t *testing.T) {
	state := interp.NewState()
	doc, err := JSON(state)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	for _, section := range []string{`"v":{}`, `"a":{}`, `"f":{}`} {
		if !strings.Contains(doc, section) {
			t.Fatalf("doc missing %s: %s", section, doc)
		}
	}
}

func TestYAMLRendersAllSections(t *testing.T) {
	state := interp.NewState()
	state.SetVar("x", 1)
	state.SetArrayElem("a", 2, 9)

	out, err := YAML(state)
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	for _, want := range []string{"v:", "a:", "f:", "x: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("YAML output missing %q: %s", want, out)
		}
	}
}

func TestPrintASTNilIsEmpty(t *testing.T) {
	if got := PrintAST(nil); got != "" {
		t.Fatalf("PrintAST(nil) = %q, want empty", got)
	}
}
