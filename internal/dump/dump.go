// Package dump renders a Jerboa interp.State into the canonical display
// forms spec.md §6 assigns to the driver: a nested mapping
// { v: {name:int,...}, a: {name:{idx:int,...},...}, f: {name:ast,...} }.
//
// JSON is built incrementally with github.com/tidwall/sjson and read back
// with github.com/tidwall/gjson, which backs the round-trip testable
// property of spec.md §8 ("Running interp twice ... converges to a
// fixed-point state"). YAML uses github.com/goccy/go-yaml for a
// human-readable --dump-state-format=yaml driver option.
package dump

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/jerboa/internal/ast"
	"github.com/cwbudde/jerboa/internal/interp"
)

// JSON renders state as the canonical nested-mapping JSON document.
// Function bodies dump as their ast.Node.String() rendering, since an AST
// has no canonical mapping form of its own.
func JSON(state *interp.State) (string, error) {
	doc := "{}"
	var err error

	for _, name := range sortedKeys(state.V) {
		doc, err = sjson.Set(doc, "v."+jsonPathKey(name), state.V[name])
		if err != nil {
			return "", fmt.Errorf("dump: encoding v.%s: %w", name, err)
		}
	}

	for _, name := range sortedArrayKeys(state.A) {
		// Array indices may be negative or sparse (spec.md §3.4 imposes no
		// range on them; see SPEC_FULL.md). sjson's dotted-path syntax treats
		// purely-numeric segments as array indices, which cannot express a
		// negative key, so the inner {index: value} object is built
		// directly instead of through a second layer of dotted Set calls.
		doc, err = sjson.SetRaw(doc, "a."+jsonPathKey(name), arrayInnerJSON(state.A[name]))
		if err != nil {
			return "", fmt.Errorf("dump: encoding a.%s: %w", name, err)
		}
	}

	for _, name := range sortedFuncKeys(state.F) {
		doc, err = sjson.Set(doc, "f."+jsonPathKey(name), PrintAST(state.F[name]))
		if err != nil {
			return "", fmt.Errorf("dump: encoding f.%s: %w", name, err)
		}
	}

	// Ensure the three top-level keys always exist even when a section is
	// empty, matching the canonical shape's "v:{}, a:{}, f:{}" promise.
	for _, section := range []string{"v", "a", "f"} {
		if !gjson.Get(doc, section).Exists() {
			doc, err = sjson.SetRaw(doc, section, "{}")
			if err != nil {
				return "", fmt.Errorf("dump: initializing %s: %w", section, err)
			}
		}
	}

	return doc, nil
}

// ReadVar reads a simple variable back out of a JSON dump produced by JSON,
// the read side of the §8 round-trip property.
func ReadVar(jsonDoc, name string) (int, bool) {
	res := gjson.Get(jsonDoc, "v."+jsonPathKey(name))
	if !res.Exists() {
		return 0, false
	}
	return int(res.Int()), true
}

// ReadArrayElem reads an array slot back out of a JSON dump.
func ReadArrayElem(jsonDoc, name string, index int) (int, bool) {
	res := gjson.Get(jsonDoc, fmt.Sprintf("a.%s.%d", jsonPathKey(name), index))
	if !res.Exists() {
		return 0, false
	}
	return int(res.Int()), true
}

// yamlDoc is the shape goccy/go-yaml marshals the state dump into; it
// mirrors the canonical JSON shape one-for-one.
type yamlDoc struct {
	V map[string]int            `yaml:"v"`
	A map[string]map[string]int `yaml:"a"`
	F map[string]string         `yaml:"f"`
}

// YAML renders state as the canonical nested-mapping form in YAML.
func YAML(state *interp.State) (string, error) {
	doc := yamlDoc{
		V: make(map[string]int, len(state.V)),
		A: make(map[string]map[string]int, len(state.A)),
		F: make(map[string]string, len(state.F)),
	}
	for name, value := range state.V {
		doc.V[name] = value
	}
	for name, arr := range state.A {
		inner := make(map[string]int, len(arr))
		for idx, value := range arr {
			inner[strconv.Itoa(idx)] = value
		}
		doc.A[name] = inner
	}
	for name, body := range state.F {
		doc.F[name] = PrintAST(body)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("dump: marshaling YAML: %w", err)
	}
	return string(out), nil
}

// PrintAST is the canonical printer spec.md §8's round-trip property
// ("parse(print_ast(ast)) is equivalent to ast") calls a driver
// responsibility: Node.String() already renders valid Jerboa source deep
// enough that re-lexing and re-parsing it reproduces an equivalent tree.
func PrintAST(node ast.Node) string {
	if node == nil {
		return ""
	}
	return node.String()
}

// arrayInnerJSON builds {"idx": value, ...} directly: integer keys never
// need escaping, so this avoids relying on sjson's numeric-path-segment
// array semantics for what must stay a plain object keyed by index.
func arrayInnerJSON(arr map[int]int) string {
	if len(arr) == 0 {
		return "{}"
	}
	var b []byte
	b = append(b, '{')
	for i, idx := range sortedIntKeys(arr) {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, '"')
		b = strconv.AppendInt(b, int64(idx), 10)
		b = append(b, '"', ':')
		b = strconv.AppendInt(b, int64(arr[idx]), 10)
	}
	b = append(b, '}')
	return string(b)
}

func jsonPathKey(name string) string {
	// sjson/gjson treat '.' and '*' specially in path segments; Jerboa
	// identifiers never contain either (internal/token.IsIdentChar), so no
	// escaping is needed, but gjson.Escape documents the precaution for
	// any caller that forgets that invariant.
	return gjson.Escape(name)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedArrayKeys(m map[string]map[int]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFuncKeys(m map[string]*ast.StmtList) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedIntKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
