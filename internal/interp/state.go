// Package interp implements the Jerboa tree-walking evaluator (spec.md
// §4.3): it executes an *ast.StmtList against a mutable State, invoking
// caller-supplied I/O callbacks, and never throws at the language level.
package interp

import (
	"github.com/cwbudde/jerboa/internal/ast"
)

// State is the three-part environment of spec.md §3.4: simple variables,
// array variables, and function definitions, all keyed by name in disjoint
// roles (a name may legally occupy more than one — there is no shadowing
// rule). State is owned by the caller; Run mutates it in place.
type State struct {
	V map[string]int           // simple variables
	A map[string]map[int]int   // array variables
	F map[string]*ast.StmtList // function bodies
}

// NewState returns an empty State ready for Run.
func NewState() *State {
	return &State{
		V: make(map[string]int),
		A: make(map[string]map[int]int),
		F: make(map[string]*ast.StmtList),
	}
}

// GetVar reads a simple variable, defaulting to 0 when never assigned
// (spec.md §4.3.3, the "Default-zero" testable property).
func (s *State) GetVar(name string) int {
	return s.V[name]
}

// SetVar assigns a simple variable.
func (s *State) SetVar(name string, value int) {
	s.V[name] = value
}

// GetArrayElem reads an array slot, defaulting to 0 when the array or the
// index is never assigned.
func (s *State) GetArrayElem(name string, index int) int {
	arr, ok := s.A[name]
	if !ok {
		return 0
	}
	return arr[index]
}

// SetArrayElem assigns an array slot, creating the array if it does not
// exist yet (spec.md §4.3.2, ASSN_STMT on an ARRAY_VAR lvalue).
func (s *State) SetArrayElem(name string, index, value int) {
	arr, ok := s.A[name]
	if !ok {
		arr = make(map[int]int)
		s.A[name] = arr
	}
	arr[index] = value
}

// LookupFunc returns the body bound to name, or nil if undefined.
func (s *State) LookupFunc(name string) *ast.StmtList {
	return s.F[name]
}

// DefineFunc binds name to body, overwriting any previous binding
// (spec.md §4.3.2, FUNC_DEF).
func (s *State) DefineFunc(name string, body *ast.StmtList) {
	s.F[name] = body
}
