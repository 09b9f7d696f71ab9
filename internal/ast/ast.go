// Package ast defines the Jerboa abstract syntax tree: a closed set of
// tagged node shapes (spec.md §3.3), expressed as Go interfaces and
// concrete structs rather than literal tagged tuples — see spec.md §9,
// "Tagged tree vs. class hierarchy".
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/jerboa/internal/token"
)

// Node is the common interface of every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node starts at.
	TokenLiteral() string
	// String renders the node back to Jerboa-like source text, for
	// debugging and as the basis of the canonical printer in internal/dump.
	String() string
	// Pos returns the node's source position for diagnostics.
	Pos() token.Position
}

// Statement is a node executed for effect; it produces no value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a runtime value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// StmtList is an ordered sequence of statements: a program or a block body
// (STMT_LIST in spec.md §3.3).
type StmtList struct {
	Tok        token.Token
	Statements []Statement
}

func (s *StmtList) statementNode()       {}
func (s *StmtList) TokenLiteral() string { return s.Tok.Text }
func (s *StmtList) Pos() token.Position  { return s.Tok.Pos }
func (s *StmtList) String() string {
	var out bytes.Buffer
	for _, stmt := range s.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

// joinStrings renders a slice of Nodes separated by sep, for String().
func joinStrings[T Node](nodes []T, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}
