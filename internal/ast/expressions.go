package ast

import (
	"github.com/cwbudde/jerboa/internal/token"
)

// BinaryExpr is BIN_OP: ((BIN_OP op), lhs, rhs), left-nested for
// left-associativity (spec.md §3.3, §4.2).
type BinaryExpr struct {
	Tok   token.Token // the operator token
	Op    string
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) writeArgNode()        {}
func (b *BinaryExpr) TokenLiteral() string { return b.Tok.Text }
func (b *BinaryExpr) Pos() token.Position  { return b.Tok.Pos }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// UnaryExpr is UN_OP: ((UN_OP op), operand), right-nested.
type UnaryExpr struct {
	Tok     token.Token // the operator token
	Op      string
	Operand Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) writeArgNode()        {}
func (u *UnaryExpr) TokenLiteral() string { return u.Tok.Text }
func (u *UnaryExpr) Pos() token.Position  { return u.Tok.Pos }
func (u *UnaryExpr) String() string {
	return "(" + u.Op + u.Operand.String() + ")"
}

// NumberLit is NUMLIT_VAL: a decimal-integer literal, text preserved verbatim.
type NumberLit struct {
	Tok token.Token
}

func (n *NumberLit) expressionNode()      {}
func (n *NumberLit) writeArgNode()        {}
func (n *NumberLit) TokenLiteral() string { return n.Tok.Text }
func (n *NumberLit) Pos() token.Position  { return n.Tok.Pos }
func (n *NumberLit) String() string       { return n.Tok.Text }

// BoolLit is BOOLLIT_VAL: "true" or "false".
type BoolLit struct {
	Tok   token.Token
	Value bool
}

func (b *BoolLit) expressionNode()      {}
func (b *BoolLit) writeArgNode()        {}
func (b *BoolLit) TokenLiteral() string { return b.Tok.Text }
func (b *BoolLit) Pos() token.Position  { return b.Tok.Pos }
func (b *BoolLit) String() string       { return b.Tok.Text }

// ReadNumCall is READNUM_CALL: readnum().
type ReadNumCall struct {
	Tok token.Token // the "readnum" keyword
}

func (r *ReadNumCall) expressionNode()      {}
func (r *ReadNumCall) writeArgNode()        {}
func (r *ReadNumCall) TokenLiteral() string { return r.Tok.Text }
func (r *ReadNumCall) Pos() token.Position  { return r.Tok.Pos }
func (r *ReadNumCall) String() string       { return "readnum()" }

// SimpleVar is SIMPLE_VAR: a bare variable name used as an lvalue or rvalue.
type SimpleVar struct {
	Tok  token.Token // the identifier token
	Name string
}

func (s *SimpleVar) expressionNode()      {}
func (s *SimpleVar) writeArgNode()        {}
func (s *SimpleVar) lvalueNode()          {}
func (s *SimpleVar) TokenLiteral() string { return s.Tok.Text }
func (s *SimpleVar) Pos() token.Position  { return s.Tok.Pos }
func (s *SimpleVar) String() string       { return s.Name }

// ArrayVar is ARRAY_VAR: name[index_expr], used as an lvalue or rvalue.
type ArrayVar struct {
	Tok   token.Token // the identifier token
	Name  string
	Index Expression
}

func (a *ArrayVar) expressionNode()      {}
func (a *ArrayVar) writeArgNode()        {}
func (a *ArrayVar) lvalueNode()          {}
func (a *ArrayVar) TokenLiteral() string { return a.Tok.Text }
func (a *ArrayVar) Pos() token.Position  { return a.Tok.Pos }
func (a *ArrayVar) String() string       { return a.Name + "[" + a.Index.String() + "]" }
