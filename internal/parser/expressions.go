package parser

import (
	"github.com/cwbudde/jerboa/internal/ast"
	"github.com/cwbudde/jerboa/internal/token"
)

// parseExpr: comp_expr { ("&&" | "||") comp_expr }
func (p *Parser) parseExpr() (ast.Expression, bool) {
	left, ok := p.parseCompExpr()
	if !ok {
		return nil, false
	}
	for p.curIs(token.OPERATOR) && (p.cur.Text == "&&" || p.cur.Text == "||") {
		opTok := p.cur
		p.advance()
		right, ok := p.parseCompExpr()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Tok: opTok, Op: opTok.Text, Left: left, Right: right}
	}
	return left, true
}

// parseCompExpr: "!" comp_expr | arith_expr { (cmp op) arith_expr }
func (p *Parser) parseCompExpr() (ast.Expression, bool) {
	if p.curIs(token.OPERATOR) && p.cur.Text == "!" {
		opTok := p.cur
		p.advance()
		operand, ok := p.parseCompExpr()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Tok: opTok, Op: "!", Operand: operand}, true
	}

	left, ok := p.parseArithExpr()
	if !ok {
		return nil, false
	}
	for p.curIs(token.OPERATOR) && isComparisonOp(p.cur.Text) {
		opTok := p.cur
		p.advance()
		right, ok := p.parseArithExpr()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Tok: opTok, Op: opTok.Text, Left: left, Right: right}
	}
	return left, true
}

func isComparisonOp(text string) bool {
	switch text {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	default:
		return false
	}
}

// parseArithExpr: term { ("+" | "-") term }
func (p *Parser) parseArithExpr() (ast.Expression, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	for p.curIs(token.OPERATOR) && (p.cur.Text == "+" || p.cur.Text == "-") {
		opTok := p.cur
		p.advance()
		right, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Tok: opTok, Op: opTok.Text, Left: left, Right: right}
	}
	return left, true
}

// parseTerm: factor { ("*" | "/" | "%") factor }
func (p *Parser) parseTerm() (ast.Expression, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for p.curIs(token.OPERATOR) && (p.cur.Text == "*" || p.cur.Text == "/" || p.cur.Text == "%") {
		opTok := p.cur
		p.advance()
		right, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Tok: opTok, Op: opTok.Text, Left: left, Right: right}
	}
	return left, true
}

// parseFactor implements:
//
//	factor ::= "(" expr ")"
//	         | ("+" | "-") factor
//	         | NUMLIT
//	         | ("true" | "false")
//	         | "readnum" "(" ")"
//	         | ID [ "(" ")" | "[" expr "]" ]
//
// A factor reduced to a single sub-production yields that sub-production's
// AST directly: no wrapper node (spec.md §4.2).
func (p *Parser) parseFactor() (ast.Expression, bool) {
	switch {
	case p.atEnd():
		return nil, false

	case p.curText("("):
		p.advance() // consume "("
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if !p.curText(")") {
			return nil, false
		}
		p.advance() // consume ")"
		return expr, true

	case p.curIs(token.OPERATOR) && (p.cur.Text == "+" || p.cur.Text == "-"):
		opTok := p.cur
		p.advance()
		operand, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Tok: opTok, Op: opTok.Text, Operand: operand}, true

	case p.curIs(token.NUMERIC_LITERAL):
		lit := &ast.NumberLit{Tok: p.cur}
		p.advance()
		return lit, true

	case p.curKeyword("true") || p.curKeyword("false"):
		lit := &ast.BoolLit{Tok: p.cur, Value: p.cur.Text == "true"}
		p.advance()
		return lit, true

	case p.curKeyword("readnum"):
		tok := p.cur
		p.advance() // consume "readnum"
		if !p.curText("(") {
			return nil, false
		}
		p.advance() // consume "("
		if !p.curText(")") {
			return nil, false
		}
		p.advance() // consume ")"
		return &ast.ReadNumCall{Tok: tok}, true

	case p.curIs(token.IDENT):
		return p.parseIdentFactor()

	default:
		return nil, false
	}
}

func (p *Parser) parseIdentFactor() (ast.Expression, bool) {
	nameTok := p.cur
	name := p.cur.Text
	p.advance() // consume identifier

	switch {
	case p.curText("("):
		p.advance() // consume "("
		if !p.curText(")") {
			return nil, false
		}
		p.advance() // consume ")"
		return &ast.FuncCall{Tok: nameTok, Name: name}, true

	case p.curIs(token.OPERATOR) && p.cur.Text == "[":
		p.advance() // consume "["
		index, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if !(p.curIs(token.OPERATOR) && p.cur.Text == "]") {
			return nil, false
		}
		p.advance() // consume "]"
		return &ast.ArrayVar{Tok: nameTok, Name: name, Index: index}, true

	default:
		return &ast.SimpleVar{Tok: nameTok, Name: name}, true
	}
}
