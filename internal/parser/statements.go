package parser

import (
	"github.com/cwbudde/jerboa/internal/ast"
	"github.com/cwbudde/jerboa/internal/token"
)

// parseWriteStmt: "write" "(" write_arg { "," write_arg } ")"
func (p *Parser) parseWriteStmt() (ast.Statement, bool) {
	tok := p.cur
	p.advance() // consume "write"

	if !p.curText("(") {
		return nil, false
	}
	p.advance() // consume "("

	stmt := &ast.WriteStmt{Tok: tok}

	arg, ok := p.parseWriteArg()
	if !ok {
		return nil, false
	}
	stmt.Args = append(stmt.Args, arg)

	for p.curText(",") {
		p.advance() // consume ","
		arg, ok := p.parseWriteArg()
		if !ok {
			return nil, false
		}
		stmt.Args = append(stmt.Args, arg)
	}

	if !p.curText(")") {
		return nil, false
	}
	p.advance() // consume ")"

	return stmt, true
}

// parseWriteArg: "cr" | STRLIT | expr
func (p *Parser) parseWriteArg() (ast.WriteArg, bool) {
	switch {
	case p.curKeyword("cr"):
		out := &ast.CrOut{Tok: p.cur}
		p.advance()
		return out, true
	case p.curIs(token.STRING_LITERAL):
		out := &ast.StrLitOut{Tok: p.cur}
		p.advance()
		return out, true
	default:
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		arg, ok := expr.(ast.WriteArg)
		if !ok {
			return nil, false
		}
		return arg, true
	}
}

// parseFuncDef: "def" ID "(" ")" stmt_list "end"
func (p *Parser) parseFuncDef() (ast.Statement, bool) {
	tok := p.cur
	p.advance() // consume "def"

	if !p.curIs(token.IDENT) {
		return nil, false
	}
	name := p.cur.Text
	p.advance() // consume identifier

	if !p.curText("(") {
		return nil, false
	}
	p.advance() // consume "("
	if !p.curText(")") {
		return nil, false
	}
	p.advance() // consume ")"

	body, ok := p.parseStmtList()
	if !ok {
		return nil, false
	}

	if !p.curKeyword("end") {
		return nil, false
	}
	p.advance() // consume "end"

	return &ast.FuncDef{Tok: tok, Name: name, Body: body}, true
}

// parseIfStmt: "if" expr stmt_list { "elseif" expr stmt_list } [ "else" stmt_list ] "end"
func (p *Parser) parseIfStmt() (ast.Statement, bool) {
	tok := p.cur
	p.advance() // consume "if"

	stmt := &ast.IfStmt{Tok: tok}

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseStmtList()
	if !ok {
		return nil, false
	}
	stmt.Conds = append(stmt.Conds, cond)
	stmt.Bodies = append(stmt.Bodies, body)

	for p.curKeyword("elseif") {
		p.advance() // consume "elseif"
		cond, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		body, ok := p.parseStmtList()
		if !ok {
			return nil, false
		}
		stmt.Conds = append(stmt.Conds, cond)
		stmt.Bodies = append(stmt.Bodies, body)
	}

	if p.curKeyword("else") {
		p.advance() // consume "else"
		elseBody, ok := p.parseStmtList()
		if !ok {
			return nil, false
		}
		stmt.Else = elseBody
	}

	if !p.curKeyword("end") {
		return nil, false
	}
	p.advance() // consume "end"

	return stmt, true
}

// parseWhileStmt: "while" expr stmt_list "end"
func (p *Parser) parseWhileStmt() (ast.Statement, bool) {
	tok := p.cur
	p.advance() // consume "while"

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseStmtList()
	if !ok {
		return nil, false
	}
	if !p.curKeyword("end") {
		return nil, false
	}
	p.advance() // consume "end"

	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}, true
}

// parseReturnStmt: "return" expr
func (p *Parser) parseReturnStmt() (ast.Statement, bool) {
	tok := p.cur
	p.advance() // consume "return"

	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.ReturnStmt{Tok: tok, Value: value}, true
}

// parseIdentStatement: ID ( "(" ")" | [ "[" expr "]" ] "=" expr )
func (p *Parser) parseIdentStatement() (ast.Statement, bool) {
	nameTok := p.cur
	name := p.cur.Text
	p.advance() // consume identifier

	if p.curText("(") {
		p.advance() // consume "("
		if !p.curText(")") {
			return nil, false
		}
		p.advance() // consume ")"
		return &ast.FuncCall{Tok: nameTok, Name: name}, true
	}

	var target ast.LValue = &ast.SimpleVar{Tok: nameTok, Name: name}

	if p.curIs(token.OPERATOR) && p.cur.Text == "[" {
		p.advance() // consume "["
		index, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if !(p.curIs(token.OPERATOR) && p.cur.Text == "]") {
			return nil, false
		}
		p.advance() // consume "]"
		target = &ast.ArrayVar{Tok: nameTok, Name: name, Index: index}
	}

	if !p.curText("=") {
		return nil, false
	}
	assignTok := p.cur
	p.advance() // consume "="

	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	return &ast.AssignStmt{Tok: assignTok, Target: target, Value: value}, true
}
