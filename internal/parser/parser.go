// Package parser implements the Jerboa predictive recursive-descent parser
// (spec.md §4.2): one token of lookahead, no backtracking, no error
// recovery. Any grammar mismatch fails the whole parse immediately.
package parser

import (
	"github.com/cwbudde/jerboa/internal/ast"
	"github.com/cwbudde/jerboa/internal/lexer"
	"github.com/cwbudde/jerboa/internal/token"
)

// Parser walks a token stream one token of lookahead at a time.
type Parser struct {
	l *lexer.Lexer

	cur    token.Token
	curOK  bool
	peek   token.Token
	peekOK bool
}

// New creates a Parser over source, primed with the first two tokens.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur, p.curOK = p.peek, p.peekOK
	p.peek, p.peekOK = p.l.NextToken()
}

func (p *Parser) atEnd() bool { return !p.curOK }

func (p *Parser) curIs(tt token.Type) bool  { return p.curOK && p.cur.Type == tt }
func (p *Parser) curText(s string) bool     { return p.curOK && p.cur.Text == s }
func (p *Parser) curKeyword(kw string) bool { return p.curOK && p.cur.IsKeyword(kw) }

// Parse implements the core's single entry point: parse(source) -> (ok,
// done, ast), per spec.md §4.2.
func Parse(source string) (ok bool, done bool, program *ast.StmtList) {
	p := New(source)
	list, success := p.parseStmtList()
	if !success {
		return false, p.atEnd(), nil
	}
	return true, p.atEnd(), list
}

// parseStmtList implements stmt_list ::= { statement }. It stops collecting
// (successfully) the moment the current token cannot start a statement
// (spec.md "stmt_list termination"): anything other than write/def/if/
// while/return/Identifier, including keyword end/else/elseif or EOF.
func (p *Parser) parseStmtList() (*ast.StmtList, bool) {
	startTok := p.cur
	list := &ast.StmtList{Tok: startTok}

	for p.startsStatement() {
		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		list.Statements = append(list.Statements, stmt)
	}
	return list, true
}

func (p *Parser) startsStatement() bool {
	if p.atEnd() {
		return false
	}
	if p.curIs(token.IDENT) {
		return true
	}
	if !p.curIs(token.KEYWORD) {
		return false
	}
	switch p.cur.Text {
	case "write", "def", "if", "while", "return":
		return true
	default:
		return false
	}
}

// parseStatement implements the `statement` production.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch {
	case p.curKeyword("write"):
		return p.parseWriteStmt()
	case p.curKeyword("def"):
		return p.parseFuncDef()
	case p.curKeyword("if"):
		return p.parseIfStmt()
	case p.curKeyword("while"):
		return p.parseWhileStmt()
	case p.curKeyword("return"):
		return p.parseReturnStmt()
	case p.curIs(token.IDENT):
		return p.parseIdentStatement()
	default:
		return nil, false
	}
}
