package interp

import (
	"fmt"

	"github.com/cwbudde/jerboa/internal/ast"
	"github.com/cwbudde/jerboa/internal/lexer"
)

// execStmtList executes STMT_LIST: children in order.
func (ip *Interpreter) execStmtList(list *ast.StmtList, state *State) {
	for _, stmt := range list.Statements {
		ip.execStmt(stmt, state)
	}
}

// execStmt dispatches a single statement by concrete AST type.
func (ip *Interpreter) execStmt(stmt ast.Statement, state *State) {
	ip.tracef("exec %T at %v", stmt, stmt.Pos())

	switch s := stmt.(type) {
	case *ast.WriteStmt:
		ip.execWriteStmt(s, state)
	case *ast.FuncDef:
		state.DefineFunc(s.Name, s.Body)
	case *ast.FuncCall:
		ip.execFuncCall(s, state)
	case *ast.IfStmt:
		ip.execIfStmt(s, state)
	case *ast.WhileStmt:
		ip.execWhileStmt(s, state)
	case *ast.ReturnStmt:
		ip.execReturnStmt(s, state)
	case *ast.AssignStmt:
		ip.execAssignStmt(s, state)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// execWriteStmt implements WRITE_STMT: each argument is emitted in order.
func (ip *Interpreter) execWriteStmt(s *ast.WriteStmt, state *State) {
	for _, arg := range s.Args {
		switch a := arg.(type) {
		case *ast.CrOut:
			ip.Output("\n")
		case *ast.StrLitOut:
			ip.Output(lexer.TrimText(a.Tok.Text))
		default:
			expr, ok := arg.(ast.Expression)
			if !ok {
				panic("interp: write argument is neither CrOut, StrLitOut, nor Expression")
			}
			value := ip.evalExpr(expr, state)
			ip.Output(FormatInt(value))
		}
	}
}

// execFuncCall implements FUNC_CALL as a statement: look up the body; if
// absent, treat the call as a no-op empty STMT_LIST (spec.md §4.3.2).
func (ip *Interpreter) execFuncCall(s *ast.FuncCall, state *State) {
	ip.callFunc(s.Name, state)
}

// callFunc executes the named function's body (or nothing, if undefined),
// returning whatever value its first RETURN_STMT carried, or 0.
// Functions take no parameters and share the caller's global State
// (spec.md §4.3.2: "no private scope").
func (ip *Interpreter) callFunc(name string, state *State) (result int) {
	body := state.LookupFunc(name)
	if body == nil {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			result = sig.value
		}
	}()

	ip.execStmtList(body, state)
	return 0
}

// execIfStmt implements IF_STMT: evaluate conditions in order, execute the
// first body whose condition is nonzero and stop; otherwise run Else if set.
func (ip *Interpreter) execIfStmt(s *ast.IfStmt, state *State) {
	for i, cond := range s.Conds {
		if ip.evalExpr(cond, state) != 0 {
			ip.execStmtList(s.Bodies[i], state)
			return
		}
	}
	if s.Else != nil {
		ip.execStmtList(s.Else, state)
	}
}

// execWhileStmt implements WHILE_STMT: re-evaluate and re-execute while
// the condition is nonzero.
func (ip *Interpreter) execWhileStmt(s *ast.WhileStmt, state *State) {
	for ip.evalExpr(s.Cond, state) != 0 {
		ip.execStmtList(s.Body, state)
	}
}

// execReturnStmt implements RETURN_STMT: evaluate the expression, discard
// its Go-level meaning as a statement, and unwind via the typed non-local
// exit of spec.md §9 to the enclosing function call (or Run, at the top
// level).
func (ip *Interpreter) execReturnStmt(s *ast.ReturnStmt, state *State) {
	value := ip.evalExpr(s.Value, state)
	panic(returnSignal{value: value})
}

// execAssignStmt implements ASSN_STMT for both lvalue shapes.
func (ip *Interpreter) execAssignStmt(s *ast.AssignStmt, state *State) {
	value := ip.evalExpr(s.Value, state)
	switch target := s.Target.(type) {
	case *ast.SimpleVar:
		state.SetVar(target.Name, value)
	case *ast.ArrayVar:
		index := ip.evalExpr(target.Index, state)
		state.SetArrayElem(target.Name, index, value)
	default:
		panic("interp: unhandled lvalue type")
	}
}
