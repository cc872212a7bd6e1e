package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stevemarin/golox/lang/token"
)

// Printer prints a readable representation of an AST to Output, one node per
// line prefixed with its source line, children indented under their parent.
// If Depths is set (the resolver's side table), resolved variable references
// are annotated with their scope depth.
type Printer struct {
	Output io.Writer
	Depths map[Expr]int
}

// Print writes the representation of the program statements.
func (p *Printer) Print(stmts []Stmt) error {
	pr := &printer{w: p.Output, depths: p.Depths}
	for _, s := range stmts {
		Walk(pr, s)
		if pr.err != nil {
			return pr.err
		}
	}
	return nil
}

type printer struct {
	w      io.Writer
	depths map[Expr]int
	indent int
	err    error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.indent--
		return nil
	}
	if p.err != nil {
		return nil
	}
	_, p.err = fmt.Fprintf(p.w, "%3d: %s%s\n", n.Line(),
		strings.Repeat("  ", p.indent), p.label(n))
	if p.err != nil {
		return nil
	}
	p.indent++
	return p
}

func (p *printer) label(n Node) string {
	switch n := n.(type) {
	case *LiteralExpr:
		if n.Tok.Type == token.STRING {
			return "literal " + strconv.Quote(n.Tok.Str)
		}
		return "literal " + n.Value.String()
	case *VariableExpr:
		return "variable " + n.Name.Lexeme + p.depth(n)
	case *AssignExpr:
		return "assign " + n.Name.Lexeme + p.depth(n)
	case *UnaryExpr:
		return "unary " + n.Op.Lexeme
	case *BinaryExpr:
		return "binary " + n.Op.Lexeme
	case *LogicalExpr:
		return "logical " + n.Op.Lexeme
	case *GroupingExpr:
		return "group"
	case *CallExpr:
		return fmt.Sprintf("call {args=%d}", len(n.Args))
	case *GetExpr:
		return "get " + n.Name.Lexeme
	case *SetExpr:
		return "set " + n.Name.Lexeme
	case *ThisExpr:
		return "this" + p.depth(n)
	case *SuperExpr:
		return "super." + n.Method.Lexeme + p.depth(n)

	case *ExprStmt:
		return "expression"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "var " + n.Name.Lexeme
	case *BlockStmt:
		return fmt.Sprintf("block {stmts=%d}", len(n.Stmts))
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *BreakStmt:
		return "break"
	case *FunctionStmt:
		return fmt.Sprintf("fun %s {params=%d}", n.Name.Lexeme, len(n.Params))
	case *ReturnStmt:
		return "return"
	case *ClassStmt:
		if n.Superclass != nil {
			return "class " + n.Name.Lexeme + " < " + n.Superclass.Name.Lexeme
		}
		return "class " + n.Name.Lexeme
	default:
		return fmt.Sprintf("%T", n)
	}
}

func (p *printer) depth(e Expr) string {
	if p.depths == nil {
		return ""
	}
	if d, ok := p.depths[e]; ok {
		return fmt.Sprintf(" [depth=%d]", d)
	}
	return " [global]"
}
