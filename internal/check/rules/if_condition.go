package rules

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/check"
)

const ifConditionAlwaysTrueOrFalseKey = "S1145"

// IfConditionAlwaysTrueOrFalse flags an if statement whose condition is a
// parenthesized boolean literal: `if (true) ...` / `if (false) ...` always
// takes or skips its then-branch, so the statement can be removed.
type IfConditionAlwaysTrueOrFalse struct {
	*ast.BaseVisitor
	ctx *check.Context
}

// NewIfConditionAlwaysTrueOrFalse returns a ready-to-use check instance.
func NewIfConditionAlwaysTrueOrFalse() *IfConditionAlwaysTrueOrFalse {
	r := &IfConditionAlwaysTrueOrFalse{}
	r.BaseVisitor = ast.NewBaseVisitor(r)
	return r
}

func (r *IfConditionAlwaysTrueOrFalse) RuleKey() string { return ifConditionAlwaysTrueOrFalseKey }

func (r *IfConditionAlwaysTrueOrFalse) ScanFile(ctx *check.Context) {
	r.ctx = ctx
	ctx.GetTree().Accept(r)
}

func (r *IfConditionAlwaysTrueOrFalse) VisitIfStatement(n *ast.IfStatement) {
	if paren, ok := n.Condition.(*ast.Parenthesized); ok {
		if lit, ok := paren.Expr.(*ast.Literal); ok && lit.Is(ast.BooleanLiteralKind) {
			r.ctx.AddIssue(n, ifConditionAlwaysTrueOrFalseKey, "Remove this if statement.")
		}
	}
	r.BaseVisitor.VisitIfStatement(n)
}
