package rules

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/check"
)

const caseInsensitiveComparisonKey = "S1157"

// CaseInsensitiveComparison flags `x.toUpperCase().equals(y)` and
// `x.equals(y.toLowerCase())` shaped calls, which should collapse to a
// single equalsIgnoreCase() call.
type CaseInsensitiveComparison struct {
	*ast.BaseVisitor
	ctx *check.Context
}

// NewCaseInsensitiveComparison returns a ready-to-use check instance.
func NewCaseInsensitiveComparison() *CaseInsensitiveComparison {
	r := &CaseInsensitiveComparison{}
	r.BaseVisitor = ast.NewBaseVisitor(r)
	return r
}

func (r *CaseInsensitiveComparison) RuleKey() string { return caseInsensitiveComparisonKey }

func (r *CaseInsensitiveComparison) ScanFile(ctx *check.Context) {
	r.ctx = ctx
	ctx.GetTree().Accept(r)
}

func (r *CaseInsensitiveComparison) VisitMethodInvocation(n *ast.MethodInvocation) {
	if ms, ok := n.MethodSelect.(*ast.MemberSelect); ok && ms.Identifier == "equals" {
		issue := isToUpperOrLowerCase(ms.Expr) ||
			(len(n.Arguments) == 1 && isToUpperOrLowerCase(n.Arguments[0]))
		if issue {
			r.ctx.AddIssue(n, caseInsensitiveComparisonKey,
				"Replace these toUpperCase()/toLowerCase() and equals() calls with a single equalsIgnoreCase() call.")
		}
	}
	r.BaseVisitor.VisitMethodInvocation(n)
}

func isToUpperOrLowerCase(e ast.Expression) bool {
	mi, ok := e.(*ast.MethodInvocation)
	if !ok {
		return false
	}
	ms, ok := mi.MethodSelect.(*ast.MemberSelect)
	if !ok {
		return false
	}
	return ms.Identifier == "toUpperCase" || ms.Identifier == "toLowerCase"
}
