package rules

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/check"
)

const equalsHashCodeParityKey = "S1206"

// EqualsHashCodeParity flags a class, interface or enum that overrides
// exactly one of equals(Object)/hashCode(): the two contracts must be kept
// in sync or collections built on them misbehave.
type EqualsHashCodeParity struct {
	*ast.BaseVisitor
	ctx *check.Context
}

// NewEqualsHashCodeParity returns a ready-to-use check instance.
func NewEqualsHashCodeParity() *EqualsHashCodeParity {
	r := &EqualsHashCodeParity{}
	r.BaseVisitor = ast.NewBaseVisitor(r)
	return r
}

func (r *EqualsHashCodeParity) RuleKey() string { return equalsHashCodeParityKey }

func (r *EqualsHashCodeParity) ScanFile(ctx *check.Context) {
	r.ctx = ctx
	ctx.GetTree().Accept(r)
}

func (r *EqualsHashCodeParity) VisitClass(n *ast.ClassDecl) {
	r.BaseVisitor.VisitClass(n)

	if !n.Is(ast.ClassKind) && !n.Is(ast.InterfaceKind) && !n.Is(ast.EnumKind) {
		return
	}

	var equalsMethod, hashCodeMethod *ast.MethodDecl
	for _, member := range n.Members {
		method, ok := member.(*ast.MethodDecl)
		if !ok {
			continue
		}
		switch {
		case method.Name == "equals" && len(method.Parameters) == 1:
			equalsMethod = method
		case method.Name == "hashCode" && len(method.Parameters) == 0:
			hashCodeMethod = method
		}
	}

	switch {
	case equalsMethod != nil && hashCodeMethod == nil:
		r.ctx.AddIssue(equalsMethod, equalsHashCodeParityKey, parityMessage(n, "equals", "hashCode"))
	case hashCodeMethod != nil && equalsMethod == nil:
		r.ctx.AddIssue(hashCodeMethod, equalsHashCodeParityKey, parityMessage(n, "hashCode", "equals"))
	}
}

func parityMessage(n *ast.ClassDecl, overridden, missing string) string {
	return `This ` + classWord(n) + ` overrides "` + overridden + `()" and should therefore also override "` + missing + `()".`
}

func classWord(n *ast.ClassDecl) string {
	switch {
	case n.Is(ast.InterfaceKind):
		return "interface"
	case n.Is(ast.EnumKind):
		return "enum"
	default:
		return "class"
	}
}
