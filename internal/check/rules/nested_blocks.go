package rules

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/check"
)

const nestedBlocksKey = "S1199"

// NestedBlocks flags a `{ }` block nested directly as a statement inside
// another block or case group: such a block is almost always better
// extracted into its own method.
type NestedBlocks struct {
	*ast.BaseVisitor
	ctx *check.Context
}

// NewNestedBlocks returns a ready-to-use check instance.
func NewNestedBlocks() *NestedBlocks {
	r := &NestedBlocks{}
	r.BaseVisitor = ast.NewBaseVisitor(r)
	return r
}

func (r *NestedBlocks) RuleKey() string { return nestedBlocksKey }

func (r *NestedBlocks) ScanFile(ctx *check.Context) {
	r.ctx = ctx
	ctx.GetTree().Accept(r)
}

func (r *NestedBlocks) VisitBlock(n *ast.Block) {
	r.checkStatements(n.Statements)
	r.BaseVisitor.VisitBlock(n)
}

func (r *NestedBlocks) VisitCaseGroup(n *ast.CaseGroup) {
	r.checkStatements(n.Body)
	r.BaseVisitor.VisitCaseGroup(n)
}

func (r *NestedBlocks) checkStatements(statements []ast.Statement) {
	for _, s := range statements {
		if s.Is(ast.BlockKind) {
			r.ctx.AddIssue(s, nestedBlocksKey, "Extract this nested code block into a method.")
		}
	}
}
