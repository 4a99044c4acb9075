package builder

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/langerr"
)

// buildType lowers a TYPE node: a BASIC_TYPE or CLASS_TYPE base, optionally
// followed by trailing DIM children for array types, applying applyDim
// (spec.md §4.2.3) over the base.
func buildType(n cst.Node) (ast.Expression, error) {
	if n == nil || !n.Is(cst.TagType) {
		return nil, langerr.MalformedAst(cst.TagType)
	}
	base := n.FirstChild(cst.TagBasicType, cst.TagClassType)
	if base == nil {
		return nil, langerr.MalformedAst(cst.TagType)
	}
	var baseExpr ast.Expression
	var err error
	if base.Is(cst.TagBasicType) {
		baseExpr = buildBasicType(base)
	} else {
		baseExpr, err = buildClassType(base)
		if err != nil {
			return nil, err
		}
	}
	dims := len(n.ChildrenByTag(cst.TagDim))
	return ast.ApplyDim(baseExpr, dims), nil
}

func buildBasicType(n cst.Node) *ast.PrimitiveType {
	return &ast.PrimitiveType{Base: baseOf(n), Name: n.TokenValue()}
}

// buildClassType lowers only the first identifier of a dot-separated class
// type, dropping every further segment and any type argument list: spec.md
// §9 leaves type-argument-aware class-type lowering an open question,
// resolved (DESIGN.md) by keeping the declared type's first name segment
// only.
func buildClassType(n cst.Node) (ast.Expression, error) {
	if n == nil || !n.Is(cst.TagClassType) {
		return nil, langerr.MalformedAst(cst.TagClassType)
	}
	ids := n.ChildrenByTag(cst.TagIdentifier)
	if len(ids) == 0 {
		return nil, langerr.MalformedAst(cst.TagClassType)
	}
	return identifier(ids[0])
}

// buildReferenceTypeList lowers a CLASS_TYPE_LIST (extends/implements
// clauses) into its member class types.
func buildReferenceTypeList(n cst.Node) ([]ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	var out []ast.Expression
	for _, c := range n.ChildrenByTag(cst.TagClassType) {
		t, err := buildClassType(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
