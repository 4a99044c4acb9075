// Package builder implements the tree builder of spec.md §4.2: a pure,
// deterministic, single-pass function lowering a concrete-syntax tree
// (package cst) into a typed AST (package ast). It is one-directional,
// cst.Node -> *ast.CompilationUnit, unlike the teacher's astbridge
// package, which round-trips between two typed trees of its own
// language; this module's only input tree is the external, generic one.
//
// Grounded throughout on org.sonar.java.model.JavaTreeMaker, the original
// implementation this specification was distilled from.
package builder

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/kindmap"
	"github.com/langcore/javacore/internal/langerr"
	"github.com/langcore/javacore/internal/position"
)

// Build lowers a concrete COMPILATION_UNIT node into an AST
// CompilationUnit. This is the sole external entry point named in
// spec.md §6 item 1 (buildCompilationUnit).
func Build(root cst.Node) (*ast.CompilationUnit, error) {
	return buildCompilationUnit(root)
}

// spanOf derives a minimal position.Span from a concrete node's line.
// The concrete tree does not hand us column/byte-offset information
// through the Node interface of spec.md §2 item 1 (only a type tag,
// token text, and 1-based line), so Start and End coincide at column 1
// of that line; provenance beyond the line is not a claim this module
// makes.
func spanOf(n cst.Node) position.Span {
	pos := position.Position{Line: n.Line(), Column: 1}
	return position.Span{Start: pos, End: pos}
}

func identifier(n cst.Node) (*ast.Identifier, error) {
	if n == nil || !n.Is(cst.TagIdentifier) {
		return nil, langerr.MalformedAst(cst.TagIdentifier)
	}
	return &ast.Identifier{Base: baseOf(n), Name: n.TokenValue()}, nil
}

func baseOf(n cst.Node) ast.Base {
	return ast.Base{Span: spanOf(n)}
}

// qualifiedIdentifier lowers a dot-chained QUALIFIED_IDENTIFIER into a
// left-leaning MemberSelect chain over Identifier leaves, per the
// glossary's definition.
func qualifiedIdentifier(n cst.Node) (ast.Expression, error) {
	if n == nil || !n.Is(cst.TagQualifiedIdentifier) {
		return nil, langerr.MalformedAst(cst.TagQualifiedIdentifier)
	}
	ids := n.ChildrenByTag(cst.TagIdentifier)
	if len(ids) == 0 {
		return nil, langerr.MalformedAst(cst.TagQualifiedIdentifier)
	}
	first, err := identifier(ids[0])
	if err != nil {
		return nil, err
	}
	var result ast.Expression = first
	for _, idNode := range ids[1:] {
		id, err := identifier(idNode)
		if err != nil {
			return nil, err
		}
		result = &ast.MemberSelect{Base: baseOf(idNode), Expr: result, Identifier: id.Name}
	}
	return result, nil
}

func qualifiedIdentifierList(n cst.Node) ([]ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	var out []ast.Expression
	for _, q := range n.ChildrenByTag(cst.TagQualifiedIdentifier) {
		e, err := qualifiedIdentifier(q)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func literal(n cst.Node) (*ast.Literal, error) {
	k, err := kindmap.LiteralKind(n.Type())
	if err != nil {
		return nil, err
	}
	return &ast.Literal{Base: baseOf(n), LitKind: k, Value: n.TokenValue()}, nil
}

// modifiers lowers every keyword child of a declaration's MODIFIERS nodes
// into a closed Modifiers set. Annotation modifiers are skipped: annotations on
// declarations are not part of this pass's AST (spec.md §9 silently
// preserves none of the source's TODOs; annotation-bearing modifiers are
// not one of them, but the grammar-level ANNOTATION child tag is outside
// this module's closed Tag domain by construction, so it is simply never
// produced by an external parser targeting this builder).
func modifiers(nodes []cst.Node) (*ast.Modifiers, error) {
	if len(nodes) == 0 {
		return ast.EmptyModifiers(), nil
	}
	m := &ast.Modifiers{Base: baseOf(nodes[0])}
	for _, mn := range nodes {
		for _, child := range mn.Children() {
			flag, err := kindmap.ModifierKind(child.Type())
			if err != nil {
				continue // non-access-modifier production (e.g. annotation); not lowered in this pass
			}
			m.Flags = append(m.Flags, flag)
		}
	}
	return m, nil
}
