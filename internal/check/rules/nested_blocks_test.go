package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
)

func TestNestedBlocks_FlagsBlockNestedInBlock(t *testing.T) {
	inner := &ast.Block{BlockKind: ast.BlockKind}
	outer := &ast.Block{BlockKind: ast.BlockKind, Statements: []ast.Statement{inner, &ast.EmptyStatement{}}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{&ast.ClassDecl{
		DeclKind: ast.ClassKind,
		Members:  []ast.Declaration{&ast.MethodDecl{Body: outer}},
	}}}

	issues := scan(t, cu, NewNestedBlocks())

	require.Len(t, issues, 1)
	assert.Equal(t, nestedBlocksKey, issues[0].RuleKey)
	assert.Same(t, inner, issues[0].Node)
}

func TestNestedBlocks_FlagsBlockNestedInCaseGroup(t *testing.T) {
	inner := &ast.Block{BlockKind: ast.BlockKind}
	group := &ast.CaseGroup{
		Labels: []*ast.CaseLabel{{}},
		Body:   []ast.Statement{inner},
	}
	sw := &ast.SwitchStatement{Cases: []*ast.CaseGroup{group}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{&ast.ClassDecl{
		DeclKind: ast.ClassKind,
		Members:  []ast.Declaration{&ast.MethodDecl{Body: &ast.Block{Statements: []ast.Statement{sw}}}},
	}}}

	issues := scan(t, cu, NewNestedBlocks())

	require.Len(t, issues, 1)
	assert.Same(t, inner, issues[0].Node)
}

func TestNestedBlocks_IgnoresNonBlockStatements(t *testing.T) {
	outer := &ast.Block{BlockKind: ast.BlockKind, Statements: []ast.Statement{&ast.EmptyStatement{}}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{&ast.ClassDecl{
		DeclKind: ast.ClassKind,
		Members:  []ast.Declaration{&ast.MethodDecl{Body: outer}},
	}}}

	issues := scan(t, cu, NewNestedBlocks())

	assert.Empty(t, issues)
}
