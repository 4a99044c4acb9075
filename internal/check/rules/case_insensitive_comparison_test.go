package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
)

func callStmt(call *ast.MethodInvocation) ast.Statement {
	return &ast.ExpressionStatement{Expr: call}
}

func wrapInMethod(stmt ast.Statement) *ast.CompilationUnit {
	return &ast.CompilationUnit{Types: []ast.Declaration{&ast.ClassDecl{
		DeclKind: ast.ClassKind,
		Members:  []ast.Declaration{&ast.MethodDecl{Body: &ast.Block{Statements: []ast.Statement{stmt}}}},
	}}}
}

func TestCaseInsensitiveComparison_FlagsToUpperCaseThenEquals(t *testing.T) {
	toUpper := &ast.MethodInvocation{MethodSelect: &ast.MemberSelect{Expr: &ast.Identifier{Name: "x"}, Identifier: "toUpperCase"}}
	call := &ast.MethodInvocation{
		MethodSelect: &ast.MemberSelect{Expr: toUpper, Identifier: "equals"},
		Arguments:    []ast.Expression{&ast.Identifier{Name: "y"}},
	}

	issues := scan(t, wrapInMethod(callStmt(call)), NewCaseInsensitiveComparison())

	require.Len(t, issues, 1)
	assert.Equal(t, caseInsensitiveComparisonKey, issues[0].RuleKey)
	assert.Same(t, call, issues[0].Node)
}

func TestCaseInsensitiveComparison_FlagsEqualsAgainstToLowerCaseArgument(t *testing.T) {
	toLower := &ast.MethodInvocation{MethodSelect: &ast.MemberSelect{Expr: &ast.Identifier{Name: "y"}, Identifier: "toLowerCase"}}
	call := &ast.MethodInvocation{
		MethodSelect: &ast.MemberSelect{Expr: &ast.Identifier{Name: "x"}, Identifier: "equals"},
		Arguments:    []ast.Expression{toLower},
	}

	issues := scan(t, wrapInMethod(callStmt(call)), NewCaseInsensitiveComparison())

	require.Len(t, issues, 1)
	assert.Same(t, call, issues[0].Node)
}

func TestCaseInsensitiveComparison_IgnoresPlainEquals(t *testing.T) {
	call := &ast.MethodInvocation{
		MethodSelect: &ast.MemberSelect{Expr: &ast.Identifier{Name: "x"}, Identifier: "equals"},
		Arguments:    []ast.Expression{&ast.Identifier{Name: "y"}},
	}

	issues := scan(t, wrapInMethod(callStmt(call)), NewCaseInsensitiveComparison())

	assert.Empty(t, issues)
}
