package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
)

func TestEqualsHashCodeParity_FlagsEqualsWithoutHashCode(t *testing.T) {
	equalsMethod := &ast.MethodDecl{Name: "equals", Parameters: []*ast.VariableDecl{{Name: "o"}}}
	class := &ast.ClassDecl{DeclKind: ast.ClassKind, Name: "Point", Members: []ast.Declaration{equalsMethod}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{class}}

	issues := scan(t, cu, NewEqualsHashCodeParity())

	require.Len(t, issues, 1)
	assert.Equal(t, equalsHashCodeParityKey, issues[0].RuleKey)
	assert.Same(t, equalsMethod, issues[0].Node)
	assert.Contains(t, issues[0].Message, `"equals()"`)
	assert.Contains(t, issues[0].Message, `"hashCode()"`)
}

func TestEqualsHashCodeParity_FlagsHashCodeWithoutEquals(t *testing.T) {
	hashCodeMethod := &ast.MethodDecl{Name: "hashCode"}
	class := &ast.ClassDecl{DeclKind: ast.EnumKind, Name: "Suit", Members: []ast.Declaration{hashCodeMethod}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{class}}

	issues := scan(t, cu, NewEqualsHashCodeParity())

	require.Len(t, issues, 1)
	assert.Same(t, hashCodeMethod, issues[0].Node)
	assert.Contains(t, issues[0].Message, "enum")
}

func TestEqualsHashCodeParity_IgnoresClassWithBoth(t *testing.T) {
	class := &ast.ClassDecl{DeclKind: ast.ClassKind, Members: []ast.Declaration{
		&ast.MethodDecl{Name: "equals", Parameters: []*ast.VariableDecl{{Name: "o"}}},
		&ast.MethodDecl{Name: "hashCode"},
	}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{class}}

	issues := scan(t, cu, NewEqualsHashCodeParity())

	assert.Empty(t, issues)
}

func TestEqualsHashCodeParity_IgnoresAnnotationType(t *testing.T) {
	class := &ast.ClassDecl{DeclKind: ast.AnnotationTypeKind, Members: []ast.Declaration{
		&ast.MethodDecl{Name: "equals", Parameters: []*ast.VariableDecl{{Name: "o"}}},
	}}
	cu := &ast.CompilationUnit{Types: []ast.Declaration{class}}

	issues := scan(t, cu, NewEqualsHashCodeParity())

	assert.Empty(t, issues)
}
