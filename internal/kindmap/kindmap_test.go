package kindmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
)

func TestOperatorKindCorrespondence(t *testing.T) {
	seen := map[ast.Kind]cst.Tag{}
	for tag := range binaryKinds {
		k, err := BinaryKind(tag)
		require.NoError(t, err)
		if other, dup := seen[k]; dup {
			t.Fatalf("binary Kind %s produced by both %s and %s", k, other, tag)
		}
		seen[k] = tag
	}
}

func TestBinaryKindUnknownOperator(t *testing.T) {
	_, err := BinaryKind(cst.TagPunctPlusPlus)
	require.Error(t, err)
}

func TestPrefixVsPostfixDisjoint(t *testing.T) {
	_, err := PrefixKind(cst.TagPunctBang)
	require.NoError(t, err)
	_, err = PostfixKind(cst.TagPunctBang)
	require.Error(t, err)

	_, err = PostfixKind(cst.TagPunctPlusPlus)
	require.NoError(t, err)
}

func TestLiteralKindCoversSevenCases(t *testing.T) {
	cases := map[cst.Tag]ast.Kind{
		cst.TagLiteralInt:     ast.IntLiteralKind,
		cst.TagLiteralLong:    ast.LongLiteralKind,
		cst.TagLiteralFloat:   ast.FloatLiteralKind,
		cst.TagLiteralDouble:  ast.DoubleLiteralKind,
		cst.TagLiteralBoolean: ast.BooleanLiteralKind,
		cst.TagLiteralChar:    ast.CharLiteralKind,
		cst.TagLiteralString:  ast.StringLiteralKind,
		cst.TagLiteralNull:    ast.NullLiteralKind,
	}
	for tag, want := range cases {
		got, err := LiteralKind(tag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := LiteralKind(cst.TagIdentifier)
	require.Error(t, err)
}

func TestModifierKindNineKeywords(t *testing.T) {
	assert.Len(t, modifierKinds, 9)
	m, err := ModifierKind(cst.TagKeywordTransient)
	require.NoError(t, err)
	assert.Equal(t, ast.ModifierTransient, m)

	_, err = ModifierKind(cst.TagKeywordVoid)
	require.Error(t, err)
}

func TestAssignmentKindTwelveForms(t *testing.T) {
	assert.Len(t, assignmentKinds, 12)
}
