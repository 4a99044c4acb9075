package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeNavigation(t *testing.T) {
	id := NewToken(TagIdentifier, 3, "x")
	lit := NewToken(TagLiteralInt, 3, "1")
	root := NewNode(TagBlock, 3, id, lit)

	require.Equal(t, TagBlock, root.Type())
	require.Equal(t, 2, len(root.Children()))
	assert.Same(t, id, root.FirstChild(TagIdentifier))
	assert.Nil(t, root.FirstChild(TagLiteralString))
	assert.Same(t, root, id.Parent())
	assert.Nil(t, id.PreviousSibling())
	assert.Same(t, lit, id.NextSibling())
	assert.Same(t, id, lit.PreviousSibling())
	assert.Nil(t, lit.NextSibling())
	assert.True(t, id.Is(TagIdentifier, TagLiteralInt))
	assert.False(t, id.Is(TagLiteralInt))
	assert.True(t, root.HasDirectChildren(TagLiteralInt))
	assert.False(t, root.HasDirectChildren(TagLiteralString))
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "CLASS_DECLARATION", TagClassDeclaration.String())
	assert.Contains(t, Tag(99999).String(), "UNKNOWN_TAG")
}
