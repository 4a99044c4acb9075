package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingVisitor records, in visit order, the kind of every identifier,
// literal, binary expression and if statement it is asked to visit, so a
// test can check which of those nodes a traversal reaches, how often, and
// in what order.
type countingVisitor struct {
	*BaseVisitor
	order []Kind
}

func newCountingVisitor() *countingVisitor {
	cv := &countingVisitor{order: nil}
	cv.BaseVisitor = NewBaseVisitor(cv)
	return cv
}

func (c *countingVisitor) VisitIdentifier(n *Identifier) {
	c.order = append(c.order, n.Kind())
	c.BaseVisitor.VisitIdentifier(n)
}

func (c *countingVisitor) VisitLiteral(n *Literal) {
	c.order = append(c.order, n.Kind())
	c.BaseVisitor.VisitLiteral(n)
}

func (c *countingVisitor) VisitBinaryExpression(n *BinaryExpression) {
	c.order = append(c.order, n.Kind())
	c.BaseVisitor.VisitBinaryExpression(n)
}

func (c *countingVisitor) VisitIfStatement(n *IfStatement) {
	c.order = append(c.order, n.Kind())
	c.BaseVisitor.VisitIfStatement(n)
}

func TestKindFidelity(t *testing.T) {
	lit := &Literal{LitKind: IntLiteralKind, Value: "1"}

	for k := KindNone; k <= UnsignedRightShiftAssignmentKind; k++ {
		want := k == IntLiteralKind
		assert.Equalf(t, want, lit.Is(k), "Is(%s)", k)
	}
	assert.True(t, lit.Is(lit.Kind()))
}

func TestKindlessNodesNeverMatch(t *testing.T) {
	pt := &PrimitiveType{Name: "int"}
	assert.Equal(t, KindNone, pt.Kind())
	for k := CompilationUnitKind; k <= UnsignedRightShiftAssignmentKind; k++ {
		assert.False(t, pt.Is(k))
	}
}

func TestBaseVisitorStructuralTotality(t *testing.T) {
	// if ((true)) {} else ; -- scenario 4 from spec.md §8.
	cond := &Parenthesized{Expr: &Literal{LitKind: BooleanLiteralKind, Value: "true"}}
	ifs := &IfStatement{
		Condition: cond,
		Then:      &Block{BlockKind: BlockKind},
		Else:      &EmptyStatement{},
	}

	cv := newCountingVisitor()
	ifs.Accept(cv)

	require.Equal(t, []Kind{IfStatementKind, BooleanLiteralKind}, cv.order)
}

func TestImmutableAcrossTraversals(t *testing.T) {
	method := &MethodDecl{
		Name:       "m",
		ReturnType: &PrimitiveType{Name: "void"},
		Body:       &Block{BlockKind: BlockKind},
	}

	cv1 := newCountingVisitor()
	method.Accept(cv1)
	cv2 := newCountingVisitor()
	method.Accept(cv2)

	assert.Equal(t, cv1.order, cv2.order)
	assert.True(t, method.IsConstructor() == false)
}

func TestMethodIsConstructorIffNoReturnType(t *testing.T) {
	ctor := &MethodDecl{Name: "A"}
	assert.True(t, ctor.IsConstructor())

	m := &MethodDecl{Name: "f", ReturnType: &PrimitiveType{Name: "int"}}
	assert.False(t, m.IsConstructor())
}
