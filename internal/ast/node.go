package ast

import "github.com/langcore/javacore/internal/position"

// Node is the common surface every AST variant exposes to checks:
// kind(), is(Kind), line(), accept(visitor). All accessors return the
// stored value verbatim; the AST is built once and never mutated.
type Node interface {
	Kind() Kind
	Is(k Kind) bool
	Line() int
	GetSpan() position.Span
	Accept(v Visitor)
}

// Declaration, Statement and Expression are marker interfaces used to type
// structural fields to the syntactic category the invariant in spec.md §3
// (i) requires for that slot. A reference type occupies the same field
// slots as other expressions (qualified names, array types, primitive
// types), matching the source grammar's treatment of types as a kind of
// expression in type position.
type Declaration interface {
	Node
	isDeclaration()
}

type Statement interface {
	Node
	isStatement()
}

type Expression interface {
	Node
	isExpression()
}

// Base is embedded by every concrete node to supply the Span and Line
// bookkeeping common to all of them, the way the teacher's ast.Node
// implementations each carry their own Span field. It is exported so the
// builder package, which constructs every node, can set it by name.
type Base struct {
	Span position.Span
}

func (b Base) GetSpan() position.Span { return b.Span }
func (b Base) Line() int              { return b.Span.Start.Line }
