package ast

// PrimitiveType, ArrayType and WildcardType are the remaining kindless
// auxiliary shapes (alongside Import and Modifiers). They occupy the same
// Expression-typed field slots as qualified-name reference types, the way
// the source grammar treats types as a restricted kind of expression in
// type position.
type PrimitiveType struct {
	Base
	Name string // "int", "boolean", "void", ...
}

func (n *PrimitiveType) Kind() Kind       { return KindNone }
func (n *PrimitiveType) Is(k Kind) bool   { return false }
func (n *PrimitiveType) Accept(v Visitor) { v.VisitPrimitiveType(n) }
func (n *PrimitiveType) isExpression()    {}

type ArrayType struct {
	Base
	ElementType Expression
}

func (n *ArrayType) Kind() Kind       { return KindNone }
func (n *ArrayType) Is(k Kind) bool   { return false }
func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }
func (n *ArrayType) isExpression()    {}

// WildcardType exists because spec.md's data model names it as one of the
// five kindless shapes; the builder never constructs one because type
// arguments are dropped in this pass (spec.md §9).
type WildcardType struct {
	Base
	Bound     Expression // opt
	HasExtend bool       // true: "? extends Bound"; false with Bound set: "? super Bound"
}

func (n *WildcardType) Kind() Kind       { return KindNone }
func (n *WildcardType) Is(k Kind) bool   { return false }
func (n *WildcardType) Accept(v Visitor) { v.VisitWildcardType(n) }
func (n *WildcardType) isExpression()    {}

// ApplyDim wraps e in k nested ArrayType nodes (spec.md §4.2.3's
// applyDim(e, k)).
func ApplyDim(e Expression, k int) Expression {
	for i := 0; i < k; i++ {
		e = &ArrayType{ElementType: e}
	}
	return e
}
