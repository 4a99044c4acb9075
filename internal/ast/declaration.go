package ast

// CompilationUnit is the root of a built AST: one per source file.
type CompilationUnit struct {
	Base
	PackageName Expression // opt: qualified name expression
	Imports     []*Import
	Types       []Declaration
}

func (n *CompilationUnit) Kind() Kind       { return CompilationUnitKind }
func (n *CompilationUnit) Is(k Kind) bool   { return k == CompilationUnitKind }
func (n *CompilationUnit) Accept(v Visitor) { v.VisitCompilationUnit(n) }
func (n *CompilationUnit) isDeclaration()   {}

// Import is a kindless auxiliary shape: it never matches is(Kind).
type Import struct {
	Base
	IsStatic            bool
	QualifiedIdentifier Expression
}

func (n *Import) Kind() Kind       { return KindNone }
func (n *Import) Is(k Kind) bool   { return false }
func (n *Import) Accept(v Visitor) { v.VisitImport(n) }

// Modifiers is a kindless auxiliary shape shared by every declaration.
type Modifiers struct {
	Base
	Flags []Modifier
}

func (n *Modifiers) Kind() Kind       { return KindNone }
func (n *Modifiers) Is(k Kind) bool   { return false }
func (n *Modifiers) Accept(v Visitor) { v.VisitModifiers(n) }

func (n *Modifiers) Has(m Modifier) bool {
	for _, f := range n.Flags {
		if f == m {
			return true
		}
	}
	return false
}

// EmptyModifiers is the zero-value modifier set given to nodes whose
// modifiers the builder does not lower (enum constants, formal parameters,
// catch parameters, resources) and to declarations with no MODIFIERS child.
func EmptyModifiers() *Modifiers { return &Modifiers{} }

// ClassDecl covers CLASS, INTERFACE, ENUM and ANNOTATION_TYPE: the four
// type-declaration variants share one structural shape, distinguished by
// DeclKind, exactly as spec.md's table groups them into one row.
type ClassDecl struct {
	Base
	DeclKind        Kind
	Modifiers       *Modifiers
	Name            string
	SuperClass      Expression // opt
	SuperInterfaces []Expression
	Members         []Declaration
}

func (n *ClassDecl) Kind() Kind       { return n.DeclKind }
func (n *ClassDecl) Is(k Kind) bool   { return n.DeclKind == k }
func (n *ClassDecl) Accept(v Visitor) { v.VisitClass(n) }
func (n *ClassDecl) isDeclaration()   {}

// MethodDecl covers METHOD. ReturnType is nil iff the declaration is a
// constructor; Body is nil iff the method is abstract or an interface
// method without a default body.
type MethodDecl struct {
	Base
	Modifiers    *Modifiers
	ReturnType   Expression // opt: nil => constructor
	Name         string
	Parameters   []*VariableDecl
	Body         *Block // opt
	Throws       []Expression
	DefaultValue Expression // opt: annotation elements only, always nil in this pass
}

func (n *MethodDecl) Kind() Kind       { return MethodKind }
func (n *MethodDecl) Is(k Kind) bool   { return k == MethodKind }
func (n *MethodDecl) Accept(v Visitor) { v.VisitMethod(n) }
func (n *MethodDecl) isDeclaration()   {}

// IsConstructor reports whether this declaration lowered from a
// constructor declarator (no declared return type).
func (n *MethodDecl) IsConstructor() bool { return n.ReturnType == nil }

// VariableDecl covers both VARIABLE and its specialisation ENUM_CONSTANT:
// an enum constant's Initializer is always a *NewClass wrapping the
// constant's arguments and optional inline class body.
type VariableDecl struct {
	Base
	DeclKind    Kind // VariableKind or EnumConstantKind
	Modifiers   *Modifiers
	Type        Expression
	Name        string
	Initializer Expression // opt
}

func (n *VariableDecl) Kind() Kind       { return n.DeclKind }
func (n *VariableDecl) Is(k Kind) bool   { return n.DeclKind == k }
func (n *VariableDecl) Accept(v Visitor) { v.VisitVariable(n) }
func (n *VariableDecl) isDeclaration()   {}
func (n *VariableDecl) isStatement()     {} // a local variable declarator doubles as a block statement
