package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
)

// wrapPrimary wraps n as the sole base child of a PRIMARY node, the shape
// buildExpression expects for a primary-producing base.
func wrapPrimary(n cst.Node) cst.Node { return cst.NewNode(cst.TagPrimary, n.Line(), n) }

func TestBuildCompilationUnit_PackageImportClass(t *testing.T) {
	pkgName := cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "demo"))
	importName := cst.NewNode(cst.TagQualifiedIdentifier, 2,
		cst.NewToken(cst.TagIdentifier, 2, "java"), cst.NewToken(cst.TagIdentifier, 2, "util"))
	importDecl := cst.NewNode(cst.TagImportDeclaration, 2, importName)

	fieldModifiers := cst.NewNode(cst.TagModifiers, 4, cst.NewToken(cst.TagKeywordPublic, 4, "public"))
	fieldType := cst.NewNode(cst.TagType, 4, cst.NewToken(cst.TagBasicType, 4, "int"))
	fieldId := cst.NewNode(cst.TagVariableDeclaratorId, 4, cst.NewToken(cst.TagIdentifier, 4, "count"))
	declarator := cst.NewNode(cst.TagVariableDeclarator, 4, fieldId)
	declarators := cst.NewNode(cst.TagVariableDeclarators, 4, declarator)
	field := cst.NewNode(cst.TagFieldDeclaration, 4, fieldModifiers, fieldType, declarators)

	classBody := cst.NewNode(cst.TagClassBody, 3, field)
	classModifiers := cst.NewNode(cst.TagModifiers, 3, cst.NewToken(cst.TagKeywordPublic, 3, "public"))
	classId := cst.NewToken(cst.TagIdentifier, 3, "Widget")
	classDecl := cst.NewNode(cst.TagClassDeclaration, 3, classModifiers, classId, classBody)

	root := cst.NewNode(cst.TagCompilationUnit, 1, pkgName, importDecl, classDecl)

	cu, err := Build(root)
	require.NoError(t, err)
	require.NotNil(t, cu.PackageName)
	require.Len(t, cu.Imports, 1)
	assert.False(t, cu.Imports[0].IsStatic)
	require.Len(t, cu.Types, 1)

	class, ok := cu.Types[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Widget", class.Name)
	assert.True(t, class.Is(ast.ClassKind))
	require.Len(t, class.Members, 1)

	v, ok := class.Members[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "count", v.Name)
	assert.True(t, v.Modifiers.Has(ast.ModifierPublic))
}

func TestBuildIfStatement_NestedLiteralCondition(t *testing.T) {
	inner := cst.NewNode(cst.TagLiteral, 1, cst.NewToken(cst.TagLiteralBoolean, 1, "true"))
	cond := cst.NewNode(cst.TagParExpression, 1, wrapPrimary(inner))
	thenBlock := cst.NewNode(cst.TagBlock, 1)
	elseStmt := cst.NewNode(cst.TagEmptyStatement, 1)
	ifNode := cst.NewNode(cst.TagIfStatement, 1, wrapPrimary(cond), thenBlock, elseStmt)

	stmt, err := buildStatement(ifNode)
	require.NoError(t, err)
	ifs, ok := stmt.(*ast.IfStatement)
	require.True(t, ok)
	assert.True(t, ifs.Is(ast.IfStatementKind))

	paren, ok := ifs.Condition.(*ast.Parenthesized)
	require.True(t, ok)
	lit, ok := paren.Expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "true", lit.Value)
	assert.True(t, lit.Is(ast.BooleanLiteralKind))

	_, ok = ifs.Then.(*ast.Block)
	require.True(t, ok)
	_, ok = ifs.Else.(*ast.EmptyStatement)
	require.True(t, ok)
}

func TestBuildSwitchStatement_GroupsTrailingDefault(t *testing.T) {
	exprId := cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "x"))
	switchExpr := wrapPrimary(exprId)

	oneLit := cst.NewNode(cst.TagLiteral, 2, cst.NewToken(cst.TagLiteralInt, 2, "1"))
	label1 := cst.NewNode(cst.TagSwitchLabel, 2, wrapPrimary(oneLit))
	breakStmt := cst.NewNode(cst.TagBreakStatement, 2)

	twoLit := cst.NewNode(cst.TagLiteral, 3, cst.NewToken(cst.TagLiteralInt, 3, "2"))
	label2 := cst.NewNode(cst.TagSwitchLabel, 3, wrapPrimary(twoLit))
	defaultLabel := cst.NewNode(cst.TagSwitchLabel, 4)

	groups := cst.NewNode(cst.TagSwitchBlockStatementGroups, 1, label1, breakStmt, label2, defaultLabel)
	switchNode := cst.NewNode(cst.TagSwitchStatement, 1, switchExpr, groups)

	stmt, err := buildStatement(switchNode)
	require.NoError(t, err)
	sw, ok := stmt.(*ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)

	first := sw.Cases[0]
	require.Len(t, first.Labels, 1)
	require.NotNil(t, first.Labels[0].Expr)
	require.Len(t, first.Body, 1)
	_, ok = first.Body[0].(*ast.BreakStatement)
	assert.True(t, ok)

	second := sw.Cases[1]
	require.Len(t, second.Labels, 2)
	assert.Empty(t, second.Body)
	assert.Nil(t, second.Labels[1].Expr)
}

func TestBuildTryStatement_ResourcesCatchFinally(t *testing.T) {
	resType := cst.NewNode(cst.TagType, 1, cst.NewNode(cst.TagClassType, 1, cst.NewToken(cst.TagIdentifier, 1, "Closer")))
	resInit := wrapPrimary(cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "c")))
	resource := cst.NewNode(cst.TagResource, 1, resType, cst.NewToken(cst.TagIdentifier, 1, "r"), resInit)
	resSpec := cst.NewNode(cst.TagResourceSpecification, 1, resource)

	tryBlock := cst.NewNode(cst.TagBlock, 1)

	catchType := cst.NewNode(cst.TagCatchType, 2, cst.NewNode(cst.TagClassType, 2, cst.NewToken(cst.TagIdentifier, 2, "Exception")))
	catchParam := cst.NewNode(cst.TagCatchFormalParameter, 2, catchType, cst.NewToken(cst.TagIdentifier, 2, "e"))
	catchBlock := cst.NewNode(cst.TagBlock, 2)
	catchClause := cst.NewNode(cst.TagCatchClause, 2, catchParam, catchBlock)

	finallyBlock := cst.NewNode(cst.TagBlock, 3)
	finallyNode := cst.NewNode(cst.TagFinally, 3, finallyBlock)

	// the try-with-resources wrapper carries the block, catches and finally
	// alongside the resource specification, per buildTryStatement's
	// target-reassignment contract.
	twr := cst.NewNode(cst.TagTryWithResourcesStatement, 1, resSpec, tryBlock, catchClause, finallyNode)
	tryNode := cst.NewNode(cst.TagTryStatement, 1, twr)

	stmt, err := buildStatement(tryNode)
	require.NoError(t, err)
	ts, ok := stmt.(*ast.TryStatement)
	require.True(t, ok)
	require.Len(t, ts.Resources, 1)
	assert.Equal(t, "r", ts.Resources[0].Name)
	require.Len(t, ts.Catches, 1)
	assert.Equal(t, "e", ts.Catches[0].Parameter.Name)
	require.NotNil(t, ts.Finally)
}

func TestBuildEnum_ConstantDesugarsToNewClass(t *testing.T) {
	constId := cst.NewToken(cst.TagIdentifier, 1, "RED")
	constant := cst.NewNode(cst.TagEnumConstant, 1, constId)
	constants := cst.NewNode(cst.TagEnumConstants, 1, constant)
	enumBody := cst.NewNode(cst.TagEnumBody, 1, constants)
	enumId := cst.NewToken(cst.TagIdentifier, 1, "Color")
	enumDecl := cst.NewNode(cst.TagEnumDeclaration, 1, enumId, enumBody)

	decl, err := buildEnum(enumDecl)
	require.NoError(t, err)
	require.Len(t, decl.Members, 1)

	v, ok := decl.Members[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.True(t, v.Is(ast.EnumConstantKind))
	nc, ok := v.Initializer.(*ast.NewClass)
	require.True(t, ok)
	id, ok := nc.Identifier.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Color", id.Name)
}

func TestBuildBinaryExpression_LeftAssociativeFold(t *testing.T) {
	a := wrapPrimary(cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "a")))
	b := wrapPrimary(cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "b")))
	c := wrapPrimary(cst.NewNode(cst.TagQualifiedIdentifier, 1, cst.NewToken(cst.TagIdentifier, 1, "c")))
	chain := cst.NewNode(cst.TagAdditiveExpression, 1, a, cst.NewToken(cst.TagPunctPlus, 1, "+"), b,
		cst.NewToken(cst.TagPunctMinus, 1, "-"), c)

	e, err := buildExpression(chain)
	require.NoError(t, err)
	outer, ok := e.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.True(t, outer.Is(ast.MinusKind))
	inner, ok := outer.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.True(t, inner.Is(ast.PlusKind))
}

func TestBuildMethodDeclaration_ConstructorHasNilReturnType(t *testing.T) {
	modifiers := cst.NewNode(cst.TagModifiers, 1, cst.NewToken(cst.TagKeywordPublic, 1, "public"))
	name := cst.NewToken(cst.TagIdentifier, 1, "Widget")
	params := cst.NewNode(cst.TagFormalParameters, 1)
	body := cst.NewNode(cst.TagBlock, 1)
	ctor := cst.NewNode(cst.TagMethodDeclaratorRest, 1, modifiers, name, params, body)

	m, err := buildMethod(ctor)
	require.NoError(t, err)
	assert.True(t, m.IsConstructor())
	assert.Nil(t, m.ReturnType)
}
