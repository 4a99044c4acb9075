package builder

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/kindmap"
	"github.com/langcore/javacore/internal/langerr"
)

var binaryFamilyTags = []cst.Tag{
	cst.TagConditionalOrExpression, cst.TagConditionalAndExpression,
	cst.TagInclusiveOrExpression, cst.TagExclusiveOrExpression, cst.TagAndExpression,
	cst.TagEqualityExpression, cst.TagRelationalExpression, cst.TagShiftExpression,
	cst.TagAdditiveExpression, cst.TagMultiplicativeExpression,
}

var expressionTags = append([]cst.Tag{
	cst.TagConditionalExpression, cst.TagAssignmentExpression, cst.TagUnaryExpression, cst.TagPrimary,
}, binaryFamilyTags...)

// buildExpression dispatches the closed set of expression-grammar tags,
// grounded on JavaTreeMaker.expression's unwrap-and-dispatch chain.
func buildExpression(n cst.Node) (ast.Expression, error) {
	switch {
	case n.Is(cst.TagConditionalExpression):
		return buildConditionalExpression(n)
	case n.Is(cst.TagAssignmentExpression):
		return buildAssignmentExpression(n)
	case n.Is(binaryFamilyTags...):
		return buildBinaryChain(n)
	case n.Is(cst.TagUnaryExpression):
		return buildUnaryExpression(n)
	case n.Is(cst.TagPrimary):
		return buildPrimary(n)
	default:
		return nil, langerr.MalformedAst(n.Type())
	}
}

// buildBinaryChain folds a left-associative operand/operator/operand/...
// sequence left to right. A RELATIONAL_EXPRESSION chain may carry an
// `instanceof` operator instead of a punctuator, in which case the right
// side is a TYPE rather than an operand, producing an InstanceOf node.
func buildBinaryChain(n cst.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) == 0 {
		return nil, langerr.MalformedAst(n.Type())
	}
	result, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i+1 < len(children); i += 2 {
		opNode, rightNode := children[i], children[i+1]
		if opNode.Is(cst.TagKeywordInstanceof) {
			t, err := buildType(rightNode)
			if err != nil {
				return nil, err
			}
			result = &ast.InstanceOf{Base: baseOf(opNode), Expr: result, Type: t}
			continue
		}
		k, err := kindmap.BinaryKind(opNode.Type())
		if err != nil {
			return nil, err
		}
		right, err := buildExpression(rightNode)
		if err != nil {
			return nil, err
		}
		result = &ast.BinaryExpression{Base: baseOf(opNode), Op: k, Left: result, Right: right}
	}
	return result, nil
}

func buildConditionalExpression(n cst.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 3 {
		return nil, langerr.MalformedAst(cst.TagConditionalExpression)
	}
	cond, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	trueExpr, err := buildExpression(children[1])
	if err != nil {
		return nil, err
	}
	falseExpr, err := buildExpression(children[2])
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Base: baseOf(n), Condition: cond, TrueExpr: trueExpr, FalseExpr: falseExpr}, nil
}

func buildAssignmentExpression(n cst.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 3 {
		return nil, langerr.MalformedAst(cst.TagAssignmentExpression)
	}
	lhs, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	k, err := kindmap.AssignmentKind(children[1].Type())
	if err != nil {
		return nil, err
	}
	rhs, err := buildExpression(children[2])
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpression{Base: baseOf(n), Op: k, Left: lhs, Right: rhs}, nil
}

// buildUnaryExpression dispatches on shape: [TYPE, expr] is a cast,
// [prefixOp, expr] a prefix unary, [expr, postfixOp] a postfix unary.
func buildUnaryExpression(n cst.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 2 {
		return nil, langerr.MalformedAst(cst.TagUnaryExpression)
	}
	first, second := children[0], children[1]
	if first.Is(cst.TagType) {
		t, err := buildType(first)
		if err != nil {
			return nil, err
		}
		e, err := buildExpression(second)
		if err != nil {
			return nil, err
		}
		return &ast.TypeCast{Base: baseOf(n), Type: t, Expr: e}, nil
	}
	if k, err := kindmap.PrefixKind(first.Type()); err == nil {
		e, err := buildExpression(second)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Base: baseOf(n), Op: k, Expr: e}, nil
	}
	k, err := kindmap.PostfixKind(second.Type())
	if err != nil {
		return nil, langerr.MalformedAst(cst.TagUnaryExpression)
	}
	e, err := buildExpression(first)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Base: baseOf(n), Op: k, Expr: e}, nil
}

// buildPrimary lowers a PRIMARY: its first child selects the base
// expression, and every remaining child is a selector, an argument list,
// a super suffix, or a postfix operator applied left to right over it.
func buildPrimary(n cst.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) == 0 {
		return nil, langerr.MalformedAst(cst.TagPrimary)
	}
	base, rest, err := buildPrimaryBase(children)
	if err != nil {
		return nil, err
	}
	return buildPrimaryChain(base, rest)
}

func buildPrimaryBase(children []cst.Node) (ast.Expression, []cst.Node, error) {
	head := children[0]
	rest := children[1:]
	switch {
	case head.Is(cst.TagParExpression):
		inner := head.FirstChild()
		if inner == nil {
			return nil, nil, langerr.MalformedAst(cst.TagParExpression)
		}
		e, err := buildExpression(inner)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Parenthesized{Base: baseOf(head), Expr: e}, rest, nil
	case head.Is(cst.TagKeywordThis):
		return &ast.Identifier{Base: baseOf(head), Name: "this"}, rest, nil
	case head.Is(cst.TagKeywordSuper):
		return &ast.Identifier{Base: baseOf(head), Name: "super"}, rest, nil
	case head.Is(cst.TagLiteral):
		litToken := head.FirstChild()
		if litToken == nil {
			return nil, nil, langerr.MalformedAst(cst.TagLiteral)
		}
		lit, err := literal(litToken)
		if err != nil {
			return nil, nil, err
		}
		return lit, rest, nil
	case head.Is(cst.TagKeywordNew):
		return buildCreator(children)
	case head.Is(cst.TagQualifiedIdentifier):
		e, err := qualifiedIdentifier(head)
		if err != nil {
			return nil, nil, err
		}
		return e, rest, nil
	case head.Is(cst.TagBasicType):
		return buildBasicType(head), rest, nil
	case head.Is(cst.TagKeywordVoid):
		return &ast.PrimitiveType{Base: baseOf(head), Name: "void"}, rest, nil
	default:
		return nil, nil, langerr.MalformedAst(head.Type())
	}
}

// buildCreator lowers the NEW keyword plus its CLASS_CREATOR_REST or
// ARRAY_CREATOR_REST child.
func buildCreator(children []cst.Node) (ast.Expression, []cst.Node, error) {
	if len(children) < 2 {
		return nil, nil, langerr.MalformedAst(cst.TagKeywordNew)
	}
	rest := children[2:]
	switch {
	case children[1].Is(cst.TagClassCreatorRest):
		e, err := buildClassCreatorRest(children[1])
		return e, rest, err
	case children[1].Is(cst.TagArrayCreatorRest):
		e, err := buildArrayCreatorRest(children[1])
		return e, rest, err
	default:
		return nil, nil, langerr.MalformedAst(children[1].Type())
	}
}

func buildClassCreatorRest(n cst.Node) (ast.Expression, error) {
	typeNode := n.FirstChild(cst.TagClassType)
	argsNode := n.FirstChild(cst.TagArguments)
	if typeNode == nil || argsNode == nil {
		return nil, langerr.MalformedAst(cst.TagClassCreatorRest)
	}
	id, err := buildClassType(typeNode)
	if err != nil {
		return nil, err
	}
	args, err := buildArguments(argsNode)
	if err != nil {
		return nil, err
	}
	nc := &ast.NewClass{Base: baseOf(n), Identifier: id, Arguments: args}
	if body := n.FirstChild(cst.TagClassBody); body != nil {
		members, err := buildMembers(body.Children())
		if err != nil {
			return nil, err
		}
		nc.ClassBody = &ast.ClassDecl{Base: baseOf(body), DeclKind: ast.ClassKind, Members: members}
	}
	return nc, nil
}

func buildArrayCreatorRest(n cst.Node) (ast.Expression, error) {
	elemNode := n.FirstChild(cst.TagBasicType, cst.TagClassType)
	if elemNode == nil {
		return nil, langerr.MalformedAst(cst.TagArrayCreatorRest)
	}
	var elemType ast.Expression
	var err error
	if elemNode.Is(cst.TagBasicType) {
		elemType = buildBasicType(elemNode)
	} else {
		elemType, err = buildClassType(elemNode)
		if err != nil {
			return nil, err
		}
	}
	na := &ast.NewArray{Base: baseOf(n), ElementType: elemType}
	for _, de := range n.ChildrenByTag(cst.TagDimExpr) {
		child := de.FirstChild()
		if child == nil {
			return nil, langerr.MalformedAst(cst.TagDimExpr)
		}
		e, err := buildExpression(child)
		if err != nil {
			return nil, err
		}
		na.Dimensions = append(na.Dimensions, e)
	}
	if init := n.FirstChild(cst.TagArrayInitializer); init != nil {
		built, err := buildArrayInitializer(init)
		if err != nil {
			return nil, err
		}
		na.Initializers = built.Initializers
	}
	return na, nil
}

func buildArguments(n cst.Node) ([]ast.Expression, error) {
	var out []ast.Expression
	for _, c := range n.Children() {
		e, err := buildExpression(c)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// buildPrimaryChain applies each trailing selector/argument-list/super-
// suffix/postfix-operator child over base, left to right.
func buildPrimaryChain(base ast.Expression, selectors []cst.Node) (ast.Expression, error) {
	result := base
	for _, sel := range selectors {
		var err error
		switch {
		case sel.Is(cst.TagArguments):
			var args []ast.Expression
			args, err = buildArguments(sel)
			if err == nil {
				result = &ast.MethodInvocation{Base: baseOf(sel), MethodSelect: result, Arguments: args}
			}
		case sel.Is(cst.TagSelector):
			result, err = applySelector(result, sel)
		case sel.Is(cst.TagSuperSuffix):
			result, err = applySuperSuffix(result, sel)
		case sel.Is(cst.TagPunctPlusPlus, cst.TagPunctMinusMinus):
			var k ast.Kind
			k, err = kindmap.PostfixKind(sel.Type())
			if err == nil {
				result = &ast.UnaryExpression{Base: baseOf(sel), Op: k, Expr: result}
			}
		default:
			err = langerr.MalformedAst(sel.Type())
		}
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// applySelector lowers a `.name`, `.name(args)` or `[index]` selector.
func applySelector(base ast.Expression, sel cst.Node) (ast.Expression, error) {
	if idNode := sel.FirstChild(cst.TagIdentifier); idNode != nil {
		id, err := identifier(idNode)
		if err != nil {
			return nil, err
		}
		var result ast.Expression = &ast.MemberSelect{Base: baseOf(sel), Expr: base, Identifier: id.Name}
		if argsNode := sel.FirstChild(cst.TagArguments); argsNode != nil {
			args, err := buildArguments(argsNode)
			if err != nil {
				return nil, err
			}
			result = &ast.MethodInvocation{Base: baseOf(sel), MethodSelect: result, Arguments: args}
		}
		return result, nil
	}
	idx := sel.FirstChild()
	if idx == nil {
		return nil, langerr.MalformedAst(cst.TagSelector)
	}
	idxExpr, err := buildExpression(idx)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayAccess{Base: baseOf(sel), Expr: base, Index: idxExpr}, nil
}

// applySuperSuffix lowers `super.name`, `super.name(args)` or the bare
// `super(args)` explicit constructor invocation shape.
func applySuperSuffix(base ast.Expression, sel cst.Node) (ast.Expression, error) {
	if idNode := sel.FirstChild(cst.TagIdentifier); idNode != nil {
		id, err := identifier(idNode)
		if err != nil {
			return nil, err
		}
		var result ast.Expression = &ast.MemberSelect{Base: baseOf(sel), Expr: base, Identifier: id.Name}
		if argsNode := sel.FirstChild(cst.TagArguments); argsNode != nil {
			args, err := buildArguments(argsNode)
			if err != nil {
				return nil, err
			}
			result = &ast.MethodInvocation{Base: baseOf(sel), MethodSelect: result, Arguments: args}
		}
		return result, nil
	}
	if argsNode := sel.FirstChild(cst.TagArguments); argsNode != nil {
		args, err := buildArguments(argsNode)
		if err != nil {
			return nil, err
		}
		return &ast.MethodInvocation{Base: baseOf(sel), MethodSelect: base, Arguments: args}, nil
	}
	return base, nil
}
