package builder

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/langerr"
)

// buildBlock lowers a BLOCK into an ordinary Block (BlockKind is
// overwritten by the caller for INITIALIZER/STATIC_INITIALIZER members).
func buildBlock(n cst.Node) (*ast.Block, error) {
	if n == nil || !n.Is(cst.TagBlock) {
		return nil, langerr.MalformedAst(cst.TagBlock)
	}
	b := &ast.Block{Base: baseOf(n), BlockKind: ast.BlockKind}
	for _, c := range n.Children() {
		stmts, err := buildBlockStatement(c)
		if err != nil {
			return nil, err
		}
		b.Statements = append(b.Statements, stmts...)
	}
	return b, nil
}

// buildBlockStatement dispatches a BLOCK's direct child: a statement, a
// local variable declaration (expanded to one VariableDecl per
// declarator), or a nested local class/enum declaration, grounded on
// JavaTreeMaker.blockStatements.
func buildBlockStatement(n cst.Node) ([]ast.Statement, error) {
	switch {
	case n.Is(cst.TagLocalVariableDeclarationStatement):
		return buildLocalVariableDeclaration(n)
	case n.Is(cst.TagClassDeclaration):
		decl, err := buildClass(n, ast.ClassKind)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{localTypeStatement(decl)}, nil
	case n.Is(cst.TagEnumDeclaration):
		decl, err := buildEnum(n)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{localTypeStatement(decl)}, nil
	default:
		stmt, err := buildStatement(n)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{stmt}, nil
	}
}

// localTypeStatement wraps a local class/enum declaration so it can occupy
// a block's Statement-typed slot: ClassDecl implements only Declaration,
// so it is carried as the sole expression-less statement wrapper an
// ExpressionStatement cannot express. A local type declaration has no
// runtime effect of its own at the point it appears, so an EmptyStatement
// sharing its span stands in for it in the statement list. The declaration
// itself is not kept in the AST: neither the block nor
// CompilationUnit.Types holds it, so no visitor reaches a local type.
func localTypeStatement(decl *ast.ClassDecl) ast.Statement {
	return &ast.EmptyStatement{Base: ast.Base{Span: decl.GetSpan()}}
}

func buildLocalVariableDeclaration(n cst.Node) ([]ast.Statement, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	typeNode := n.FirstChild(cst.TagType)
	if typeNode == nil {
		return nil, langerr.MalformedAst(cst.TagLocalVariableDeclarationStatement)
	}
	baseType, err := buildType(typeNode)
	if err != nil {
		return nil, err
	}
	declsNode := n.FirstChild(cst.TagVariableDeclarators)
	if declsNode == nil {
		return nil, langerr.MalformedAst(cst.TagLocalVariableDeclarationStatement)
	}
	var out []ast.Statement
	for _, d := range declsNode.ChildrenByTag(cst.TagVariableDeclarator) {
		v, err := buildVariableDeclarator(d, mods, baseType, ast.VariableKind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// buildStatement dispatches the closed set of statement-grammar tags,
// mirroring JavaTreeMaker.statement.
func buildStatement(n cst.Node) (ast.Statement, error) {
	switch {
	case n.Is(cst.TagBlock):
		return buildBlock(n)
	case n.Is(cst.TagEmptyStatement):
		return &ast.EmptyStatement{Base: baseOf(n)}, nil
	case n.Is(cst.TagLabeledStatement):
		return buildLabeledStatement(n)
	case n.Is(cst.TagExpressionStatement):
		return buildExpressionStatement(n)
	case n.Is(cst.TagIfStatement):
		return buildIfStatement(n)
	case n.Is(cst.TagAssertStatement):
		return buildAssertStatement(n)
	case n.Is(cst.TagSwitchStatement):
		return buildSwitchStatement(n)
	case n.Is(cst.TagWhileStatement):
		return buildWhileStatement(n)
	case n.Is(cst.TagDoStatement):
		return buildDoStatement(n)
	case n.Is(cst.TagForStatement):
		return buildForStatement(n)
	case n.Is(cst.TagBreakStatement):
		return buildBreakStatement(n)
	case n.Is(cst.TagContinueStatement):
		return buildContinueStatement(n)
	case n.Is(cst.TagReturnStatement):
		return buildReturnStatement(n)
	case n.Is(cst.TagThrowStatement):
		return buildThrowStatement(n)
	case n.Is(cst.TagSynchronizedStatement):
		return buildSynchronizedStatement(n)
	case n.Is(cst.TagTryStatement):
		return buildTryStatement(n)
	default:
		return nil, langerr.MalformedAst(n.Type())
	}
}

func buildLabeledStatement(n cst.Node) (*ast.LabeledStatement, error) {
	idNode := n.FirstChild(cst.TagIdentifier)
	if idNode == nil {
		return nil, langerr.MalformedAst(cst.TagLabeledStatement)
	}
	id, err := identifier(idNode)
	if err != nil {
		return nil, err
	}
	inner := lastChild(n)
	if inner == nil {
		return nil, langerr.MalformedAst(cst.TagLabeledStatement)
	}
	stmt, err := buildStatement(inner)
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{Base: baseOf(n), Label: id.Name, Statement: stmt}, nil
}

func buildExpressionStatement(n cst.Node) (*ast.ExpressionStatement, error) {
	child := n.FirstChild()
	if child == nil {
		return nil, langerr.MalformedAst(cst.TagExpressionStatement)
	}
	e, err := buildExpression(child)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Base: baseOf(n), Expr: e}, nil
}

// buildIfStatement lowers IF_STATEMENT; the else branch, if present, is
// always the second STATEMENT child.
func buildIfStatement(n cst.Node) (*ast.IfStatement, error) {
	condNode := n.FirstChild()
	if condNode == nil {
		return nil, langerr.MalformedAst(cst.TagIfStatement)
	}
	cond, err := buildExpression(condNode)
	if err != nil {
		return nil, err
	}
	branches := n.ChildrenByTag(statementTags...)
	if len(branches) == 0 {
		return nil, langerr.MalformedAst(cst.TagIfStatement)
	}
	then, err := buildStatement(branches[0])
	if err != nil {
		return nil, err
	}
	ifs := &ast.IfStatement{Base: baseOf(n), Condition: cond, Then: then}
	if len(branches) > 1 {
		ifs.Else, err = buildStatement(branches[1])
		if err != nil {
			return nil, err
		}
	}
	return ifs, nil
}

func buildAssertStatement(n cst.Node) (*ast.AssertStatement, error) {
	exprs := n.ChildrenByTag(expressionTags...)
	if len(exprs) == 0 {
		return nil, langerr.MalformedAst(cst.TagAssertStatement)
	}
	cond, err := buildExpression(exprs[0])
	if err != nil {
		return nil, err
	}
	as := &ast.AssertStatement{Base: baseOf(n), Condition: cond}
	if len(exprs) > 1 {
		as.DetailMessage, err = buildExpression(exprs[1])
		if err != nil {
			return nil, err
		}
	}
	return as, nil
}

// buildSwitchStatement lowers SWITCH_STATEMENT, grouping its flat sequence
// of labels and statements into CaseGroups: pending labels accumulate
// until a statement follows; a new label flushes any body accumulated so
// far under the pending labels; any trailing labels with no following
// statements flush as a final, empty-bodied group. Grounded on
// JavaTreeMaker.switchStatement's case-grouping loop.
func buildSwitchStatement(n cst.Node) (*ast.SwitchStatement, error) {
	exprNode := n.FirstChild()
	if exprNode == nil {
		return nil, langerr.MalformedAst(cst.TagSwitchStatement)
	}
	expr, err := buildExpression(exprNode)
	if err != nil {
		return nil, err
	}
	sw := &ast.SwitchStatement{Base: baseOf(n), Expr: expr}
	groupsNode := n.FirstChild(cst.TagSwitchBlockStatementGroups)
	if groupsNode == nil {
		return sw, nil
	}
	var pendingLabels []*ast.CaseLabel
	var body []ast.Statement
	flush := func() {
		if len(pendingLabels) == 0 {
			return
		}
		sw.Cases = append(sw.Cases, &ast.CaseGroup{
			Base:   pendingLabels[0].Base,
			Labels: pendingLabels,
			Body:   body,
		})
		pendingLabels = nil
		body = nil
	}
	for _, c := range groupsNode.Children() {
		if c.Is(cst.TagSwitchLabel) {
			if len(body) > 0 {
				flush()
			}
			label, err := buildSwitchLabel(c)
			if err != nil {
				return nil, err
			}
			pendingLabels = append(pendingLabels, label)
			continue
		}
		stmt, err := buildStatement(c)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	flush()
	return sw, nil
}

func buildSwitchLabel(n cst.Node) (*ast.CaseLabel, error) {
	child := n.FirstChild()
	if child == nil {
		return &ast.CaseLabel{Base: baseOf(n)}, nil
	}
	e, err := buildExpression(child)
	if err != nil {
		return nil, err
	}
	return &ast.CaseLabel{Base: baseOf(n), Expr: e}, nil
}

func buildWhileStatement(n cst.Node) (*ast.WhileStatement, error) {
	exprNode := n.FirstChild()
	stmtNode := lastChild(n)
	if exprNode == nil || stmtNode == nil || exprNode == stmtNode {
		return nil, langerr.MalformedAst(cst.TagWhileStatement)
	}
	cond, err := buildExpression(exprNode)
	if err != nil {
		return nil, err
	}
	body, err := buildStatement(stmtNode)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Base: baseOf(n), Condition: cond, Statement: body}, nil
}

func buildDoStatement(n cst.Node) (*ast.DoWhileStatement, error) {
	stmtNode := n.FirstChild(statementTags...)
	exprNode := lastChild(n)
	if stmtNode == nil || exprNode == nil {
		return nil, langerr.MalformedAst(cst.TagDoStatement)
	}
	body, err := buildStatement(stmtNode)
	if err != nil {
		return nil, err
	}
	cond, err := buildExpression(exprNode)
	if err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{Base: baseOf(n), Statement: body, Condition: cond}, nil
}

// buildForStatement dispatches on the presence of a FORMAL_PARAMETER child:
// its presence means an enhanced for, its absence the classical three-part
// form, per JavaTreeMaker.forStatement.
func buildForStatement(n cst.Node) (ast.Statement, error) {
	if param := n.FirstChild(cst.TagFormalParameter); param != nil {
		return buildEnhancedForStatement(n, param)
	}
	bodyNode := lastChild(n)
	if bodyNode == nil {
		return nil, langerr.MalformedAst(cst.TagForStatement)
	}
	body, err := buildStatement(bodyNode)
	if err != nil {
		return nil, err
	}
	fs := &ast.ForStatement{Base: baseOf(n), Statement: body}
	if init := n.FirstChild(cst.TagForInit); init != nil {
		fs.Init, err = buildForInit(init)
		if err != nil {
			return nil, err
		}
	}
	if cond := n.FirstChild(expressionTags...); cond != nil {
		fs.Condition, err = buildExpression(cond)
		if err != nil {
			return nil, err
		}
	}
	if update := n.FirstChild(cst.TagForUpdate); update != nil {
		fs.Update, err = buildStatementExpressions(update)
		if err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func buildEnhancedForStatement(n cst.Node, param cst.Node) (*ast.EnhancedForStatement, error) {
	variable, err := buildFormalParameter(param)
	if err != nil {
		return nil, err
	}
	exprNode := n.FirstChild(expressionTags...)
	bodyNode := lastChild(n)
	if exprNode == nil || bodyNode == nil {
		return nil, langerr.MalformedAst(cst.TagForStatement)
	}
	expr, err := buildExpression(exprNode)
	if err != nil {
		return nil, err
	}
	body, err := buildStatement(bodyNode)
	if err != nil {
		return nil, err
	}
	return &ast.EnhancedForStatement{Base: baseOf(n), Variable: variable, Expr: expr, Statement: body}, nil
}

// buildForInit lowers either a VARIABLE_DECLARATORS-shaped local
// declaration or a comma list of bare STATEMENT_EXPRESSION children.
func buildForInit(n cst.Node) ([]ast.Statement, error) {
	if declsNode := n.FirstChild(cst.TagVariableDeclarators); declsNode != nil {
		mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
		if err != nil {
			return nil, err
		}
		typeNode := n.FirstChild(cst.TagType)
		if typeNode == nil {
			return nil, langerr.MalformedAst(cst.TagForInit)
		}
		baseType, err := buildType(typeNode)
		if err != nil {
			return nil, err
		}
		var out []ast.Statement
		for _, d := range declsNode.ChildrenByTag(cst.TagVariableDeclarator) {
			v, err := buildVariableDeclarator(d, mods, baseType, ast.VariableKind)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return buildStatementExpressions(n)
}

func buildStatementExpressions(n cst.Node) ([]ast.Statement, error) {
	var out []ast.Statement
	for _, se := range n.ChildrenByTag(cst.TagStatementExpression) {
		child := se.FirstChild()
		if child == nil {
			return nil, langerr.MalformedAst(cst.TagStatementExpression)
		}
		e, err := buildExpression(child)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.ExpressionStatement{Base: baseOf(se), Expr: e})
	}
	return out, nil
}

func buildBreakStatement(n cst.Node) (*ast.BreakStatement, error) {
	label := ""
	if id := n.FirstChild(cst.TagIdentifier); id != nil {
		built, err := identifier(id)
		if err != nil {
			return nil, err
		}
		label = built.Name
	}
	return &ast.BreakStatement{Base: baseOf(n), Label: label}, nil
}

func buildContinueStatement(n cst.Node) (*ast.ContinueStatement, error) {
	label := ""
	if id := n.FirstChild(cst.TagIdentifier); id != nil {
		built, err := identifier(id)
		if err != nil {
			return nil, err
		}
		label = built.Name
	}
	return &ast.ContinueStatement{Base: baseOf(n), Label: label}, nil
}

func buildReturnStatement(n cst.Node) (*ast.ReturnStatement, error) {
	rs := &ast.ReturnStatement{Base: baseOf(n)}
	if child := n.FirstChild(); child != nil {
		e, err := buildExpression(child)
		if err != nil {
			return nil, err
		}
		rs.Expr = e
	}
	return rs, nil
}

func buildThrowStatement(n cst.Node) (*ast.ThrowStatement, error) {
	child := n.FirstChild()
	if child == nil {
		return nil, langerr.MalformedAst(cst.TagThrowStatement)
	}
	e, err := buildExpression(child)
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Base: baseOf(n), Expr: e}, nil
}

func buildSynchronizedStatement(n cst.Node) (*ast.SynchronizedStatement, error) {
	exprNode := n.FirstChild()
	blockNode := n.FirstChild(cst.TagBlock)
	if exprNode == nil || blockNode == nil {
		return nil, langerr.MalformedAst(cst.TagSynchronizedStatement)
	}
	expr, err := buildExpression(exprNode)
	if err != nil {
		return nil, err
	}
	block, err := buildBlock(blockNode)
	if err != nil {
		return nil, err
	}
	return &ast.SynchronizedStatement{Base: baseOf(n), Expr: expr, Block: block}, nil
}

// buildTryStatement lowers TRY_STATEMENT, unwrapping a
// TRY_WITH_RESOURCES_STATEMENT wrapper when present (its RESOURCE_
// SPECIFICATION becomes TryStatement.Resources) and lowering each
// CATCH_CLAUSE; a catch naming more than one type in its CATCH_TYPE
// (multi-catch) keeps only the first, per spec.md §9's open question.
func buildTryStatement(n cst.Node) (*ast.TryStatement, error) {
	ts := &ast.TryStatement{Base: baseOf(n)}
	target := n
	if twr := n.FirstChild(cst.TagTryWithResourcesStatement); twr != nil {
		target = twr
		if rs := twr.FirstChild(cst.TagResourceSpecification); rs != nil {
			resources, err := buildResourceSpecification(rs)
			if err != nil {
				return nil, err
			}
			ts.Resources = resources
		}
	}
	blockNode := target.FirstChild(cst.TagBlock)
	if blockNode == nil {
		return nil, langerr.MalformedAst(cst.TagTryStatement)
	}
	block, err := buildBlock(blockNode)
	if err != nil {
		return nil, err
	}
	ts.Block = block
	for _, cc := range target.ChildrenByTag(cst.TagCatchClause) {
		c, err := buildCatch(cc)
		if err != nil {
			return nil, err
		}
		ts.Catches = append(ts.Catches, c)
	}
	if fin := target.FirstChild(cst.TagFinally); fin != nil {
		finBlock := fin.FirstChild(cst.TagBlock)
		if finBlock == nil {
			return nil, langerr.MalformedAst(cst.TagFinally)
		}
		ts.Finally, err = buildBlock(finBlock)
		if err != nil {
			return nil, err
		}
	}
	if len(ts.Catches) == 0 && ts.Finally == nil {
		return nil, langerr.MalformedAstf(cst.TagTryStatement,
			"try statement has neither a catch clause nor a finally block")
	}
	return ts, nil
}

func buildResourceSpecification(n cst.Node) ([]*ast.VariableDecl, error) {
	var out []*ast.VariableDecl
	for _, r := range n.ChildrenByTag(cst.TagResource) {
		v, err := buildResource(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func buildResource(n cst.Node) (*ast.VariableDecl, error) {
	typeNode := n.FirstChild(cst.TagType)
	idNode := n.FirstChild(cst.TagIdentifier)
	if typeNode == nil || idNode == nil {
		return nil, langerr.MalformedAst(cst.TagResource)
	}
	declType, err := buildType(typeNode)
	if err != nil {
		return nil, err
	}
	name, err := identifier(idNode)
	if err != nil {
		return nil, err
	}
	v := &ast.VariableDecl{
		Base:      baseOf(n),
		DeclKind:  ast.VariableKind,
		Modifiers: ast.EmptyModifiers(),
		Type:      declType,
		Name:      name.Name,
	}
	if exprs := n.ChildrenByTag(expressionTags...); len(exprs) > 0 {
		v.Initializer, err = buildExpression(exprs[0])
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// buildCatch lowers a CATCH_CLAUSE. Its CATCH_FORMAL_PARAMETER's own
// declaration modifiers are dropped, matching buildFormalParameter.
func buildCatch(n cst.Node) (*ast.Catch, error) {
	paramNode := n.FirstChild(cst.TagCatchFormalParameter)
	blockNode := n.FirstChild(cst.TagBlock)
	if paramNode == nil || blockNode == nil {
		return nil, langerr.MalformedAst(cst.TagCatchClause)
	}
	typeNode := paramNode.FirstChild(cst.TagCatchType)
	idNode := paramNode.FirstChild(cst.TagIdentifier)
	if typeNode == nil || idNode == nil {
		return nil, langerr.MalformedAst(cst.TagCatchFormalParameter)
	}
	firstType := typeNode.FirstChild(cst.TagClassType)
	if firstType == nil {
		return nil, langerr.MalformedAst(cst.TagCatchType)
	}
	declType, err := buildClassType(firstType)
	if err != nil {
		return nil, err
	}
	name, err := identifier(idNode)
	if err != nil {
		return nil, err
	}
	block, err := buildBlock(blockNode)
	if err != nil {
		return nil, err
	}
	return &ast.Catch{
		Base: baseOf(n),
		Parameter: &ast.VariableDecl{
			Base:      baseOf(paramNode),
			DeclKind:  ast.VariableKind,
			Modifiers: ast.EmptyModifiers(),
			Type:      declType,
			Name:      name.Name,
		},
		Block: block,
	}, nil
}

func lastChild(n cst.Node) cst.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[len(children)-1]
}

var statementTags = []cst.Tag{
	cst.TagBlock, cst.TagEmptyStatement, cst.TagLabeledStatement, cst.TagExpressionStatement,
	cst.TagIfStatement, cst.TagAssertStatement, cst.TagSwitchStatement, cst.TagWhileStatement,
	cst.TagDoStatement, cst.TagForStatement, cst.TagBreakStatement, cst.TagContinueStatement,
	cst.TagReturnStatement, cst.TagThrowStatement, cst.TagSynchronizedStatement, cst.TagTryStatement,
}
