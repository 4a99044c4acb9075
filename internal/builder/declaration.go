package builder

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/langerr"
)

// buildCompilationUnit lowers a COMPILATION_UNIT: an optional package name,
// zero or more imports, and the top-level type declarations, grounded on
// JavaTreeMaker.compilationUnit.
func buildCompilationUnit(n cst.Node) (*ast.CompilationUnit, error) {
	if n == nil || !n.Is(cst.TagCompilationUnit) {
		return nil, langerr.MalformedAst(cst.TagCompilationUnit)
	}
	cu := &ast.CompilationUnit{Base: baseOf(n)}
	if pkg := n.FirstChild(cst.TagQualifiedIdentifier); pkg != nil {
		name, err := qualifiedIdentifier(pkg)
		if err != nil {
			return nil, err
		}
		cu.PackageName = name
	}
	for _, imp := range n.ChildrenByTag(cst.TagImportDeclaration) {
		built, err := buildImport(imp)
		if err != nil {
			return nil, err
		}
		cu.Imports = append(cu.Imports, built)
	}
	for _, td := range n.ChildrenByTag(cst.TagClassDeclaration, cst.TagInterfaceDeclaration,
		cst.TagEnumDeclaration, cst.TagAnnotationTypeDeclaration) {
		decl, err := buildTypeDeclaration(td)
		if err != nil {
			return nil, err
		}
		cu.Types = append(cu.Types, decl)
	}
	return cu, nil
}

func buildImport(n cst.Node) (*ast.Import, error) {
	qi := n.FirstChild(cst.TagQualifiedIdentifier)
	if qi == nil {
		return nil, langerr.MalformedAst(cst.TagImportDeclaration)
	}
	name, err := qualifiedIdentifier(qi)
	if err != nil {
		return nil, err
	}
	return &ast.Import{
		Base:                baseOf(n),
		IsStatic:            n.HasDirectChildren(cst.TagKeywordStatic),
		QualifiedIdentifier: name,
	}, nil
}

// buildTypeDeclaration dispatches on the closed set of type-declaration
// tags, mirroring JavaTreeMaker.typeDeclaration.
func buildTypeDeclaration(n cst.Node) (ast.Declaration, error) {
	switch {
	case n.Is(cst.TagClassDeclaration):
		return buildClass(n, ast.ClassKind)
	case n.Is(cst.TagInterfaceDeclaration):
		return buildInterface(n)
	case n.Is(cst.TagEnumDeclaration):
		return buildEnum(n)
	case n.Is(cst.TagAnnotationTypeDeclaration):
		return buildAnnotationType(n)
	default:
		return nil, langerr.MalformedAst(n.Type())
	}
}

func buildClass(n cst.Node, kind ast.Kind) (*ast.ClassDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDecl{
		Base:      baseOf(n),
		DeclKind:  kind,
		Modifiers: mods,
		Name:      name.Name,
	}
	if super := n.FirstChild(cst.TagClassType); super != nil {
		decl.SuperClass, err = buildClassType(super)
		if err != nil {
			return nil, err
		}
	}
	if ifaces := n.FirstChild(cst.TagClassTypeList); ifaces != nil {
		decl.SuperInterfaces, err = buildReferenceTypeList(ifaces)
		if err != nil {
			return nil, err
		}
	}
	body := n.FirstChild(cst.TagClassBody)
	if body == nil {
		return nil, langerr.MalformedAst(cst.TagClassDeclaration)
	}
	decl.Members, err = buildMembers(body.Children())
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func buildInterface(n cst.Node) (*ast.ClassDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDecl{
		Base:      baseOf(n),
		DeclKind:  ast.InterfaceKind,
		Modifiers: mods,
		Name:      name.Name,
	}
	if extends := n.FirstChild(cst.TagClassTypeList); extends != nil {
		decl.SuperInterfaces, err = buildReferenceTypeList(extends)
		if err != nil {
			return nil, err
		}
	}
	body := n.FirstChild(cst.TagInterfaceBody)
	if body == nil {
		return nil, langerr.MalformedAst(cst.TagInterfaceDeclaration)
	}
	decl.Members, err = buildMembers(body.Children())
	if err != nil {
		return nil, err
	}
	return decl, nil
}

// buildEnum lowers ENUM_DECLARATION, desugaring each ENUM_CONSTANT into a
// VariableDecl whose Initializer is a NewClass carrying the constant's
// arguments and optional inline class body, grounded on
// JavaTreeMaker.enumDeclaration.
func buildEnum(n cst.Node) (*ast.ClassDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDecl{
		Base:      baseOf(n),
		DeclKind:  ast.EnumKind,
		Modifiers: mods,
		Name:      name.Name,
	}
	if ifaces := n.FirstChild(cst.TagClassTypeList); ifaces != nil {
		decl.SuperInterfaces, err = buildReferenceTypeList(ifaces)
		if err != nil {
			return nil, err
		}
	}
	body := n.FirstChild(cst.TagEnumBody)
	if body == nil {
		return nil, langerr.MalformedAst(cst.TagEnumDeclaration)
	}
	if constants := body.FirstChild(cst.TagEnumConstants); constants != nil {
		for _, ec := range constants.ChildrenByTag(cst.TagEnumConstant) {
			v, err := buildEnumConstant(ec, decl.Name)
			if err != nil {
				return nil, err
			}
			decl.Members = append(decl.Members, v)
		}
	}
	if decls := body.FirstChild(cst.TagEnumBodyDeclarations); decls != nil {
		members, err := buildMembers(decls.Children())
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, members...)
	}
	return decl, nil
}

func buildEnumConstant(n cst.Node, enumName string) (*ast.VariableDecl, error) {
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	var args []ast.Expression
	if argsNode := n.FirstChild(cst.TagArguments); argsNode != nil {
		args, err = buildArguments(argsNode)
		if err != nil {
			return nil, err
		}
	}
	newClass := &ast.NewClass{
		Base:       baseOf(n),
		Identifier: &ast.Identifier{Base: baseOf(n), Name: enumName},
		Arguments:  args,
	}
	if clsBody := n.FirstChild(cst.TagClassBody); clsBody != nil {
		members, err := buildMembers(clsBody.Children())
		if err != nil {
			return nil, err
		}
		newClass.ClassBody = &ast.ClassDecl{
			Base:     baseOf(clsBody),
			DeclKind: ast.ClassKind,
			Members:  members,
		}
	}
	return &ast.VariableDecl{
		Base:        baseOf(n),
		DeclKind:    ast.EnumConstantKind,
		Modifiers:   ast.EmptyModifiers(),
		Name:        name.Name,
		Initializer: newClass,
	}, nil
}

func buildAnnotationType(n cst.Node) (*ast.ClassDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDecl{
		Base:      baseOf(n),
		DeclKind:  ast.AnnotationTypeKind,
		Modifiers: mods,
		Name:      name.Name,
	}
	body := n.FirstChild(cst.TagAnnotationTypeBody)
	if body == nil {
		return nil, langerr.MalformedAst(cst.TagAnnotationTypeDeclaration)
	}
	for _, el := range body.ChildrenByTag(cst.TagAnnotationTypeElementDeclaration) {
		m, err := buildAnnotationElement(el)
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, m)
	}
	return decl, nil
}

// buildAnnotationElement lowers an annotation element to a MethodDecl with
// no parameters and no body; any default value is dropped (spec.md §9).
func buildAnnotationElement(n cst.Node) (*ast.MethodDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	retType, err := buildType(n.FirstChild(cst.TagType))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	return &ast.MethodDecl{
		Base:       baseOf(n),
		Modifiers:  mods,
		ReturnType: retType,
		Name:       name.Name,
	}, nil
}

// buildMembers lowers the direct children of a CLASS_BODY, INTERFACE_BODY
// or ENUM_BODY_DECLARATIONS into member declarations: fields, methods and
// constructors (TagMethodDeclaratorRest, absent return type means
// constructor), initializer blocks, and nested type declarations.
func buildMembers(nodes []cst.Node) ([]ast.Declaration, error) {
	var out []ast.Declaration
	for _, c := range nodes {
		switch {
		case c.Is(cst.TagFieldDeclaration):
			decls, err := buildFieldDeclaration(c)
			if err != nil {
				return nil, err
			}
			for _, d := range decls {
				out = append(out, d)
			}
		case c.Is(cst.TagMethodDeclaratorRest):
			m, err := buildMethod(c)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		case c.Is(cst.TagClassInitDeclaration):
			b, err := buildInitializerBlock(c)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		case c.Is(cst.TagClassDeclaration, cst.TagInterfaceDeclaration,
			cst.TagEnumDeclaration, cst.TagAnnotationTypeDeclaration):
			d, err := buildTypeDeclaration(c)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		default:
			return nil, langerr.MalformedAst(c.Type())
		}
	}
	return out, nil
}

func buildInitializerBlock(n cst.Node) (*ast.Block, error) {
	bodyNode := n.FirstChild(cst.TagBlock)
	if bodyNode == nil {
		return nil, langerr.MalformedAst(cst.TagClassInitDeclaration)
	}
	block, err := buildBlock(bodyNode)
	if err != nil {
		return nil, err
	}
	if n.HasDirectChildren(cst.TagKeywordStatic) {
		block.BlockKind = ast.StaticInitializerKind
	} else {
		block.BlockKind = ast.InitializerKind
	}
	return block, nil
}

// buildMethod lowers a METHOD_DECLARATOR_REST member: absence of a return
// type (neither TYPE nor void) means it lowered from a constructor
// declarator, per MethodDecl.IsConstructor's contract.
func buildMethod(n cst.Node) (*ast.MethodDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	name, err := identifier(n.FirstChild(cst.TagIdentifier))
	if err != nil {
		return nil, err
	}
	m := &ast.MethodDecl{Base: baseOf(n), Modifiers: mods, Name: name.Name}
	if rt := n.FirstChild(cst.TagType); rt != nil {
		m.ReturnType, err = buildType(rt)
		if err != nil {
			return nil, err
		}
	} else if void := n.FirstChild(cst.TagKeywordVoid); void != nil {
		m.ReturnType = &ast.PrimitiveType{Base: baseOf(void), Name: "void"}
	}
	params := n.FirstChild(cst.TagFormalParameters)
	if params == nil {
		return nil, langerr.MalformedAst(cst.TagMethodDeclaratorRest)
	}
	m.Parameters, err = buildFormalParameters(params)
	if err != nil {
		return nil, err
	}
	if throws := n.FirstChild(cst.TagQualifiedIdentifierList); throws != nil {
		m.Throws, err = qualifiedIdentifierList(throws)
		if err != nil {
			return nil, err
		}
	}
	if body := n.FirstChild(cst.TagBlock); body != nil {
		m.Body, err = buildBlock(body)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildFormalParameters(n cst.Node) ([]*ast.VariableDecl, error) {
	var out []*ast.VariableDecl
	for _, p := range n.ChildrenByTag(cst.TagFormalParameter) {
		v, err := buildFormalParameter(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// buildFormalParameter lowers a FORMAL_PARAMETER; its own declaration
// modifiers (e.g. `final`) are dropped per spec.md §9's open question on
// parameter modifiers.
func buildFormalParameter(n cst.Node) (*ast.VariableDecl, error) {
	typeNode := n.FirstChild(cst.TagType)
	idNode := n.FirstChild(cst.TagVariableDeclaratorId)
	if typeNode == nil || idNode == nil {
		return nil, langerr.MalformedAst(cst.TagFormalParameter)
	}
	declType, err := buildType(typeNode)
	if err != nil {
		return nil, err
	}
	name, dims, err := buildVariableDeclaratorId(idNode)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDecl{
		Base:      baseOf(n),
		DeclKind:  ast.VariableKind,
		Modifiers: ast.EmptyModifiers(),
		Type:      ast.ApplyDim(declType, dims),
		Name:      name,
	}, nil
}

func buildVariableDeclaratorId(n cst.Node) (string, int, error) {
	idNode := n.FirstChild(cst.TagIdentifier)
	if idNode == nil {
		return "", 0, langerr.MalformedAst(cst.TagVariableDeclaratorId)
	}
	id, err := identifier(idNode)
	if err != nil {
		return "", 0, err
	}
	return id.Name, len(n.ChildrenByTag(cst.TagDim)), nil
}

// buildFieldDeclaration expands a FIELD_DECLARATION's VARIABLE_DECLARATORS
// into one VariableDecl per declarator, each sharing the declaration's
// modifiers and base type but carrying its own trailing array dims and
// initializer, per JavaTreeMaker's declarator-expansion semantics.
func buildFieldDeclaration(n cst.Node) ([]*ast.VariableDecl, error) {
	mods, err := modifiers(n.ChildrenByTag(cst.TagModifiers))
	if err != nil {
		return nil, err
	}
	typeNode := n.FirstChild(cst.TagType)
	if typeNode == nil {
		return nil, langerr.MalformedAst(cst.TagFieldDeclaration)
	}
	baseType, err := buildType(typeNode)
	if err != nil {
		return nil, err
	}
	declsNode := n.FirstChild(cst.TagVariableDeclarators)
	if declsNode == nil {
		return nil, langerr.MalformedAst(cst.TagFieldDeclaration)
	}
	var out []*ast.VariableDecl
	for _, d := range declsNode.ChildrenByTag(cst.TagVariableDeclarator) {
		v, err := buildVariableDeclarator(d, mods, baseType, ast.VariableKind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func buildVariableDeclarator(n cst.Node, mods *ast.Modifiers, baseType ast.Expression, kind ast.Kind) (*ast.VariableDecl, error) {
	idNode := n.FirstChild(cst.TagVariableDeclaratorId)
	if idNode == nil {
		return nil, langerr.MalformedAst(cst.TagVariableDeclarator)
	}
	name, dims, err := buildVariableDeclaratorId(idNode)
	if err != nil {
		return nil, err
	}
	v := &ast.VariableDecl{
		Base:      baseOf(n),
		DeclKind:  kind,
		Modifiers: mods,
		Type:      ast.ApplyDim(baseType, dims),
		Name:      name,
	}
	if init := n.FirstChild(cst.TagVariableInitializer); init != nil {
		v.Initializer, err = buildVariableInitializer(init)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// buildVariableInitializer lowers either a plain expression initializer or
// an ARRAY_INITIALIZER, the latter becoming a NewArray with a nil
// ElementType (spec.md §3's NewArray table entry).
func buildVariableInitializer(n cst.Node) (ast.Expression, error) {
	if arr := n.FirstChild(cst.TagArrayInitializer); arr != nil {
		return buildArrayInitializer(arr)
	}
	child := n.FirstChild()
	if child == nil {
		return nil, langerr.MalformedAst(cst.TagVariableInitializer)
	}
	return buildExpression(child)
}

func buildArrayInitializer(n cst.Node) (*ast.NewArray, error) {
	na := &ast.NewArray{Base: baseOf(n)}
	for _, c := range n.ChildrenByTag(cst.TagVariableInitializer) {
		init, err := buildVariableInitializer(c)
		if err != nil {
			return nil, err
		}
		na.Initializers = append(na.Initializers, init)
	}
	return na, nil
}
