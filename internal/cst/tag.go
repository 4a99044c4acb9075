// Package cst models the concrete-syntax tree the builder consumes: a
// labelled n-ary tree of terminal and non-terminal nodes supplied by an
// external grammar parser this module does not implement.
package cst

import "fmt"

// Tag identifies the grammar production or terminal a Node was produced
// from. The set is closed: the builder and kindmap tables dispatch on it
// exhaustively and fail with langerr.MalformedAst/UnknownOperator on any
// tag outside the case they expect.
type Tag int

// String returns the grammar name of the tag, mirroring lexer.TokenType's
// String() in the teacher repository.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_TAG(%d)", int(t))
}

const (
	TagUnknown Tag = iota

	// Top-level structure.
	TagCompilationUnit
	TagPackageDeclaration
	TagImportDeclaration
	TagTypeDeclaration

	// Type declarations.
	TagClassDeclaration
	TagInterfaceDeclaration
	TagEnumDeclaration
	TagAnnotationTypeDeclaration
	TagClassBody
	TagClassBodyDeclaration
	TagClassInitDeclaration
	TagInterfaceBody
	TagInterfaceBodyDeclaration
	TagInterfaceMemberDecl
	TagInterfaceMethodOrFieldDecl
	TagInterfaceMethodOrFieldRest
	TagInterfaceMethodDeclaratorRest
	TagInterfaceGenericMethodDecl
	TagVoidInterfaceMethodDeclaratorsRest
	TagConstantDeclaratorRest
	TagAnnotationTypeBody
	TagAnnotationTypeElementDeclaration
	TagAnnotationTypeElementRest
	TagAnnotationMethodOrConstantRest
	TagAnnotationMethodRest
	TagEnumBody
	TagEnumConstants
	TagEnumConstant
	TagEnumBodyDeclarations
	TagMemberDecl
	TagFieldDeclaration
	TagGenericMethodOrConstructorRest
	TagMethodDeclaratorRest
	TagVoidMethodDeclaratorRest
	TagConstructorDeclaratorRest

	// Modifiers.
	TagModifier
	TagModifiers

	// Variables, types.
	TagVariableDeclarators
	TagVariableDeclarator
	TagVariableDeclaratorRest
	TagVariableDeclaratorId
	TagVariableInitializer
	TagArrayInitializer
	TagFormalParameters
	TagFormalParameter
	TagType
	TagReferenceType
	TagBasicType
	TagClassType
	TagClassTypeList
	TagTypeArgument
	TagTypeArguments
	TagNonWildcardTypeArguments
	TagDim
	TagDimExpr
	TagQualifiedIdentifier
	TagQualifiedIdentifierList

	// Blocks and statements.
	TagBlock
	TagBlockStatements
	TagBlockStatement
	TagLocalVariableDeclarationStatement
	TagStatement
	TagEmptyStatement
	TagLabeledStatement
	TagExpressionStatement
	TagStatementExpression
	TagIfStatement
	TagAssertStatement
	TagSwitchStatement
	TagSwitchBlockStatementGroups
	TagSwitchBlockStatementGroup
	TagSwitchLabel
	TagConstantExpression
	TagWhileStatement
	TagDoStatement
	TagForStatement
	TagForInit
	TagForUpdate
	TagBreakStatement
	TagContinueStatement
	TagReturnStatement
	TagThrowStatement
	TagSynchronizedStatement
	TagTryStatement
	TagTryWithResourcesStatement
	TagResourceSpecification
	TagResource
	TagCatchClause
	TagCatchFormalParameter
	TagCatchType
	TagFinally

	// Expressions.
	TagExpression
	TagParExpression
	TagPrimary
	TagConditionalOrExpression
	TagConditionalAndExpression
	TagInclusiveOrExpression
	TagExclusiveOrExpression
	TagAndExpression
	TagEqualityExpression
	TagRelationalExpression
	TagShiftExpression
	TagAdditiveExpression
	TagMultiplicativeExpression
	TagConditionalExpression
	TagAssignmentExpression
	TagUnaryExpression
	TagSelector
	TagSuperSuffix
	TagIdentifierSuffix
	TagExplicitGenericInvocation
	TagArguments
	TagCreator
	TagClassCreatorRest
	TagArrayCreatorRest
	TagLiteral

	// Terminals: literal kinds.
	TagLiteralInt
	TagLiteralLong
	TagLiteralFloat
	TagLiteralDouble
	TagLiteralBoolean
	TagLiteralChar
	TagLiteralString
	TagLiteralNull

	// Terminals: identifier.
	TagIdentifier

	// Terminals: keywords relevant to lowering.
	TagKeywordPackage
	TagKeywordImport
	TagKeywordStatic
	TagKeywordClass
	TagKeywordInterface
	TagKeywordEnum
	TagKeywordExtends
	TagKeywordImplements
	TagKeywordVoid
	TagKeywordThis
	TagKeywordSuper
	TagKeywordNew
	TagKeywordInstanceof
	TagKeywordFinally
	TagKeywordPublic
	TagKeywordPrivate
	TagKeywordProtected
	TagKeywordAbstract
	TagKeywordFinal
	TagKeywordNative
	TagKeywordSynchronized
	TagKeywordTransient

	// Terminals: punctuators (binary/assignment/prefix/postfix operators).
	TagPunctPlus          // +
	TagPunctMinus         // -
	TagPunctStar          // *
	TagPunctSlash         // /
	TagPunctPercent       // %
	TagPunctAmpAmp        // &&
	TagPunctPipePipe      // ||
	TagPunctAmp           // &
	TagPunctPipe          // |
	TagPunctCaret         // ^
	TagPunctEqEq          // ==
	TagPunctBangEq        // !=
	TagPunctLt            // <
	TagPunctGt            // >
	TagPunctLe            // <=
	TagPunctGe            // >=
	TagPunctShl           // <<
	TagPunctShr           // >>
	TagPunctUshr          // >>>
	TagPunctPlusPlus      // ++
	TagPunctMinusMinus    // --
	TagPunctBang          // !
	TagPunctTilde         // ~
	TagPunctEq            // =
	TagPunctPlusEq        // +=
	TagPunctMinusEq       // -=
	TagPunctStarEq        // *=
	TagPunctSlashEq       // /=
	TagPunctPercentEq     // %=
	TagPunctAmpEq         // &=
	TagPunctPipeEq        // |=
	TagPunctCaretEq       // ^=
	TagPunctShlEq         // <<=
	TagPunctShrEq         // >>=
	TagPunctUshrEq        // >>>=
	TagPunctDot           // .
	TagPunctDotDotDot     // ...
	TagPunctLBracket      // [
	TagPunctRBracket      // ]
	TagPunctQuestion      // ?
	TagPunctColon         // :
)

var tagNames = map[Tag]string{
	TagUnknown:                             "UNKNOWN",
	TagCompilationUnit:                     "COMPILATION_UNIT",
	TagPackageDeclaration:                  "PACKAGE_DECLARATION",
	TagImportDeclaration:                   "IMPORT_DECLARATION",
	TagTypeDeclaration:                     "TYPE_DECLARATION",
	TagClassDeclaration:                    "CLASS_DECLARATION",
	TagInterfaceDeclaration:                "INTERFACE_DECLARATION",
	TagEnumDeclaration:                     "ENUM_DECLARATION",
	TagAnnotationTypeDeclaration:           "ANNOTATION_TYPE_DECLARATION",
	TagClassBody:                           "CLASS_BODY",
	TagClassBodyDeclaration:                "CLASS_BODY_DECLARATION",
	TagClassInitDeclaration:                "CLASS_INIT_DECLARATION",
	TagInterfaceBody:                       "INTERFACE_BODY",
	TagInterfaceBodyDeclaration:            "INTERFACE_BODY_DECLARATION",
	TagInterfaceMemberDecl:                 "INTERFACE_MEMBER_DECL",
	TagInterfaceMethodOrFieldDecl:          "INTERFACE_METHOD_OR_FIELD_DECL",
	TagInterfaceMethodOrFieldRest:          "INTERFACE_METHOD_OR_FIELD_REST",
	TagInterfaceMethodDeclaratorRest:       "INTERFACE_METHOD_DECLARATOR_REST",
	TagInterfaceGenericMethodDecl:          "INTERFACE_GENERIC_METHOD_DECL",
	TagVoidInterfaceMethodDeclaratorsRest:  "VOID_INTERFACE_METHOD_DECLARATORS_REST",
	TagConstantDeclaratorRest:              "CONSTANT_DECLARATOR_REST",
	TagAnnotationTypeBody:                  "ANNOTATION_TYPE_BODY",
	TagAnnotationTypeElementDeclaration:    "ANNOTATION_TYPE_ELEMENT_DECLARATION",
	TagAnnotationTypeElementRest:           "ANNOTATION_TYPE_ELEMENT_REST",
	TagAnnotationMethodOrConstantRest:      "ANNOTATION_METHOD_OR_CONSTANT_REST",
	TagAnnotationMethodRest:                "ANNOTATION_METHOD_REST",
	TagEnumBody:                            "ENUM_BODY",
	TagEnumConstants:                       "ENUM_CONSTANTS",
	TagEnumConstant:                        "ENUM_CONSTANT",
	TagEnumBodyDeclarations:                "ENUM_BODY_DECLARATIONS",
	TagMemberDecl:                          "MEMBER_DECL",
	TagFieldDeclaration:                    "FIELD_DECLARATION",
	TagGenericMethodOrConstructorRest:      "GENERIC_METHOD_OR_CONSTRUCTOR_REST",
	TagMethodDeclaratorRest:                "METHOD_DECLARATOR_REST",
	TagVoidMethodDeclaratorRest:            "VOID_METHOD_DECLARATOR_REST",
	TagConstructorDeclaratorRest:           "CONSTRUCTOR_DECLARATOR_REST",
	TagModifier:                            "MODIFIER",
	TagModifiers:                           "MODIFIERS",
	TagVariableDeclarators:                 "VARIABLE_DECLARATORS",
	TagVariableDeclarator:                  "VARIABLE_DECLARATOR",
	TagVariableDeclaratorRest:              "VARIABLE_DECLARATOR_REST",
	TagVariableDeclaratorId:                "VARIABLE_DECLARATOR_ID",
	TagVariableInitializer:                 "VARIABLE_INITIALIZER",
	TagArrayInitializer:                    "ARRAY_INITIALIZER",
	TagFormalParameters:                    "FORMAL_PARAMETERS",
	TagFormalParameter:                     "FORMAL_PARAMETER",
	TagType:                                "TYPE",
	TagReferenceType:                       "REFERENCE_TYPE",
	TagBasicType:                           "BASIC_TYPE",
	TagClassType:                           "CLASS_TYPE",
	TagClassTypeList:                       "CLASS_TYPE_LIST",
	TagTypeArgument:                        "TYPE_ARGUMENT",
	TagTypeArguments:                       "TYPE_ARGUMENTS",
	TagNonWildcardTypeArguments:            "NON_WILDCARD_TYPE_ARGUMENTS",
	TagDim:                                 "DIM",
	TagDimExpr:                             "DIM_EXPR",
	TagQualifiedIdentifier:                 "QUALIFIED_IDENTIFIER",
	TagQualifiedIdentifierList:             "QUALIFIED_IDENTIFIER_LIST",
	TagBlock:                               "BLOCK",
	TagBlockStatements:                     "BLOCK_STATEMENTS",
	TagBlockStatement:                      "BLOCK_STATEMENT",
	TagLocalVariableDeclarationStatement:   "LOCAL_VARIABLE_DECLARATION_STATEMENT",
	TagStatement:                           "STATEMENT",
	TagEmptyStatement:                      "EMPTY_STATEMENT",
	TagLabeledStatement:                    "LABELED_STATEMENT",
	TagExpressionStatement:                 "EXPRESSION_STATEMENT",
	TagStatementExpression:                 "STATEMENT_EXPRESSION",
	TagIfStatement:                         "IF_STATEMENT",
	TagAssertStatement:                     "ASSERT_STATEMENT",
	TagSwitchStatement:                     "SWITCH_STATEMENT",
	TagSwitchBlockStatementGroups:          "SWITCH_BLOCK_STATEMENT_GROUPS",
	TagSwitchBlockStatementGroup:           "SWITCH_BLOCK_STATEMENT_GROUP",
	TagSwitchLabel:                         "SWITCH_LABEL",
	TagConstantExpression:                  "CONSTANT_EXPRESSION",
	TagWhileStatement:                      "WHILE_STATEMENT",
	TagDoStatement:                         "DO_STATEMENT",
	TagForStatement:                        "FOR_STATEMENT",
	TagForInit:                             "FOR_INIT",
	TagForUpdate:                           "FOR_UPDATE",
	TagBreakStatement:                      "BREAK_STATEMENT",
	TagContinueStatement:                   "CONTINUE_STATEMENT",
	TagReturnStatement:                     "RETURN_STATEMENT",
	TagThrowStatement:                      "THROW_STATEMENT",
	TagSynchronizedStatement:               "SYNCHRONIZED_STATEMENT",
	TagTryStatement:                        "TRY_STATEMENT",
	TagTryWithResourcesStatement:           "TRY_WITH_RESOURCES_STATEMENT",
	TagResourceSpecification:               "RESOURCE_SPECIFICATION",
	TagResource:                            "RESOURCE",
	TagCatchClause:                         "CATCH_CLAUSE",
	TagCatchFormalParameter:                "CATCH_FORMAL_PARAMETER",
	TagCatchType:                           "CATCH_TYPE",
	TagFinally:                             "FINALLY",
	TagExpression:                          "EXPRESSION",
	TagParExpression:                       "PAR_EXPRESSION",
	TagPrimary:                             "PRIMARY",
	TagConditionalOrExpression:             "CONDITIONAL_OR_EXPRESSION",
	TagConditionalAndExpression:            "CONDITIONAL_AND_EXPRESSION",
	TagInclusiveOrExpression:               "INCLUSIVE_OR_EXPRESSION",
	TagExclusiveOrExpression:               "EXCLUSIVE_OR_EXPRESSION",
	TagAndExpression:                       "AND_EXPRESSION",
	TagEqualityExpression:                  "EQUALITY_EXPRESSION",
	TagRelationalExpression:                "RELATIONAL_EXPRESSION",
	TagShiftExpression:                     "SHIFT_EXPRESSION",
	TagAdditiveExpression:                  "ADDITIVE_EXPRESSION",
	TagMultiplicativeExpression:            "MULTIPLICATIVE_EXPRESSION",
	TagConditionalExpression:               "CONDITIONAL_EXPRESSION",
	TagAssignmentExpression:                "ASSIGNMENT_EXPRESSION",
	TagUnaryExpression:                     "UNARY_EXPRESSION",
	TagSelector:                            "SELECTOR",
	TagSuperSuffix:                         "SUPER_SUFFIX",
	TagIdentifierSuffix:                    "IDENTIFIER_SUFFIX",
	TagExplicitGenericInvocation:           "EXPLICIT_GENERIC_INVOCATION",
	TagArguments:                           "ARGUMENTS",
	TagCreator:                             "CREATOR",
	TagClassCreatorRest:                    "CLASS_CREATOR_REST",
	TagArrayCreatorRest:                    "ARRAY_CREATOR_REST",
	TagLiteral:                             "LITERAL",
	TagLiteralInt:                          "LITERAL_INT",
	TagLiteralLong:                         "LITERAL_LONG",
	TagLiteralFloat:                        "LITERAL_FLOAT",
	TagLiteralDouble:                       "LITERAL_DOUBLE",
	TagLiteralBoolean:                      "LITERAL_BOOLEAN",
	TagLiteralChar:                         "LITERAL_CHAR",
	TagLiteralString:                       "LITERAL_STRING",
	TagLiteralNull:                         "LITERAL_NULL",
	TagIdentifier:                          "IDENTIFIER",
	TagKeywordPackage:                      "KEYWORD_PACKAGE",
	TagKeywordImport:                       "KEYWORD_IMPORT",
	TagKeywordStatic:                       "KEYWORD_STATIC",
	TagKeywordClass:                        "KEYWORD_CLASS",
	TagKeywordInterface:                    "KEYWORD_INTERFACE",
	TagKeywordEnum:                         "KEYWORD_ENUM",
	TagKeywordExtends:                      "KEYWORD_EXTENDS",
	TagKeywordImplements:                   "KEYWORD_IMPLEMENTS",
	TagKeywordVoid:                         "KEYWORD_VOID",
	TagKeywordThis:                         "KEYWORD_THIS",
	TagKeywordSuper:                        "KEYWORD_SUPER",
	TagKeywordNew:                          "KEYWORD_NEW",
	TagKeywordInstanceof:                   "KEYWORD_INSTANCEOF",
	TagKeywordFinally:                      "KEYWORD_FINALLY",
	TagKeywordPublic:                       "KEYWORD_PUBLIC",
	TagKeywordPrivate:                      "KEYWORD_PRIVATE",
	TagKeywordProtected:                    "KEYWORD_PROTECTED",
	TagKeywordAbstract:                     "KEYWORD_ABSTRACT",
	TagKeywordFinal:                        "KEYWORD_FINAL",
	TagKeywordNative:                       "KEYWORD_NATIVE",
	TagKeywordSynchronized:                 "KEYWORD_SYNCHRONIZED",
	TagKeywordTransient:                    "KEYWORD_TRANSIENT",
	TagPunctPlus:                           "+",
	TagPunctMinus:                          "-",
	TagPunctStar:                           "*",
	TagPunctSlash:                          "/",
	TagPunctPercent:                        "%",
	TagPunctAmpAmp:                         "&&",
	TagPunctPipePipe:                       "||",
	TagPunctAmp:                            "&",
	TagPunctPipe:                           "|",
	TagPunctCaret:                          "^",
	TagPunctEqEq:                           "==",
	TagPunctBangEq:                         "!=",
	TagPunctLt:                             "<",
	TagPunctGt:                             ">",
	TagPunctLe:                             "<=",
	TagPunctGe:                             ">=",
	TagPunctShl:                            "<<",
	TagPunctShr:                            ">>",
	TagPunctUshr:                           ">>>",
	TagPunctPlusPlus:                       "++",
	TagPunctMinusMinus:                     "--",
	TagPunctBang:                           "!",
	TagPunctTilde:                          "~",
	TagPunctEq:                             "=",
	TagPunctPlusEq:                         "+=",
	TagPunctMinusEq:                        "-=",
	TagPunctStarEq:                         "*=",
	TagPunctSlashEq:                        "/=",
	TagPunctPercentEq:                      "%=",
	TagPunctAmpEq:                          "&=",
	TagPunctPipeEq:                         "|=",
	TagPunctCaretEq:                        "^=",
	TagPunctShlEq:                          "<<=",
	TagPunctShrEq:                          ">>=",
	TagPunctUshrEq:                         ">>>=",
	TagPunctDot:                            ".",
	TagPunctDotDotDot:                      "...",
	TagPunctLBracket:                       "[",
	TagPunctRBracket:                       "]",
	TagPunctQuestion:                       "?",
	TagPunctColon:                          ":",
}
