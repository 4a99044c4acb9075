package ast

import "fmt"

// Kind identifies the precise AST variant of a node for dispatch by
// is(Kind) and check logic. The set is closed: every case the builder can
// produce has exactly one Kind, and the five auxiliary node shapes that
// structurally exist but carry no dispatchable identity report KindNone.
type Kind int

// String returns the Kind's name, mirroring TokenType.String() in the
// teacher repository's lexer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_KIND(%d)", int(k))
}

const (
	// KindNone is the sentinel reported by the kindless auxiliary node
	// shapes (PrimitiveType, ArrayType, WildcardType, Import, Modifiers).
	// is(k) is false for every k against a node whose Kind is KindNone.
	KindNone Kind = iota

	// Declarations.
	CompilationUnitKind
	ClassKind
	InterfaceKind
	EnumKind
	AnnotationTypeKind
	MethodKind
	VariableKind
	EnumConstantKind
	InitializerKind
	StaticInitializerKind

	// Statements.
	BlockKind
	EmptyStatementKind
	LabeledStatementKind
	ExpressionStatementKind
	IfStatementKind
	AssertStatementKind
	SwitchStatementKind
	CaseGroupKind
	CaseLabelKind
	WhileStatementKind
	DoStatementKind
	ForStatementKind
	EnhancedForStatementKind
	BreakStatementKind
	ContinueStatementKind
	ReturnStatementKind
	ThrowStatementKind
	SynchronizedStatementKind
	TryStatementKind
	CatchKind

	// Expressions: identifier and literals.
	IdentifierKind
	IntLiteralKind
	LongLiteralKind
	FloatLiteralKind
	DoubleLiteralKind
	BooleanLiteralKind
	CharLiteralKind
	StringLiteralKind
	NullLiteralKind

	// Expressions: structural.
	ParenthesizedExpressionKind
	ConditionalExpressionKind
	InstanceOfKind
	TypeCastKind
	MethodInvocationKind
	NewArrayKind
	NewClassKind
	MemberSelectKind
	ArrayAccessExpressionKind

	// Binary operators.
	MultiplyKind
	DivideKind
	RemainderKind
	PlusKind
	MinusKind
	LeftShiftKind
	RightShiftKind
	UnsignedRightShiftKind
	LessThanKind
	GreaterThanKind
	LessThanOrEqualToKind
	GreaterThanOrEqualToKind
	EqualToKind
	NotEqualToKind
	AndKind
	XorKind
	OrKind
	ConditionalAndKind
	ConditionalOrKind

	// Unary operators.
	UnaryPlusKind
	UnaryMinusKind
	PrefixIncrementKind
	PrefixDecrementKind
	PostfixIncrementKind
	PostfixDecrementKind
	LogicalComplementKind
	BitwiseComplementKind

	// Assignment operators.
	AssignmentKind
	PlusAssignmentKind
	MinusAssignmentKind
	MultiplyAssignmentKind
	DivideAssignmentKind
	RemainderAssignmentKind
	AndAssignmentKind
	XorAssignmentKind
	OrAssignmentKind
	LeftShiftAssignmentKind
	RightShiftAssignmentKind
	UnsignedRightShiftAssignmentKind
)

var kindNames = map[Kind]string{
	KindNone:                         "NONE",
	CompilationUnitKind:              "COMPILATION_UNIT",
	ClassKind:                        "CLASS",
	InterfaceKind:                    "INTERFACE",
	EnumKind:                         "ENUM",
	AnnotationTypeKind:               "ANNOTATION_TYPE",
	MethodKind:                       "METHOD",
	VariableKind:                     "VARIABLE",
	EnumConstantKind:                 "ENUM_CONSTANT",
	InitializerKind:                  "INITIALIZER",
	StaticInitializerKind:            "STATIC_INITIALIZER",
	BlockKind:                        "BLOCK",
	EmptyStatementKind:               "EMPTY_STATEMENT",
	LabeledStatementKind:             "LABELED_STATEMENT",
	ExpressionStatementKind:          "EXPRESSION_STATEMENT",
	IfStatementKind:                  "IF_STATEMENT",
	AssertStatementKind:              "ASSERT_STATEMENT",
	SwitchStatementKind:              "SWITCH_STATEMENT",
	CaseGroupKind:                    "CASE_GROUP",
	CaseLabelKind:                    "CASE_LABEL",
	WhileStatementKind:               "WHILE_STATEMENT",
	DoStatementKind:                  "DO_STATEMENT",
	ForStatementKind:                 "FOR_STATEMENT",
	EnhancedForStatementKind:         "ENHANCED_FOR_STATEMENT",
	BreakStatementKind:               "BREAK_STATEMENT",
	ContinueStatementKind:            "CONTINUE_STATEMENT",
	ReturnStatementKind:              "RETURN_STATEMENT",
	ThrowStatementKind:               "THROW_STATEMENT",
	SynchronizedStatementKind:        "SYNCHRONIZED_STATEMENT",
	TryStatementKind:                 "TRY_STATEMENT",
	CatchKind:                        "CATCH",
	IdentifierKind:                   "IDENTIFIER",
	IntLiteralKind:                   "INT_LITERAL",
	LongLiteralKind:                  "LONG_LITERAL",
	FloatLiteralKind:                 "FLOAT_LITERAL",
	DoubleLiteralKind:                "DOUBLE_LITERAL",
	BooleanLiteralKind:               "BOOLEAN_LITERAL",
	CharLiteralKind:                  "CHAR_LITERAL",
	StringLiteralKind:                "STRING_LITERAL",
	NullLiteralKind:                  "NULL_LITERAL",
	ParenthesizedExpressionKind:      "PARENTHESIZED_EXPRESSION",
	ConditionalExpressionKind:        "CONDITIONAL_EXPRESSION",
	InstanceOfKind:                   "INSTANCE_OF",
	TypeCastKind:                     "TYPE_CAST",
	MethodInvocationKind:             "METHOD_INVOCATION",
	NewArrayKind:                     "NEW_ARRAY",
	NewClassKind:                     "NEW_CLASS",
	MemberSelectKind:                 "MEMBER_SELECT",
	ArrayAccessExpressionKind:        "ARRAY_ACCESS_EXPRESSION",
	MultiplyKind:                     "MULTIPLY",
	DivideKind:                       "DIVIDE",
	RemainderKind:                    "REMAINDER",
	PlusKind:                         "PLUS",
	MinusKind:                        "MINUS",
	LeftShiftKind:                    "LEFT_SHIFT",
	RightShiftKind:                   "RIGHT_SHIFT",
	UnsignedRightShiftKind:           "UNSIGNED_RIGHT_SHIFT",
	LessThanKind:                     "LESS_THAN",
	GreaterThanKind:                  "GREATER_THAN",
	LessThanOrEqualToKind:            "LESS_THAN_OR_EQUAL_TO",
	GreaterThanOrEqualToKind:         "GREATER_THAN_OR_EQUAL_TO",
	EqualToKind:                      "EQUAL_TO",
	NotEqualToKind:                   "NOT_EQUAL_TO",
	AndKind:                          "AND",
	XorKind:                          "XOR",
	OrKind:                           "OR",
	ConditionalAndKind:               "CONDITIONAL_AND",
	ConditionalOrKind:                "CONDITIONAL_OR",
	UnaryPlusKind:                    "UNARY_PLUS",
	UnaryMinusKind:                   "UNARY_MINUS",
	PrefixIncrementKind:              "PREFIX_INCREMENT",
	PrefixDecrementKind:              "PREFIX_DECREMENT",
	PostfixIncrementKind:             "POSTFIX_INCREMENT",
	PostfixDecrementKind:             "POSTFIX_DECREMENT",
	LogicalComplementKind:            "LOGICAL_COMPLEMENT",
	BitwiseComplementKind:            "BITWISE_COMPLEMENT",
	AssignmentKind:                   "ASSIGNMENT",
	PlusAssignmentKind:               "PLUS_ASSIGNMENT",
	MinusAssignmentKind:              "MINUS_ASSIGNMENT",
	MultiplyAssignmentKind:           "MULTIPLY_ASSIGNMENT",
	DivideAssignmentKind:             "DIVIDE_ASSIGNMENT",
	RemainderAssignmentKind:          "REMAINDER_ASSIGNMENT",
	AndAssignmentKind:                "AND_ASSIGNMENT",
	XorAssignmentKind:                "XOR_ASSIGNMENT",
	OrAssignmentKind:                 "OR_ASSIGNMENT",
	LeftShiftAssignmentKind:          "LEFT_SHIFT_ASSIGNMENT",
	RightShiftAssignmentKind:         "RIGHT_SHIFT_ASSIGNMENT",
	UnsignedRightShiftAssignmentKind: "UNSIGNED_RIGHT_SHIFT_ASSIGNMENT",
}

// Modifier is the closed enumeration of access and non-access declaration
// modifiers.
type Modifier int

const (
	ModifierPublic Modifier = iota
	ModifierPrivate
	ModifierProtected
	ModifierStatic
	ModifierFinal
	ModifierAbstract
	ModifierSynchronized
	ModifierNative
	ModifierTransient
)

func (m Modifier) String() string {
	if name, ok := modifierNames[m]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_MODIFIER(%d)", int(m))
}

var modifierNames = map[Modifier]string{
	ModifierPublic:       "public",
	ModifierPrivate:      "private",
	ModifierProtected:    "protected",
	ModifierStatic:       "static",
	ModifierFinal:        "final",
	ModifierAbstract:     "abstract",
	ModifierSynchronized: "synchronized",
	ModifierNative:       "native",
	ModifierTransient:    "transient",
}
