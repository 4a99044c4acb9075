// Package kindmap holds the build-time constant tables that translate a
// concrete-tree punctuation, keyword or literal tag into its AST operator
// Kind or Modifier (spec.md §4.1). Every lookup is pure, total over its
// declared domain, and fails closed with langerr.UnknownOperator for a
// tag outside the requested category, mirroring JavaTreeMaker's
// kindMaps field in the original this module is modelled on.
package kindmap

import (
	"github.com/langcore/javacore/internal/ast"
	"github.com/langcore/javacore/internal/cst"
	"github.com/langcore/javacore/internal/langerr"
)

var literalKinds = map[cst.Tag]ast.Kind{
	cst.TagLiteralInt:     ast.IntLiteralKind,
	cst.TagLiteralLong:    ast.LongLiteralKind,
	cst.TagLiteralFloat:   ast.FloatLiteralKind,
	cst.TagLiteralDouble:  ast.DoubleLiteralKind,
	cst.TagLiteralBoolean: ast.BooleanLiteralKind,
	cst.TagLiteralChar:    ast.CharLiteralKind,
	cst.TagLiteralString:  ast.StringLiteralKind,
	cst.TagLiteralNull:    ast.NullLiteralKind,
}

// LiteralKind maps a LITERAL terminal tag to its Kind.
func LiteralKind(tag cst.Tag) (ast.Kind, error) {
	if k, ok := literalKinds[tag]; ok {
		return k, nil
	}
	return ast.KindNone, langerr.UnknownOperator(tag, "literal")
}

var binaryKinds = map[cst.Tag]ast.Kind{
	cst.TagPunctPipePipe: ast.ConditionalOrKind,
	cst.TagPunctAmpAmp:   ast.ConditionalAndKind,
	cst.TagPunctPipe:     ast.OrKind,
	cst.TagPunctCaret:    ast.XorKind,
	cst.TagPunctAmp:      ast.AndKind,
	cst.TagPunctEqEq:     ast.EqualToKind,
	cst.TagPunctBangEq:   ast.NotEqualToKind,
	cst.TagPunctLt:       ast.LessThanKind,
	cst.TagPunctGt:       ast.GreaterThanKind,
	cst.TagPunctLe:       ast.LessThanOrEqualToKind,
	cst.TagPunctGe:       ast.GreaterThanOrEqualToKind,
	cst.TagPunctShl:      ast.LeftShiftKind,
	cst.TagPunctShr:      ast.RightShiftKind,
	cst.TagPunctUshr:     ast.UnsignedRightShiftKind,
	cst.TagPunctPlus:     ast.PlusKind,
	cst.TagPunctMinus:    ast.MinusKind,
	cst.TagPunctStar:     ast.MultiplyKind,
	cst.TagPunctSlash:    ast.DivideKind,
	cst.TagPunctPercent:  ast.RemainderKind,
}

// BinaryKind maps a punctuation tag to its binary operator Kind.
func BinaryKind(tag cst.Tag) (ast.Kind, error) {
	if k, ok := binaryKinds[tag]; ok {
		return k, nil
	}
	return ast.KindNone, langerr.UnknownOperator(tag, "binary")
}

var prefixKinds = map[cst.Tag]ast.Kind{
	cst.TagPunctPlus:       ast.UnaryPlusKind,
	cst.TagPunctMinus:      ast.UnaryMinusKind,
	cst.TagPunctPlusPlus:   ast.PrefixIncrementKind,
	cst.TagPunctMinusMinus: ast.PrefixDecrementKind,
	cst.TagPunctBang:       ast.LogicalComplementKind,
	cst.TagPunctTilde:      ast.BitwiseComplementKind,
}

// PrefixKind maps a punctuation tag to its prefix unary operator Kind.
func PrefixKind(tag cst.Tag) (ast.Kind, error) {
	if k, ok := prefixKinds[tag]; ok {
		return k, nil
	}
	return ast.KindNone, langerr.UnknownOperator(tag, "prefix")
}

var postfixKinds = map[cst.Tag]ast.Kind{
	cst.TagPunctPlusPlus:   ast.PostfixIncrementKind,
	cst.TagPunctMinusMinus: ast.PostfixDecrementKind,
}

// PostfixKind maps a punctuation tag to its postfix unary operator Kind.
func PostfixKind(tag cst.Tag) (ast.Kind, error) {
	if k, ok := postfixKinds[tag]; ok {
		return k, nil
	}
	return ast.KindNone, langerr.UnknownOperator(tag, "postfix")
}

var assignmentKinds = map[cst.Tag]ast.Kind{
	cst.TagPunctEq:        ast.AssignmentKind,
	cst.TagPunctPlusEq:    ast.PlusAssignmentKind,
	cst.TagPunctMinusEq:   ast.MinusAssignmentKind,
	cst.TagPunctStarEq:    ast.MultiplyAssignmentKind,
	cst.TagPunctSlashEq:   ast.DivideAssignmentKind,
	cst.TagPunctPercentEq: ast.RemainderAssignmentKind,
	cst.TagPunctAmpEq:     ast.AndAssignmentKind,
	cst.TagPunctPipeEq:    ast.OrAssignmentKind,
	cst.TagPunctCaretEq:   ast.XorAssignmentKind,
	cst.TagPunctShlEq:     ast.LeftShiftAssignmentKind,
	cst.TagPunctShrEq:     ast.RightShiftAssignmentKind,
	cst.TagPunctUshrEq:    ast.UnsignedRightShiftAssignmentKind,
}

// AssignmentKind maps a punctuation tag to its assignment operator Kind.
func AssignmentKind(tag cst.Tag) (ast.Kind, error) {
	if k, ok := assignmentKinds[tag]; ok {
		return k, nil
	}
	return ast.KindNone, langerr.UnknownOperator(tag, "assignment")
}

var modifierKinds = map[cst.Tag]ast.Modifier{
	cst.TagKeywordPublic:       ast.ModifierPublic,
	cst.TagKeywordPrivate:      ast.ModifierPrivate,
	cst.TagKeywordProtected:    ast.ModifierProtected,
	cst.TagKeywordStatic:       ast.ModifierStatic,
	cst.TagKeywordFinal:        ast.ModifierFinal,
	cst.TagKeywordAbstract:     ast.ModifierAbstract,
	cst.TagKeywordSynchronized: ast.ModifierSynchronized,
	cst.TagKeywordNative:       ast.ModifierNative,
	cst.TagKeywordTransient:    ast.ModifierTransient,
}

// ModifierKind maps a modifier keyword tag to its Modifier.
func ModifierKind(tag cst.Tag) (ast.Modifier, error) {
	if m, ok := modifierKinds[tag]; ok {
		return m, nil
	}
	return 0, langerr.UnknownOperator(tag, "modifier")
}
