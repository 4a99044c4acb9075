// Package langerr provides standardized error messaging for the AST core.
package langerr

import (
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors.
type ErrorCategory string

const (
	CategorySyntax     ErrorCategory = "SYNTAX"
	CategoryValidation ErrorCategory = "VALIDATION"
)

// StandardError provides a consistent error format.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError creates a new standardized error.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// MalformedAst reports that the concrete tree violated the expected
// grammar-tag shape at a given site (spec §7). Fatal to the compilation
// unit; the builder does not recover and never returns a partial AST.
func MalformedAst(tag fmt.Stringer) *StandardError {
	return NewStandardError(CategorySyntax, "MALFORMED_AST",
		fmt.Sprintf("unexpected concrete-tree shape at tag %s", tag),
		map[string]interface{}{"tag": tag.String()})
}

// MalformedAstf is MalformedAst with a caller-supplied detail message.
func MalformedAstf(tag fmt.Stringer, format string, args ...interface{}) *StandardError {
	return NewStandardError(CategorySyntax, "MALFORMED_AST",
		fmt.Sprintf("%s (tag %s)", fmt.Sprintf(format, args...), tag),
		map[string]interface{}{"tag": tag.String()})
}

// UnknownOperator reports a punctuation or keyword tag not recognised in
// the requested operator or modifier category. Treated identically to
// MalformedAst by callers.
func UnknownOperator(tag fmt.Stringer, category string) *StandardError {
	return NewStandardError(CategorySyntax, "UNKNOWN_OPERATOR",
		fmt.Sprintf("tag %s does not belong to operator category %s", tag, category),
		map[string]interface{}{"tag": tag.String(), "category": category})
}
