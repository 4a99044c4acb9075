// Package check implements the lint-style check harness: a context that
// accumulates issues against an immutable AST, and a scanner that drives a
// set of checks over one compilation unit, isolating each from the others'
// failures.
package check

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/langcore/javacore/internal/ast"
)

// Issue is one reported finding. ID is a random UUID generated when the
// issue is recorded: it is independent of position and unique per issue,
// but a re-scan of the same file assigns new IDs, so it does not match
// issues across re-scans.
type Issue struct {
	ID      string
	RuleKey string
	Message string
	Node    ast.Node
	Line    int
}

// Context is the per-file object a check receives from scanFile. It is
// exclusively owned by one check at a time within a file (spec §5); issue
// reporting is append-only and never mutates the AST it reads from.
type Context struct {
	tree   *ast.CompilationUnit
	issues []*Issue
}

// NewContext wraps tree for a single check pass.
func NewContext(tree *ast.CompilationUnit) *Context {
	return &Context{tree: tree}
}

// GetTree returns the root of the compilation unit being scanned.
func (c *Context) GetTree() *ast.CompilationUnit { return c.tree }

// AddIssue records a finding against node under ruleKey. node supplies the
// reported line via its own Line().
func (c *Context) AddIssue(node ast.Node, ruleKey, message string) {
	c.issues = append(c.issues, &Issue{
		ID:      uuid.New().String(),
		RuleKey: ruleKey,
		Message: message,
		Node:    node,
		Line:    node.Line(),
	})
}

// Issues returns every issue recorded so far, in traversal-encounter order.
func (c *Context) Issues() []*Issue { return c.issues }

// Check is a pair of (visitor, per-file setup): ScanFile stores the
// context and drives the visitor over the root AST. RuleKey identifies the
// check for isolation logging when it panics.
type Check interface {
	RuleKey() string
	ScanFile(ctx *Context)
}

// Scanner runs a fixed set of checks, in order, over one compilation unit
// at a time.
type Scanner struct {
	checks []Check
	log    logrus.FieldLogger
}

// NewScanner builds a Scanner that logs recovered check panics through log.
func NewScanner(log logrus.FieldLogger, checks ...Check) *Scanner {
	return &Scanner{checks: checks, log: log}
}

// ScanFile runs every registered check over tree and returns the combined,
// order-preserved issue list. A check that panics is isolated: the panic is
// logged against its rule key and the remaining checks still run.
func (s *Scanner) ScanFile(tree *ast.CompilationUnit) []*Issue {
	ctx := NewContext(tree)
	for _, c := range s.checks {
		s.runCheck(ctx, c)
	}
	return ctx.Issues()
}

func (s *Scanner) runCheck(ctx *Context, c Check) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"rule":  c.RuleKey(),
				"panic": r,
			}).Error("check panicked, skipping")
		}
	}()
	c.ScanFile(ctx)
}
