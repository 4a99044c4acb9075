package check

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langcore/javacore/internal/ast"
)

type panickingCheck struct{}

func (panickingCheck) RuleKey() string       { return "PANIC" }
func (panickingCheck) ScanFile(ctx *Context) { panic("boom") }

type issuingCheck struct{ key string }

func (c issuingCheck) RuleKey() string { return c.key }
func (c issuingCheck) ScanFile(ctx *Context) {
	ctx.AddIssue(&ast.CompilationUnit{}, c.key, "found something")
}

func TestContext_AddIssueAssignsIDAndLine(t *testing.T) {
	cu := &ast.CompilationUnit{}
	ctx := NewContext(cu)

	ctx.AddIssue(cu, "S0000", "example")

	require.Len(t, ctx.Issues(), 1)
	issue := ctx.Issues()[0]
	assert.NotEmpty(t, issue.ID)
	assert.Equal(t, "S0000", issue.RuleKey)
	assert.Equal(t, "example", issue.Message)
	assert.Equal(t, cu.Line(), issue.Line)
}

func TestScanner_IsolatesPanickingCheck(t *testing.T) {
	logger, hook := test.NewNullLogger()
	scanner := NewScanner(logger, panickingCheck{}, issuingCheck{key: "S0001"})

	issues := scanner.ScanFile(&ast.CompilationUnit{})

	require.Len(t, issues, 1)
	assert.Equal(t, "S0001", issues[0].RuleKey)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "PANIC", hook.Entries[0].Data["rule"])
}

func TestScanner_PreservesTraversalOrderAcrossChecks(t *testing.T) {
	logger, _ := test.NewNullLogger()
	scanner := NewScanner(logger, issuingCheck{key: "S0001"}, issuingCheck{key: "S0002"})

	issues := scanner.ScanFile(&ast.CompilationUnit{})

	require.Len(t, issues, 2)
	assert.Equal(t, "S0001", issues[0].RuleKey)
	assert.Equal(t, "S0002", issues[1].RuleKey)
}
