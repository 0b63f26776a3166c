package validation

import (
	"testing"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_TotalIssues(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected int
	}{
		{
			name:     "empty result",
			result:   Result{},
			expected: 0,
		},
		{
			name: "errors only",
			result: Result{
				Errors: []string{"error1", "error2"},
			},
			expected: 2,
		},
		{
			name: "mixed issues",
			result: Result{
				Errors:        []string{"error1"},
				Warnings:      []string{"warning1", "warning2"},
				Informational: []string{"info1"},
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.TotalIssues())
		})
	}
}

func TestFormatMatch(t *testing.T) {
	tests := []struct {
		name     string
		match    lint.Match
		expected string
	}{
		{
			name: "simple match",
			match: lint.Match{
				Rule:    lint.MatchRule{ID: "E1234"},
				Message: "Something is wrong",
			},
			expected: "E1234: Something is wrong",
		},
		{
			name: "match with path",
			match: lint.Match{
				Rule:    lint.MatchRule{ID: "W5678"},
				Message: "Warning message",
				Location: lint.MatchLocation{
					Path: []any{"Resources", "Clickstream", "Properties"},
				},
			},
			expected: "W5678: Warning message (at Resources/Clickstream/Properties)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatMatch(tt.match))
		})
	}
}

func TestLintTemplate_MissingFile(t *testing.T) {
	result, err := LintTemplate("/nonexistent/template.json")
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found")
}
