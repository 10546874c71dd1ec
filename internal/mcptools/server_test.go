//go:build cgo

package mcptools

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/mentor/internal/scoring"
)

// setupServerClient wires an MCP server and client together using in-memory
// transports and returns the connected client session.
func setupServerClient(t *testing.T) *mcp.ClientSession {
	t.Helper()

	svc := NewMentorService(scoring.NewAnalyzer(), scoring.NewScorerAt(2024))
	server := NewMentorMCPServer(svc)

	st, ct := mcp.NewInMemoryTransports()

	ctx := context.Background()

	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
	})

	return session
}

func TestMCPListTools(t *testing.T) {
	session := setupServerClient(t)
	ctx := context.Background()

	result, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	sort.Strings(names)

	expected := []string{
		"analyze_code_complexity",
		"calculate_project_complexity",
		"score_resource_quality",
		"validate_tech_stack",
	}
	assert.Equal(t, expected, names)
}

func TestMCPValidateTechStack(t *testing.T) {
	session := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "validate_tech_stack",
		Arguments: ValidateTechStackInput{
			Frontend: "React",
			Backend:  "Node.js",
			Database: "MongoDB",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "validate_tech_stack should not return an error")
	require.NotNil(t, result.StructuredContent)

	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)

	var output ValidateTechStackOutput
	require.NoError(t, json.Unmarshal(raw, &output))

	assert.Equal(t, "MERN", output.Compatibility.MatchedStack)
	assert.Equal(t, 85, output.Compatibility.Score)
	assert.True(t, output.Compatibility.IsCompatible)
}

func TestMCPAnalyzeCodeComplexity(t *testing.T) {
	session := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "analyze_code_complexity",
		Arguments: AnalyzeCodeComplexityInput{
			Code:     "package main\n\nfunc main() {}\n",
			Language: "go",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.NotNil(t, result.StructuredContent)

	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)

	var output AnalyzeCodeComplexityOutput
	require.NoError(t, json.Unmarshal(raw, &output))

	assert.Equal(t, scoring.LangGo, output.Report.Language)
	assert.Equal(t, 1, output.Report.Cyclomatic)
	assert.Equal(t, 1, output.Report.Functions)
}

func TestMCPCallToolErrors(t *testing.T) {
	session := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "calculate_project_complexity",
		Arguments: CalculateProjectComplexityInput{
			Features:       []string{"auth"},
			TeamSize:       2,
			TimelineMonths: 0,
		},
	})
	require.NoError(t, err, "tool-level failures surface as IsError, not transport errors")
	assert.True(t, result.IsError)
}
