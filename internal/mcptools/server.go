package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewMentorMCPServer creates an MCP server with all 4 scoring tools registered.
func NewMentorMCPServer(svc *MentorService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "mentor-scoring",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_code_complexity",
		Description: "Analyzes source code complexity: cyclomatic complexity, lines of code, functions, classes, imports, and control structures. Returns a structured complexity report with a quality score and recommendation.",
	}, svc.AnalyzeCodeComplexity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_resource_quality",
		Description: "Scores educational resources based on source reputation, resource type, and optionally last-updated recency. Returns a bounded quality score with rating and recommendation.",
	}, svc.ScoreResourceQuality)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calculate_project_complexity",
		Description: "Calculates a project complexity score from features, team size, timeline, and technology stack size. Returns difficulty level, risk factors, and a suggested timeline.",
	}, svc.CalculateProjectComplexity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_tech_stack",
		Description: "Validates technology stack compatibility for frontend, backend, and database combinations. Returns a compatibility assessment with issues and recommendations.",
	}, svc.ValidateTechStack)

	return server
}

// RunMCPServer starts an HTTP server exposing the mentor scoring MCP tools.
func RunMCPServer(ctx context.Context, svc *MentorService, addr string) error {
	server := NewMentorMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
