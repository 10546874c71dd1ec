package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/mentor/internal/scoring"
	"github.com/dusk-indust/mentor/internal/session"
)

// MentorService holds the analyzer and scorer used by MCP tool handlers.
// When a session is attached, every tool call is recorded in its ledger as a
// TOOL_USE event; recording failures never fail the tool call itself.
type MentorService struct {
	analyzer *scoring.Analyzer
	scorer   *scoring.Scorer
	session  *session.Session
}

// NewMentorService creates a MentorService with the given analyzer and scorer.
func NewMentorService(analyzer *scoring.Analyzer, scorer *scoring.Scorer) *MentorService {
	return &MentorService{analyzer: analyzer, scorer: scorer}
}

// AttachSession routes tool-use records for subsequent calls into the given
// session's ledger. Passing nil detaches.
func (s *MentorService) AttachSession(sess *session.Session) {
	s.session = sess
}

// callerAgent labels ledger entries for tool calls arriving over MCP, where
// the invoking agent's identity is not part of the protocol.
const callerAgent = "mcp-client"

func (s *MentorService) recordToolUse(tool, input string) {
	if s.session == nil {
		return
	}
	s.session.LogToolCall(callerAgent, tool, input, "")
}

// AnalyzeCodeComplexity parses a code sample and returns its complexity
// report. Malformed code returns the parse error to the caller; it is not
// folded into a low-quality report.
func (s *MentorService) AnalyzeCodeComplexity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeCodeComplexityInput,
) (*mcp.CallToolResult, AnalyzeCodeComplexityOutput, error) {
	if strings.TrimSpace(input.Code) == "" {
		return nil, AnalyzeCodeComplexityOutput{}, fmt.Errorf("code is required")
	}
	lang, ok := scoring.ParseLanguage(input.Language)
	if !ok {
		return nil, AnalyzeCodeComplexityOutput{}, fmt.Errorf("unsupported language: %q", input.Language)
	}

	s.recordToolUse("analyze_code_complexity", fmt.Sprintf("language=%s bytes=%d", lang, len(input.Code)))

	report, err := s.analyzer.AnalyzeComplexity([]byte(input.Code), lang)
	if err != nil {
		return nil, AnalyzeCodeComplexityOutput{}, err
	}
	return nil, AnalyzeCodeComplexityOutput{Report: *report}, nil
}

// ScoreResourceQuality scores a learning resource. Supplying lastUpdatedYear
// selects the recency-weighted variant.
func (s *MentorService) ScoreResourceQuality(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScoreResourceQualityInput,
) (*mcp.CallToolResult, ScoreResourceQualityOutput, error) {
	if input.URL == "" {
		return nil, ScoreResourceQualityOutput{}, fmt.Errorf("url is required")
	}
	if input.ResourceType == "" {
		return nil, ScoreResourceQualityOutput{}, fmt.Errorf("resourceType is required")
	}

	s.recordToolUse("score_resource_quality", input.URL)

	var quality scoring.QualityScore
	if input.LastUpdatedYear > 0 {
		quality = s.scorer.ScoreResourceWithRecency(input.URL, input.ResourceType, input.Source, input.LastUpdatedYear)
	} else {
		quality = s.scorer.ScoreResource(input.URL, input.ResourceType, input.Source)
	}
	return nil, ScoreResourceQualityOutput{Quality: quality}, nil
}

// CalculateProjectComplexity scores a project scope.
func (s *MentorService) CalculateProjectComplexity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalculateProjectComplexityInput,
) (*mcp.CallToolResult, CalculateProjectComplexityOutput, error) {
	s.recordToolUse("calculate_project_complexity",
		fmt.Sprintf("features=%d team=%d months=%d stack=%d",
			len(input.Features), input.TeamSize, input.TimelineMonths, input.TechStackCount))

	analysis, err := s.scorer.ScoreProjectComplexity(
		input.Features, input.TeamSize, input.TimelineMonths, input.TechStackCount)
	if err != nil {
		return nil, CalculateProjectComplexityOutput{}, err
	}
	return nil, CalculateProjectComplexityOutput{Analysis: *analysis}, nil
}

// ValidateTechStack checks a frontend/backend/database combination.
func (s *MentorService) ValidateTechStack(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateTechStackInput,
) (*mcp.CallToolResult, ValidateTechStackOutput, error) {
	if input.Frontend == "" || input.Backend == "" || input.Database == "" {
		return nil, ValidateTechStackOutput{}, fmt.Errorf("frontend, backend, and database are required")
	}

	s.recordToolUse("validate_tech_stack",
		fmt.Sprintf("%s/%s/%s", input.Frontend, input.Backend, input.Database))

	compat := s.scorer.ValidateStack(input.Frontend, input.Backend, input.Database, input.AdditionalTools)
	return nil, ValidateTechStackOutput{Compatibility: compat}, nil
}
