package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dusk-indust/mentor/internal/ledger"
	"github.com/dusk-indust/mentor/internal/scoring"
)

func TestRenderSession(t *testing.T) {
	rep := &ledger.Report{
		SessionID: "sess-9",
		Summary: ledger.ExecutionSummary{
			StartTime:            time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2025, 3, 1, 10, 0, 42, 0, time.UTC),
			TotalDurationSeconds: 42,
			TotalAgents:          2,
			TotalErrors:          1,
			Success:              true,
		},
		AgentPerformance: []ledger.AgentPerformance{
			{AgentName: "planner", DurationSeconds: 30.5},
			{AgentName: "reviewer", DurationSeconds: 11.5},
		},
		Errors: []ledger.ErrorRecord{
			{AgentName: "reviewer", ErrorType: "*errors.errorString", ErrorMessage: "flaky upstream"},
		},
	}

	doc := RenderSession("teach me go", "Start with the tour.", rep,
		time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC))

	assert.Contains(t, doc, "# Software Engineering Mentor - Session Report")
	assert.Contains(t, doc, "**Generated:** 2025-03-01 11:00:00")
	assert.Contains(t, doc, "**Session:** sess-9")
	assert.Contains(t, doc, "teach me go")
	assert.Contains(t, doc, "Start with the tour.")
	assert.Contains(t, doc, "- **Total Duration:** 42.00s")
	assert.Contains(t, doc, "- **Agents Executed:** 2")
	assert.Contains(t, doc, "| planner | 30.50 |")
	assert.Contains(t, doc, "| reviewer | 11.50 |")
	assert.Contains(t, doc, "- **reviewer** (*errors.errorString): flaky upstream")
}

func TestRenderSession_NoAgentsNoErrors(t *testing.T) {
	rep := &ledger.Report{SessionID: "sess-0"}
	doc := RenderSession("q", "r", rep, time.Now())

	assert.NotContains(t, doc, "### Agent Performance")
	assert.NotContains(t, doc, "### Errors")
}

func TestRenderComplexity(t *testing.T) {
	r := &scoring.ComplexityReport{
		Language:       scoring.LangGo,
		Functions:      2,
		Lines:          40,
		Cyclomatic:     4,
		Level:          scoring.ComplexityLow,
		QualityScore:   80,
		Recommendation: "Code is simple and maintainable",
		FunctionSpans: []scoring.FunctionSpan{
			{Name: "greet", StartLine: 3, EndLine: 8, Lines: 5},
		},
	}

	doc := RenderComplexity(r)
	assert.Contains(t, doc, "- **Cyclomatic Complexity**: 4")
	assert.Contains(t, doc, "- greet(): 5 lines")
	assert.Contains(t, doc, "### Code Quality Score: 80/100")
	assert.NotContains(t, doc, "No functions found")
}

func TestRenderQuality_RecencyLineOnlyWhenPresent(t *testing.T) {
	with := RenderQuality(scoring.QualityScore{Score: 90, HasRecency: true, RecencyScore: 75})
	assert.Contains(t, with, "- Recency: 75/100")

	without := RenderQuality(scoring.QualityScore{Score: 90})
	assert.NotContains(t, without, "Recency")
	assert.Contains(t, without, "- Standard quality resource")
}

func TestRenderProject(t *testing.T) {
	doc := RenderProject(&scoring.ProjectComplexity{
		Score:                   242,
		Difficulty:              scoring.DifficultyVeryHigh,
		SuggestedTimelineMonths: 8,
		RiskFactors:             []string{"Tight timeline", "Small team"},
		Recommendation:          "Consider breaking into smaller phases, expanding team, or extending timeline",
	})

	assert.Contains(t, doc, "### Complexity Score: 242.00")
	assert.Contains(t, doc, "### Suggested Timeline: 8 months")
	assert.Contains(t, doc, "- Tight timeline")
	assert.Contains(t, doc, "- Small team")
}

func TestRenderStack(t *testing.T) {
	doc := RenderStack(scoring.StackCompatibility{
		Frontend:        "React",
		Backend:         "Node.js",
		Database:        "MongoDB",
		Level:           scoring.CompatibilityExcellent,
		Score:           85,
		MatchedStack:    "MERN",
		Issues:          []string{"No major issues detected"},
		Recommendations: []string{"Stack looks good!"},
	})

	assert.Contains(t, doc, "### Compatibility: Excellent (score 85)")
	assert.Contains(t, doc, "### Matched Stack: MERN")
	assert.NotContains(t, doc, "### Suggested Alternatives")
}

func TestRenderDir(t *testing.T) {
	d := &scoring.DirReport{
		Root: "/repo",
		Files: []scoring.FileReport{
			{Path: "/repo/a.go", Report: &scoring.ComplexityReport{Cyclomatic: 7, Lines: 60, Level: scoring.ComplexityMedium}},
			{Path: "/repo/b.py", ErrMsg: "syntax error at line 1, column 5"},
		},
		TotalLines:     60,
		MeanCyclomatic: 7,
		FailedFiles:    1,
	}

	doc := RenderDir(d)
	assert.Contains(t, doc, "- Files analyzed: 1")
	assert.Contains(t, doc, "- Files failed: 1")
	assert.Contains(t, doc, "| /repo/a.go | 7 | 60 | Medium |")
	assert.Contains(t, doc, "- /repo/b.py: syntax error at line 1, column 5")
}
