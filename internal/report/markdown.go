// Package report renders scoring results and execution records as Markdown
// documents. It consumes the ledger's final report plus the original user
// query; it performs no I/O of its own.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dusk-indust/mentor/internal/ledger"
	"github.com/dusk-indust/mentor/internal/scoring"
)

const timeLayout = "2006-01-02 15:04:05"

// RenderSession assembles the human-readable report for one completed run.
func RenderSession(query, response string, rep *ledger.Report, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Software Engineering Mentor - Session Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", generatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "**Session:** %s\n\n", rep.SessionID)
	b.WriteString("---\n\n")

	b.WriteString("## User Query\n\n")
	b.WriteString(query)
	b.WriteString("\n\n---\n\n")

	b.WriteString("## Response\n\n")
	b.WriteString(response)
	b.WriteString("\n\n---\n\n")

	b.WriteString("## Execution Summary\n\n")
	fmt.Fprintf(&b, "- **Started:** %s\n", rep.Summary.StartTime.Format(timeLayout))
	fmt.Fprintf(&b, "- **Ended:** %s\n", rep.Summary.EndTime.Format(timeLayout))
	fmt.Fprintf(&b, "- **Total Duration:** %.2fs\n", rep.Summary.TotalDurationSeconds)
	fmt.Fprintf(&b, "- **Agents Executed:** %d\n", rep.Summary.TotalAgents)
	fmt.Fprintf(&b, "- **Errors:** %d\n", rep.Summary.TotalErrors)
	fmt.Fprintf(&b, "- **Success:** %t\n", rep.Summary.Success)

	if len(rep.AgentPerformance) > 0 {
		b.WriteString("\n### Agent Performance\n\n")
		b.WriteString("| Agent | Duration (s) |\n|---|---|\n")
		for _, ap := range rep.AgentPerformance {
			fmt.Fprintf(&b, "| %s | %.2f |\n", ap.AgentName, ap.DurationSeconds)
		}
	}

	if len(rep.Errors) > 0 {
		b.WriteString("\n### Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", e.AgentName, e.ErrorType, e.ErrorMessage)
		}
	}

	b.WriteString("\n---\n")
	return b.String()
}

// RenderComplexity renders one code complexity report.
func RenderComplexity(r *scoring.ComplexityReport) string {
	var b strings.Builder

	b.WriteString("## Code Complexity Analysis\n\n")
	b.WriteString("### Metrics\n\n")
	fmt.Fprintf(&b, "- **Language**: %s\n", r.Language)
	fmt.Fprintf(&b, "- **Lines of Code**: %d\n", r.Lines)
	fmt.Fprintf(&b, "- **Cyclomatic Complexity**: %d\n", r.Cyclomatic)
	fmt.Fprintf(&b, "- **Complexity Level**: %s\n\n", r.Level)

	b.WriteString("### Structure\n\n")
	fmt.Fprintf(&b, "- **Functions**: %d\n", r.Functions)
	fmt.Fprintf(&b, "- **Classes/Types**: %d\n", r.Classes)
	fmt.Fprintf(&b, "- **Imports**: %d\n", r.Imports)
	b.WriteString("- **Control Structures**:\n")
	fmt.Fprintf(&b, "  - Conditionals: %d\n", r.Branches)
	fmt.Fprintf(&b, "  - Loops: %d\n", r.Loops)
	fmt.Fprintf(&b, "  - Exception blocks: %d\n\n", r.ExceptionBlocks)

	b.WriteString("### Function Breakdown\n\n")
	if len(r.FunctionSpans) == 0 {
		b.WriteString("No functions found\n")
	}
	for _, fn := range r.FunctionSpans {
		fmt.Fprintf(&b, "- %s(): %d lines\n", fn.Name, fn.Lines)
	}

	b.WriteString("\n### Recommendation\n\n")
	b.WriteString(r.Recommendation)
	fmt.Fprintf(&b, "\n\n### Code Quality Score: %d/100\n", r.QualityScore)
	return b.String()
}

// RenderQuality renders one resource quality score.
func RenderQuality(q scoring.QualityScore) string {
	var b strings.Builder

	b.WriteString("## Resource Quality Report\n\n")
	fmt.Fprintf(&b, "**URL**: %s\n", q.URL)
	fmt.Fprintf(&b, "**Type**: %s\n", q.ResourceType)
	fmt.Fprintf(&b, "**Source**: %s\n\n", q.Source)

	fmt.Fprintf(&b, "### Quality Score: %d/100\n", q.Score)
	fmt.Fprintf(&b, "### Rating: %s\n\n", q.Rating)

	b.WriteString("### Score Breakdown\n\n")
	fmt.Fprintf(&b, "- Source Reputation: %d/100\n", q.SourceScore)
	fmt.Fprintf(&b, "- Resource Type Quality: %d/100\n", q.TypeScore)
	if q.HasRecency {
		fmt.Fprintf(&b, "- Recency: %d/100\n", q.RecencyScore)
	}

	b.WriteString("\n### Insights\n\n")
	if len(q.Insights) == 0 {
		b.WriteString("- Standard quality resource\n")
	}
	for _, insight := range q.Insights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	b.WriteString("\n### Recommendation\n\n")
	b.WriteString(q.Recommendation)
	b.WriteString("\n")
	return b.String()
}

// RenderProject renders one project complexity analysis.
func RenderProject(p *scoring.ProjectComplexity) string {
	var b strings.Builder

	b.WriteString("## Project Complexity Analysis\n\n")
	fmt.Fprintf(&b, "### Complexity Score: %.2f\n", p.Score)
	fmt.Fprintf(&b, "### Difficulty: %s\n\n", p.Difficulty)

	b.WriteString("### Breakdown\n\n")
	fmt.Fprintf(&b, "- Feature complexity: %d\n", p.FeatureScore)
	fmt.Fprintf(&b, "- Timeline pressure: %.2f\n", p.TimelinePressure)
	fmt.Fprintf(&b, "- Team adequacy: %d\n", p.TeamFactor)
	fmt.Fprintf(&b, "- Technology complexity: %d\n\n", p.TechComplexity)

	fmt.Fprintf(&b, "### Suggested Timeline: %d months\n\n", p.SuggestedTimelineMonths)

	b.WriteString("### Risk Factors\n\n")
	for _, r := range p.RiskFactors {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	b.WriteString("\n### Recommendation\n\n")
	b.WriteString(p.Recommendation)
	b.WriteString("\n")
	return b.String()
}

// RenderStack renders one stack compatibility assessment.
func RenderStack(sc scoring.StackCompatibility) string {
	var b strings.Builder

	b.WriteString("## Technology Stack Validation\n\n")
	fmt.Fprintf(&b, "**Frontend**: %s\n", sc.Frontend)
	fmt.Fprintf(&b, "**Backend**: %s\n", sc.Backend)
	fmt.Fprintf(&b, "**Database**: %s\n\n", sc.Database)

	fmt.Fprintf(&b, "### Compatibility: %s (score %d)\n", sc.Level, sc.Score)
	fmt.Fprintf(&b, "### Matched Stack: %s\n\n", sc.MatchedStack)

	b.WriteString("### Issues\n\n")
	for _, issue := range sc.Issues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}

	b.WriteString("\n### Recommendations\n\n")
	for _, rec := range sc.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	if len(sc.SuggestedAlternatives) > 0 {
		b.WriteString("\n### Suggested Alternatives\n\n")
		for _, alt := range sc.SuggestedAlternatives {
			fmt.Fprintf(&b, "- %s\n", alt)
		}
	}
	return b.String()
}

// RenderDir renders a directory analysis summary with its worst offenders.
func RenderDir(d *scoring.DirReport) string {
	var b strings.Builder

	b.WriteString("## Repository Complexity Summary\n\n")
	fmt.Fprintf(&b, "**Root**: %s\n\n", d.Root)
	fmt.Fprintf(&b, "- Files analyzed: %d\n", len(d.Files)-d.FailedFiles)
	fmt.Fprintf(&b, "- Files failed: %d\n", d.FailedFiles)
	fmt.Fprintf(&b, "- Total significant lines: %d\n", d.TotalLines)
	fmt.Fprintf(&b, "- Mean cyclomatic complexity: %.2f\n", d.MeanCyclomatic)

	offenders := d.WorstOffenders(10)
	if len(offenders) > 0 {
		b.WriteString("\n### Most Complex Files\n\n")
		b.WriteString("| File | Cyclomatic | Lines | Level |\n|---|---|---|---|\n")
		for _, fr := range offenders {
			fmt.Fprintf(&b, "| %s | %d | %d | %s |\n",
				fr.Path, fr.Report.Cyclomatic, fr.Report.Lines, fr.Report.Level)
		}
	}

	failed := 0
	for _, fr := range d.Files {
		if fr.Report == nil {
			if failed == 0 {
				b.WriteString("\n### Failed Files\n\n")
			}
			failed++
			fmt.Fprintf(&b, "- %s: %s\n", fr.Path, fr.ErrMsg)
		}
	}
	return b.String()
}
