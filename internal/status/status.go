// Package status inspects saved run artifacts and summarizes past sessions.
package status

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dusk-indust/mentor/internal/ledger"
	"github.com/dusk-indust/mentor/internal/session"
)

// RunInfo describes one recorded session reconstructed from disk.
type RunInfo struct {
	SessionID       string
	Timestamp       string // from the workflow state filename, "" if unknown
	Query           string
	StatePath       string
	ReportPath      string // execution report JSON, "" when missing
	MarkdownPath    string // rendered markdown report, "" when missing
	AgentsExecuted  int
	ErrorCount      int
	DurationSeconds float64
	Success         *bool // nil when no execution report exists
}

// ScanRuns walks the logs and reports directories and pairs workflow state
// files with their execution reports and rendered markdown reports.
// Runs are returned newest first.
func ScanRuns(logsDir, reportsDir string) ([]RunInfo, error) {
	entries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunInfo
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "workflow_state_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		statePath := filepath.Join(logsDir, name)
		state, err := session.LoadWorkflowState(statePath)
		if err != nil {
			continue // corrupt state file, skip
		}

		run := RunInfo{
			SessionID: state.SessionID,
			Timestamp: strings.TrimSuffix(strings.TrimPrefix(name, "workflow_state_"), ".json"),
			Query:     state.Query,
			StatePath: statePath,
		}

		reportPath := ledger.DefaultReportPath(logsDir, state.SessionID)
		if rep, err := ledger.LoadReport(reportPath); err == nil {
			run.ReportPath = reportPath
			run.AgentsExecuted = rep.Summary.TotalAgents
			run.ErrorCount = rep.Summary.TotalErrors
			run.DurationSeconds = rep.Summary.TotalDurationSeconds
			success := rep.Summary.Success
			run.Success = &success
		}

		mdPath := filepath.Join(reportsDir, "mentor_report_"+run.Timestamp+".md")
		if _, err := os.Stat(mdPath); err == nil {
			run.MarkdownPath = mdPath
		}

		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp > runs[j].Timestamp
	})
	return runs, nil
}

// LatestRun returns the most recent run, or nil when none exist.
func LatestRun(logsDir, reportsDir string) (*RunInfo, error) {
	runs, err := ScanRuns(logsDir, reportsDir)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}
