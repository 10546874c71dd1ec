package main

import (
	"fmt"
	"time"

	"github.com/dusk-indust/mentor/internal/ledger"
	"github.com/dusk-indust/mentor/internal/report"
	"github.com/dusk-indust/mentor/internal/status"
)

// runReport renders a markdown report for a recorded session. With no
// argument it picks the most recent run.
func runReport(flags cliFlags, args []string) error {
	logsDir := flags.LogsDir
	if logsDir == "" {
		logsDir = "logs"
	}
	reportsDir := flags.ReportsDir
	if reportsDir == "" {
		reportsDir = "reports"
	}

	var run *status.RunInfo
	if len(args) > 0 {
		runs, err := status.ScanRuns(logsDir, reportsDir)
		if err != nil {
			return fmt.Errorf("scanning runs: %w", err)
		}
		for i := range runs {
			if runs[i].SessionID == args[0] {
				run = &runs[i]
				break
			}
		}
		if run == nil {
			return fmt.Errorf("no recorded session %q", args[0])
		}
	} else {
		latest, err := status.LatestRun(logsDir, reportsDir)
		if err != nil {
			return fmt.Errorf("scanning runs: %w", err)
		}
		if latest == nil {
			return fmt.Errorf("no recorded sessions in %s", logsDir)
		}
		run = latest
	}

	if run.ReportPath == "" {
		return fmt.Errorf("session %s has no execution report; it may not have finished", run.SessionID)
	}
	rep, err := ledger.LoadReport(run.ReportPath)
	if err != nil {
		return fmt.Errorf("loading execution report: %w", err)
	}

	fmt.Print(report.RenderSession(run.Query, "", rep, time.Now()))
	return nil
}
