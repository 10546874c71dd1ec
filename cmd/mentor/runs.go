package main

import (
	"fmt"

	"github.com/dusk-indust/mentor/internal/status"
)

// runRuns lists recorded sessions, newest first.
func runRuns(flags cliFlags) error {
	logsDir := flags.LogsDir
	if logsDir == "" {
		logsDir = "logs"
	}
	reportsDir := flags.ReportsDir
	if reportsDir == "" {
		reportsDir = "reports"
	}

	runs, err := status.ScanRuns(logsDir, reportsDir)
	if err != nil {
		return fmt.Errorf("scanning runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded sessions found.")
		return nil
	}

	for i, run := range runs {
		if i > 0 {
			fmt.Println()
		}
		printRun(run)
	}
	return nil
}

func printRun(run status.RunInfo) {
	outcome := "unfinished"
	if run.Success != nil {
		if *run.Success {
			outcome = "completed"
		} else {
			outcome = "failed"
		}
	}

	fmt.Printf("Session: %s\n", run.SessionID)
	fmt.Printf("  Time:     %s\n", run.Timestamp)
	fmt.Printf("  Query:    %s\n", run.Query)
	fmt.Printf("  Outcome:  %s\n", outcome)
	if run.Success != nil {
		fmt.Printf("  Agents:   %d\n", run.AgentsExecuted)
		fmt.Printf("  Errors:   %d\n", run.ErrorCount)
		fmt.Printf("  Duration: %.2fs\n", run.DurationSeconds)
	}
	if run.MarkdownPath != "" {
		fmt.Printf("  Report:   %s\n", run.MarkdownPath)
	}
}
