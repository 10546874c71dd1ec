package ledger

import (
	"sort"
	"time"
)

// AgentPerformance is the derived timing of one agent within a session.
type AgentPerformance struct {
	AgentName       string    `json:"agentName"`
	DurationSeconds float64   `json:"durationSeconds"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
}

// ExecutionSummary condenses a completed session.
type ExecutionSummary struct {
	StartTime            time.Time `json:"startTime"`
	EndTime              time.Time `json:"endTime"`
	TotalDurationSeconds float64   `json:"totalDurationSeconds"`
	TotalAgents          int       `json:"totalAgents"`
	TotalErrors          int       `json:"totalErrors"`
	Success              bool      `json:"success"`
}

// Report is the self-describing execution report of one completed session.
type Report struct {
	SessionID        string             `json:"sessionId"`
	Summary          ExecutionSummary   `json:"executionSummary"`
	AgentPerformance []AgentPerformance `json:"agentPerformance"`
	Errors           []ErrorRecord      `json:"errors"`
	EventCount       int                `json:"eventCount"`
	FullLog          []Event            `json:"fullLog"`
}

// Report derives the execution report. It fails with ErrNotReady until End
// has been called.
func (l *Ledger) Report() (*Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateCompleted && l.state != StateFailed {
		return nil, ErrNotReady
	}

	perf := make([]AgentPerformance, 0, len(l.timings))
	for _, name := range l.order {
		t := l.timings[name]
		end := t.end
		if !t.ended {
			end = l.end
		}
		perf = append(perf, AgentPerformance{
			AgentName:       name,
			DurationSeconds: t.duration,
			StartTime:       t.start,
			EndTime:         end,
		})
	}

	// Longest-running agents first; ties break by name so the order is
	// reproducible.
	sort.SliceStable(perf, func(i, j int) bool {
		if perf[i].DurationSeconds != perf[j].DurationSeconds {
			return perf[i].DurationSeconds > perf[j].DurationSeconds
		}
		return perf[i].AgentName < perf[j].AgentName
	})

	events := make([]Event, len(l.events))
	copy(events, l.events)

	errs := make([]ErrorRecord, len(l.errs))
	copy(errs, l.errs)

	return &Report{
		SessionID: l.sessionID,
		Summary: ExecutionSummary{
			StartTime:            l.start,
			EndTime:              l.end,
			TotalDurationSeconds: l.end.Sub(l.start).Seconds(),
			TotalAgents:          len(l.timings),
			TotalErrors:          len(l.errs),
			Success:              l.state == StateCompleted,
		},
		AgentPerformance: perf,
		Errors:           errs,
		EventCount:       len(events),
		FullLog:          events,
	}, nil
}
