// Package ledger records the lifecycle of stages run by an external
// orchestrator as an append-only, timestamped event log keyed by session,
// and derives a per-session performance report from it. It is a best-effort
// observability tool, not a transactional log: losing one stage's timing
// must never abort the whole session record.
package ledger

import "time"

// EventType identifies one kind of ledger entry.
type EventType string

const (
	EventExecutionStart EventType = "EXECUTION_START"
	EventAgentStart     EventType = "AGENT_START"
	EventAgentComplete  EventType = "AGENT_COMPLETE"
	EventToolUse        EventType = "TOOL_USE"
	EventError          EventType = "ERROR"
	EventExecutionEnd   EventType = "EXECUTION_END"
)

// Truncation limits applied to free-text payload fields so a single runaway
// prompt cannot bloat the log.
const (
	maxQueryLen   = 200
	maxPreviewLen = 100
	maxToolInput  = 200
)

// Event is one ledger entry. Payload fields beyond Timestamp, SessionID, and
// Type are populated per event kind and omitted otherwise.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
	Type      EventType `json:"eventType"`

	// EXECUTION_START
	Query string `json:"query,omitempty"`

	// AGENT_START, AGENT_COMPLETE, TOOL_USE, ERROR
	AgentName string `json:"agentName,omitempty"`

	// AGENT_COMPLETE
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
	OutputPreview   string  `json:"outputPreview,omitempty"`

	// TOOL_USE
	ToolName  string `json:"toolName,omitempty"`
	ToolInput string `json:"toolInput,omitempty"`

	// ERROR
	Error *ErrorRecord `json:"error,omitempty"`

	// EXECUTION_END
	Success              *bool   `json:"success,omitempty"`
	TotalDurationSeconds float64 `json:"totalDurationSeconds,omitempty"`
	AgentsExecuted       int     `json:"agentsExecuted,omitempty"`
	ErrorsCount          int     `json:"errorsCount,omitempty"`
}

// ErrorRecord describes one error reported during a session.
type ErrorRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	SessionID    string    `json:"sessionId"`
	AgentName    string    `json:"agentName"`
	ErrorType    string    `json:"errorType"`
	ErrorMessage string    `json:"errorMessage"`
}

// truncate limits s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
