// Package session couples an execution ledger with a workflow-state document
// and owns their persistence under the logs/ and reports/ directories. The
// Manager is an explicitly constructed service created once at process start
// and passed to whatever needs it; there is no package-level singleton.
package session

import (
	"fmt"
	"time"

	"github.com/dusk-indust/mentor/internal/ledger"
	"github.com/dusk-indust/mentor/internal/report"
)

// LogEntry is one timestamped line in the workflow execution log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// ToolCall records one tool invocation in the workflow state.
type ToolCall struct {
	Timestamp time.Time `json:"timestamp"`
	Tool      string    `json:"tool"`
	Arguments string    `json:"arguments"`
	Result    string    `json:"result,omitempty"`
}

// maxToolResultLen bounds the stored preview of a tool result.
const maxToolResultLen = 200

// WorkflowState is the JSON-serializable state document of one session: the
// user query, named data slots filled in by pipeline stages, the execution
// log, the tool-call log, and the final report text.
type WorkflowState struct {
	SessionID     string         `json:"sessionId"`
	CreatedAt     time.Time      `json:"createdAt"`
	Query         string         `json:"query"`
	Data          map[string]any `json:"data"`
	ExecutionLogs []LogEntry     `json:"executionLogs"`
	ToolCalls     []ToolCall     `json:"toolCalls"`
	FinalReport   string         `json:"finalReport,omitempty"`
}

// defaultDataSlots are the named stage outputs a mentoring run fills in.
func defaultDataSlots() map[string]any {
	return map[string]any{
		"project_roadmap":      "",
		"complexity_analysis":  nil,
		"architecture_design":  "",
		"validated_tech_stack": nil,
		"curated_resources":    []any{},
		"code_analysis":        nil,
		"best_practices":       []any{},
		"validation_report":    nil,
	}
}

// Session is one live mentoring run: its ledger plus its workflow state.
// All methods are safe for concurrent use through the manager's lock.
type Session struct {
	id      string
	mgr     *Manager
	ledger  *ledger.Ledger
	state   WorkflowState
	started time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Ledger returns the session's execution ledger for direct lifecycle calls
// (AgentStart, AgentEnd, LogError, Watch).
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Store sets a named data slot in the workflow state and logs the write.
func (s *Session) Store(key string, value any) {
	s.mgr.mu.Lock()
	defer s.mgr.mu.Unlock()
	s.state.Data[key] = value
	s.logEventLocked("INFO", fmt.Sprintf("stored %q", key))
}

// Retrieve reads a named data slot. The second return value is false when
// the slot was never written.
func (s *Session) Retrieve(key string) (any, bool) {
	s.mgr.mu.Lock()
	defer s.mgr.mu.Unlock()
	v, ok := s.state.Data[key]
	return v, ok
}

// LogEvent appends a line to the workflow execution log.
func (s *Session) LogEvent(level, message string) {
	s.mgr.mu.Lock()
	defer s.mgr.mu.Unlock()
	s.logEventLocked(level, message)
}

func (s *Session) logEventLocked(level, message string) {
	s.state.ExecutionLogs = append(s.state.ExecutionLogs, LogEntry{
		Timestamp: s.mgr.now(),
		Level:     level,
		Message:   message,
	})
}

// LogToolCall records a tool invocation in both the workflow state and the
// ledger. The result preview is truncated.
func (s *Session) LogToolCall(agentName, tool, arguments, result string) {
	s.mgr.mu.Lock()
	if len(result) > maxToolResultLen {
		result = result[:maxToolResultLen]
	}
	s.state.ToolCalls = append(s.state.ToolCalls, ToolCall{
		Timestamp: s.mgr.now(),
		Tool:      tool,
		Arguments: arguments,
		Result:    result,
	})
	s.logEventLocked("INFO", fmt.Sprintf("tool executed: %s", tool))
	s.mgr.mu.Unlock()

	// Ledger failures here are downgraded: the tool already ran, and the
	// record in the workflow state is kept regardless.
	if err := s.ledger.ToolUse(agentName, tool, arguments); err != nil {
		s.mgr.logger.Warn("tool use not recorded in ledger", "tool", tool, "err", err)
	}
}

// SetFinalReport stores the rendered report text in the workflow state.
func (s *Session) SetFinalReport(text string) {
	s.mgr.mu.Lock()
	defer s.mgr.mu.Unlock()
	s.state.FinalReport = text
}

// Finish ends the ledger, persists the execution report under the logs
// directory, and returns the report. A report-save failure is reported but
// does not undo the state transition — running stages must never fail
// because logging failed.
func (s *Session) Finish(success bool) (*ledger.Report, error) {
	if err := s.ledger.End(success); err != nil {
		return nil, err
	}

	rep, err := s.ledger.Report()
	if err != nil {
		return nil, err
	}

	if _, err := s.ledger.SaveReport(s.mgr.cfg.LogsDir, ""); err != nil {
		s.mgr.logger.Error("failed to save execution report", "err", err)
	}
	return rep, nil
}

// ExportState writes the workflow state as a timestamp-suffixed JSON
// document under the logs directory and returns its path.
func (s *Session) ExportState() (string, error) {
	s.mgr.mu.Lock()
	state := s.state
	s.mgr.mu.Unlock()
	return s.mgr.writeWorkflowState(&state)
}

// WriteReport renders the session as a Markdown report under the reports
// directory and returns its path. The ledger must have ended.
func (s *Session) WriteReport(responseText string) (string, error) {
	rep, err := s.ledger.Report()
	if err != nil {
		return "", err
	}

	s.mgr.mu.Lock()
	query := s.state.Query
	s.mgr.mu.Unlock()

	doc := report.RenderSession(query, responseText, rep, s.mgr.now())
	return s.mgr.writeMarkdownReport(doc)
}
