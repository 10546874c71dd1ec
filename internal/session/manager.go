package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dusk-indust/mentor/internal/ledger"
)

// Config holds the manager's filesystem layout.
type Config struct {
	// AppName labels sessions in logs. Defaults to "mentor".
	AppName string

	// LogsDir receives workflow_state_*.json and execution_report_*.json.
	// Defaults to "logs".
	LogsDir string

	// ReportsDir receives mentor_report_*.md. Defaults to "reports".
	ReportsDir string
}

func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "mentor"
	}
	if c.LogsDir == "" {
		c.LogsDir = "logs"
	}
	if c.ReportsDir == "" {
		c.ReportsDir = "reports"
	}
}

// timestampLayout suffixes persisted filenames, one file per run.
const timestampLayout = "20060102_150405"

// Manager creates and tracks sessions and owns the logs/ and reports/
// directories they persist into.
type Manager struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager constructs a Manager. A nil logger falls back to slog.Default.
func NewManager(cfg Config, logger *slog.Logger) *Manager {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:      cfg,
		logger:   logger.With("app", cfg.AppName),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// SetClock replaces the wall clock, for tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Begin creates a session for the given user query, starts its ledger, and
// registers it with the manager.
func (m *Manager) Begin(query string) (*Session, error) {
	id := uuid.NewString()

	led := ledger.New(id, m.logger)
	if err := led.Start(query); err != nil {
		return nil, fmt.Errorf("session: start ledger: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		id:      id,
		mgr:     m,
		ledger:  led,
		started: m.now(),
		state: WorkflowState{
			SessionID:     id,
			CreatedAt:     m.now(),
			Query:         query,
			Data:          defaultDataSlots(),
			ExecutionLogs: []LogEntry{},
			ToolCalls:     []ToolCall{},
		},
	}
	m.sessions[id] = s

	m.logger.Info("session created", "session", id)
	return s, nil
}

// Get returns a registered session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a finished session from the registry. Its persisted files
// remain.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// LogsDir returns the directory execution logs are written to.
func (m *Manager) LogsDir() string { return m.cfg.LogsDir }

// ReportsDir returns the directory Markdown reports are written to.
func (m *Manager) ReportsDir() string { return m.cfg.ReportsDir }

// writeWorkflowState persists one workflow-state document with a timestamp
// suffix and returns its path.
func (m *Manager) writeWorkflowState(state *WorkflowState) (string, error) {
	if err := os.MkdirAll(m.cfg.LogsDir, 0o755); err != nil {
		return "", fmt.Errorf("session: mkdir %s: %w", m.cfg.LogsDir, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("session: marshal workflow state: %w", err)
	}

	path := filepath.Join(m.cfg.LogsDir,
		fmt.Sprintf("workflow_state_%s.json", m.now().Format(timestampLayout)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("session: write %s: %w", path, err)
	}

	m.logger.Info("workflow state exported", "path", path)
	return path, nil
}

// writeMarkdownReport persists one rendered report with a timestamp suffix
// and returns its path.
func (m *Manager) writeMarkdownReport(doc string) (string, error) {
	if err := os.MkdirAll(m.cfg.ReportsDir, 0o755); err != nil {
		return "", fmt.Errorf("session: mkdir %s: %w", m.cfg.ReportsDir, err)
	}

	path := filepath.Join(m.cfg.ReportsDir,
		fmt.Sprintf("mentor_report_%s.md", m.now().Format(timestampLayout)))
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("session: write %s: %w", path, err)
	}

	m.logger.Info("markdown report saved", "path", path)
	return path, nil
}

// LoadWorkflowState reads a persisted workflow-state document.
func LoadWorkflowState(path string) (*WorkflowState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	var state WorkflowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", path, err)
	}
	return &state, nil
}
