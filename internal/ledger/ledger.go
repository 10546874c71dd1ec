package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State is the lifecycle state of one session's ledger.
type State string

const (
	StateCreated   State = "created"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Sentinel errors for invalid lifecycle transitions.
var (
	// ErrLedgerClosed is returned when an event is appended after End.
	ErrLedgerClosed = errors.New("ledger: session is closed")

	// ErrNotReady is returned when a report is requested before End.
	ErrNotReady = errors.New("ledger: execution has not ended")

	// ErrNotStarted is returned when an agent or tool event arrives before
	// Start.
	ErrNotStarted = errors.New("ledger: execution has not started")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("ledger: execution already started")
)

// agentTiming tracks the bracketing timestamps of one agent's run.
type agentTiming struct {
	start    time.Time
	end      time.Time
	duration float64
	started  bool
	ended    bool
}

// Ledger is the append-only execution record of one session. A single
// orchestrator writes to it in the intended usage, but all methods are
// safe for concurrent use so that parallel stages reporting distinct agent
// names never corrupt each other's timings.
type Ledger struct {
	mu sync.Mutex

	sessionID string
	state     State
	events    []Event
	timings   map[string]*agentTiming
	order     []string // agent names in first-start order
	errs      []ErrorRecord

	start time.Time
	end   time.Time

	logger *slog.Logger
	now    func() time.Time
	stream *eventStream
}

// New creates a Ledger for the given session in state CREATED.
// A nil logger falls back to slog.Default.
func New(sessionID string, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		sessionID: sessionID,
		state:     StateCreated,
		timings:   make(map[string]*agentTiming),
		logger:    logger.With("session", sessionID),
		now:       time.Now,
		stream:    newEventStream(),
	}
}

// SetClock replaces the wall clock, for tests. It must be called before any
// events are recorded.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// SessionID returns the session this ledger belongs to.
func (l *Ledger) SessionID() string {
	return l.sessionID
}

// State returns the current lifecycle state.
func (l *Ledger) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Events returns a copy of the ordered event log recorded so far.
func (l *Ledger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Watch returns a channel emitting ledger events as they are appended.
// Emission is non-blocking; events are dropped when the subscriber falls
// behind. The channel is closed when the session ends.
func (l *Ledger) Watch() <-chan Event {
	return l.stream.Subscribe()
}

// Start transitions CREATED to RUNNING and records the EXECUTION_START
// event. It must be called exactly once, before any agent events.
func (l *Ledger) Start(query string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case StateCompleted, StateFailed:
		return ErrLedgerClosed
	case StateRunning:
		return ErrAlreadyStarted
	}

	l.start = l.now()
	l.state = StateRunning
	l.append(Event{
		Timestamp: l.start,
		SessionID: l.sessionID,
		Type:      EventExecutionStart,
		Query:     truncate(query, maxQueryLen),
	})
	l.logger.Info("execution started", "query", truncate(query, maxQueryLen))
	return nil
}

// AgentStart records the beginning of one agent's run.
func (l *Ledger) AgentStart(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRunning(); err != nil {
		return err
	}

	ts := l.now()
	t, ok := l.timings[name]
	if !ok {
		t = &agentTiming{}
		l.timings[name] = t
		l.order = append(l.order, name)
	}
	t.start = ts
	t.started = true
	t.ended = false

	l.append(Event{
		Timestamp: ts,
		SessionID: l.sessionID,
		Type:      EventAgentStart,
		AgentName: name,
	})
	l.logger.Info("agent started", "agent", name)
	return nil
}

// AgentEnd records the completion of one agent's run and computes its
// duration from the matching AgentStart. An AgentEnd with no matching start
// is downgraded to duration zero with a warning — it must never crash the
// ledger, since losing one stage's timing should not abort the session
// record.
func (l *Ledger) AgentEnd(name, outputPreview string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRunning(); err != nil {
		return err
	}

	ts := l.now()
	duration := 0.0
	t, ok := l.timings[name]
	if ok && t.started {
		duration = ts.Sub(t.start).Seconds()
		if duration < 0 {
			duration = 0
		}
		t.end = ts
		t.duration = duration
		t.ended = true
	} else {
		l.logger.Warn("agent end without matching start", "agent", name)
		if !ok {
			l.timings[name] = &agentTiming{end: ts, ended: true}
			l.order = append(l.order, name)
		}
	}

	l.append(Event{
		Timestamp:       ts,
		SessionID:       l.sessionID,
		Type:            EventAgentComplete,
		AgentName:       name,
		DurationSeconds: duration,
		OutputPreview:   truncate(outputPreview, maxPreviewLen),
	})
	l.logger.Info("agent completed", "agent", name, "duration_seconds", duration)
	return nil
}

// ToolUse records that an agent invoked a tool.
func (l *Ledger) ToolUse(agentName, toolName, toolInput string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRunning(); err != nil {
		return err
	}

	l.append(Event{
		Timestamp: l.now(),
		SessionID: l.sessionID,
		Type:      EventToolUse,
		AgentName: agentName,
		ToolName:  toolName,
		ToolInput: truncate(toolInput, maxToolInput),
	})
	l.logger.Info("tool used", "agent", agentName, "tool", toolName)
	return nil
}

// LogError records an error reported by an agent. The session keeps running;
// whether the error is fatal is the orchestrator's call.
func (l *Ledger) LogError(agentName string, err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lerr := l.requireRunning(); lerr != nil {
		return lerr
	}

	ts := l.now()
	record := ErrorRecord{
		Timestamp:    ts,
		SessionID:    l.sessionID,
		AgentName:    agentName,
		ErrorType:    fmt.Sprintf("%T", err),
		ErrorMessage: err.Error(),
	}
	l.errs = append(l.errs, record)

	l.append(Event{
		Timestamp: ts,
		SessionID: l.sessionID,
		Type:      EventError,
		AgentName: agentName,
		Error:     &record,
	})
	l.logger.Error("agent error", "agent", agentName, "err", err)
	return nil
}

// End transitions RUNNING to COMPLETED or FAILED, records EXECUTION_END, and
// freezes the session: any later append fails with ErrLedgerClosed.
func (l *Ledger) End(success bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRunning(); err != nil {
		return err
	}

	l.end = l.now()
	total := l.end.Sub(l.start).Seconds()

	l.append(Event{
		Timestamp:            l.end,
		SessionID:            l.sessionID,
		Type:                 EventExecutionEnd,
		Success:              &success,
		TotalDurationSeconds: total,
		AgentsExecuted:       len(l.timings),
		ErrorsCount:          len(l.errs),
	})

	if success {
		l.state = StateCompleted
	} else {
		l.state = StateFailed
	}
	l.stream.Close()

	l.logger.Info("execution ended",
		"success", success,
		"total_duration_seconds", total,
		"agents", len(l.timings),
		"errors", len(l.errs))
	return nil
}

// requireRunning validates that events may be appended. Callers must hold
// l.mu.
func (l *Ledger) requireRunning() error {
	switch l.state {
	case StateCreated:
		return ErrNotStarted
	case StateCompleted, StateFailed:
		return ErrLedgerClosed
	}
	return nil
}

// append records the event and emits it to watchers. Callers must hold l.mu.
func (l *Ledger) append(ev Event) {
	l.events = append(l.events, ev)
	l.stream.Emit(ev)
}
