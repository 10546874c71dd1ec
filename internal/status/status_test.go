package status

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/mentor/internal/session"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runSession drives one full session at the given fake time and persists its
// state, execution report, and markdown report.
func runSession(t *testing.T, m *session.Manager, at time.Time, query string, success bool) *session.Session {
	t.Helper()
	m.SetClock(func() time.Time { return at })

	sess, err := m.Begin(query)
	require.NoError(t, err)
	require.NoError(t, sess.Ledger().AgentStart("planner"))
	require.NoError(t, sess.Ledger().AgentEnd("planner", "done"))

	_, err = sess.Finish(success)
	require.NoError(t, err)
	_, err = sess.ExportState()
	require.NoError(t, err)
	_, err = sess.WriteReport("report body")
	require.NoError(t, err)
	return sess
}

func TestScanRuns(t *testing.T) {
	base := t.TempDir()
	logsDir := filepath.Join(base, "logs")
	reportsDir := filepath.Join(base, "reports")
	m := session.NewManager(session.Config{LogsDir: logsDir, ReportsDir: reportsDir}, quietLogger())

	older := runSession(t, m, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), "first query", true)
	newer := runSession(t, m, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), "second query", false)

	runs, err := ScanRuns(logsDir, reportsDir)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, newer.ID(), runs[0].SessionID, "newest run comes first")
	assert.Equal(t, "second query", runs[0].Query)
	require.NotNil(t, runs[0].Success)
	assert.False(t, *runs[0].Success)

	assert.Equal(t, older.ID(), runs[1].SessionID)
	require.NotNil(t, runs[1].Success)
	assert.True(t, *runs[1].Success)
	assert.Equal(t, 1, runs[1].AgentsExecuted)
	assert.Equal(t, "20250301_090000", runs[1].Timestamp)

	// All three artifact paths are resolved.
	assert.NotEmpty(t, runs[1].StatePath)
	assert.NotEmpty(t, runs[1].ReportPath)
	assert.NotEmpty(t, runs[1].MarkdownPath)
}

func TestScanRuns_UnfinishedSessionHasNoOutcome(t *testing.T) {
	base := t.TempDir()
	logsDir := filepath.Join(base, "logs")
	reportsDir := filepath.Join(base, "reports")
	m := session.NewManager(session.Config{LogsDir: logsDir, ReportsDir: reportsDir}, quietLogger())

	sess, err := m.Begin("in-flight query")
	require.NoError(t, err)
	_, err = sess.ExportState()
	require.NoError(t, err)

	runs, err := ScanRuns(logsDir, reportsDir)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, sess.ID(), runs[0].SessionID)
	assert.Nil(t, runs[0].Success, "no execution report means no outcome yet")
	assert.Empty(t, runs[0].ReportPath)
	assert.Empty(t, runs[0].MarkdownPath)
}

func TestScanRuns_MissingLogsDir(t *testing.T) {
	runs, err := ScanRuns(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLatestRun(t *testing.T) {
	base := t.TempDir()
	logsDir := filepath.Join(base, "logs")
	reportsDir := filepath.Join(base, "reports")

	latest, err := LatestRun(logsDir, reportsDir)
	require.NoError(t, err)
	assert.Nil(t, latest, "no runs yet")

	m := session.NewManager(session.Config{LogsDir: logsDir, ReportsDir: reportsDir}, quietLogger())
	sess := runSession(t, m, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), "q", true)

	latest, err = LatestRun(logsDir, reportsDir)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, sess.ID(), latest.SessionID)
}
