package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultReportPath returns the path a session's report is saved to when the
// caller does not supply one.
func DefaultReportPath(dir, sessionID string) string {
	return filepath.Join(dir, fmt.Sprintf("execution_report_%s.json", sessionID))
}

// SaveReport serializes the execution report to path, or to
// DefaultReportPath under dir when path is empty. Saving is idempotent —
// re-saving overwrites — and atomic: the report is written to a temporary
// file and renamed into place so a crash never leaves a partial file behind.
// It fails with ErrNotReady before End.
func (l *Ledger) SaveReport(dir, path string) (string, error) {
	report, err := l.Report()
	if err != nil {
		return "", err
	}

	if path == "" {
		path = DefaultReportPath(dir, l.sessionID)
	}

	if err := WriteReportFile(path, report); err != nil {
		return "", err
	}
	l.logger.Info("execution report saved", "path", path)
	return path, nil
}

// WriteReportFile writes a report as indented JSON using the
// write-to-temp-then-rename discipline.
func WriteReportFile(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ledger: marshal report: %w", err)
	}
	return atomicWrite(path, data)
}

// LoadReport reads a previously saved execution report.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: read report %s: %w", path, err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("ledger: decode report %s: %w", path, err)
	}
	return &report, nil
}

// atomicWrite publishes data at path via a sibling temp file and rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ledger: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("ledger: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ledger: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: rename to %s: %w", path, err)
	}
	return nil
}
