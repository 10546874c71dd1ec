//go:build cgo

package scoring

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file under dir, creating parent directories as needed.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeDir_Fixture(t *testing.T) {
	a := NewAnalyzer()

	rep, err := a.AnalyzeDir(context.Background(), "../../testdata/fixtures/go_project", nil, nil)
	require.NoError(t, err)

	require.Len(t, rep.Files, 2)
	assert.Equal(t, 0, rep.FailedFiles)

	// Results are sorted by path.
	assert.Equal(t, "model.go", filepath.Base(rep.Files[0].Path))
	assert.Equal(t, "service.go", filepath.Base(rep.Files[1].Path))

	model := rep.Files[0].Report
	require.NotNil(t, model)
	assert.Equal(t, 1, model.Functions)
	assert.Equal(t, 2, model.Classes, "User struct and Repository interface")
	assert.Equal(t, 1, model.Cyclomatic)

	service := rep.Files[1].Report
	require.NotNil(t, service)
	assert.Equal(t, 3, service.Functions, "one function and two methods")
	assert.Equal(t, 2, service.Branches)
	assert.Equal(t, 3, service.Cyclomatic)

	assert.InDelta(t, 2.0, rep.MeanCyclomatic, 0.001)
	assert.Equal(t, model.Lines+service.Lines, rep.TotalLines)
}

func TestAnalyzeDir_FailedFilesAreRecordedNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.go", "package x\n\nfunc f() {}\n")
	writeFile(t, dir, "broken.py", "def f(:\n")

	a := NewAnalyzer()
	rep, err := a.AnalyzeDir(context.Background(), dir, nil, nil)
	require.NoError(t, err, "one bad file must not abort the walk")

	require.Len(t, rep.Files, 2)
	assert.Equal(t, 1, rep.FailedFiles)

	broken := rep.Files[0]
	assert.Equal(t, "broken.py", filepath.Base(broken.Path))
	assert.Nil(t, broken.Report)
	assert.NotEmpty(t, broken.ErrMsg)

	ok := rep.Files[1]
	require.NotNil(t, ok.Report)
	assert.Empty(t, ok.ErrMsg)
}

func TestAnalyzeDir_FiltersLanguagesAndExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package x\n\nfunc f() {}\n")
	writeFile(t, dir, "script.py", "print('hi')\n")
	writeFile(t, dir, "node_modules/dep.go", "package dep\n")
	writeFile(t, dir, ".git/hook.go", "package hook\n")

	a := NewAnalyzer()
	rep, err := a.AnalyzeDir(context.Background(), dir, []Language{LangGo}, []string{"node_modules"})
	require.NoError(t, err)

	require.Len(t, rep.Files, 1, "python file, node_modules, and .git are all skipped")
	assert.Equal(t, "main.go", filepath.Base(rep.Files[0].Path))
}

func TestAnalyzeDir_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "solo.go", "package x\n")

	a := NewAnalyzer()
	_, err := a.AnalyzeDir(context.Background(), file, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestAnalyzeDir_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalyzer()
	_, err := a.AnalyzeDir(ctx, dir, nil, nil)
	require.Error(t, err)
}

func TestWorstOffenders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "simple.go", "package x\n\nfunc f() {}\n")
	writeFile(t, dir, "twisty.go",
		"package x\n\nfunc g(n int) int {\n\tif n > 0 {\n\t\tn--\n\t}\n\tif n > 1 {\n\t\tn--\n\t}\n\treturn n\n}\n")

	a := NewAnalyzer()
	rep, err := a.AnalyzeDir(context.Background(), dir, nil, nil)
	require.NoError(t, err)

	worst := rep.WorstOffenders(1)
	require.Len(t, worst, 1)
	assert.Equal(t, "twisty.go", filepath.Base(worst[0].Path))

	all := rep.WorstOffenders(0)
	assert.Len(t, all, 2, "n of zero returns everything")
}
