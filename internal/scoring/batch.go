package scoring

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileReport pairs one analyzed file with its report, or with the analysis
// error when the file could not be parsed.
type FileReport struct {
	Path   string            `json:"path"`
	Report *ComplexityReport `json:"report,omitempty"`
	Err    error             `json:"-"`
	ErrMsg string            `json:"error,omitempty"`
}

// DirReport aggregates the per-file reports of one directory walk.
type DirReport struct {
	Root           string       `json:"root"`
	Files          []FileReport `json:"files"`
	TotalLines     int          `json:"totalLines"`
	MeanCyclomatic float64      `json:"meanCyclomatic"`
	FailedFiles    int          `json:"failedFiles"`
}

// analyzeDirConcurrency bounds the number of files parsed in parallel.
const analyzeDirConcurrency = 8

// AnalyzeDir walks root, analyzing every source file whose language is in
// langs (all supported languages when langs is empty), skipping .git and any
// directory named in excludeDirs. Files are analyzed concurrently; a file
// that fails to parse is recorded in its FileReport rather than aborting the
// walk. Results are ordered by path for determinism.
func (a *Analyzer) AnalyzeDir(ctx context.Context, root string, langs []Language, excludeDirs []string) (*DirReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scoring: cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scoring: %s is not a directory", root)
	}

	allowed := make(map[Language]bool)
	if len(langs) == 0 {
		for _, l := range SupportedLanguages {
			allowed[l] = true
		}
	} else {
		for _, l := range langs {
			allowed[l] = true
		}
	}

	excludeSet := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		excludeSet[d] = true
	}

	type target struct {
		path string
		lang Language
	}
	var targets []target

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || excludeSet[name] {
				return filepath.SkipDir
			}
			return nil
		}
		lang, ok := DetectLanguage(path)
		if !ok || !allowed[lang] {
			return nil
		}
		targets = append(targets, target{path: path, lang: lang})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scoring: walk %s: %w", root, walkErr)
	}

	var mu sync.Mutex
	reports := make([]FileReport, 0, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeDirConcurrency)

	for _, tgt := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fr := FileReport{Path: tgt.path}
			source, err := os.ReadFile(tgt.path)
			if err != nil {
				fr.Err = err
			} else {
				report, err := a.AnalyzeComplexity(source, tgt.lang)
				if err != nil {
					fr.Err = err
				} else {
					fr.Report = report
				}
			}
			if fr.Err != nil {
				fr.ErrMsg = fr.Err.Error()
			}

			mu.Lock()
			reports = append(reports, fr)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })

	dir := &DirReport{Root: root, Files: reports}
	analyzed := 0
	totalCyclomatic := 0
	for _, fr := range reports {
		if fr.Report == nil {
			dir.FailedFiles++
			continue
		}
		analyzed++
		dir.TotalLines += fr.Report.Lines
		totalCyclomatic += fr.Report.Cyclomatic
	}
	if analyzed > 0 {
		dir.MeanCyclomatic = float64(totalCyclomatic) / float64(analyzed)
	}
	return dir, nil
}

// WorstOffenders returns up to n file reports ordered by descending
// cyclomatic complexity. Failed files are excluded.
func (r *DirReport) WorstOffenders(n int) []FileReport {
	parsed := make([]FileReport, 0, len(r.Files))
	for _, fr := range r.Files {
		if fr.Report != nil {
			parsed = append(parsed, fr)
		}
	}
	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Report.Cyclomatic > parsed[j].Report.Cyclomatic
	})
	if n > 0 && len(parsed) > n {
		parsed = parsed[:n]
	}
	return parsed
}
