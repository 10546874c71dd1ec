package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dusk-indust/mentor/internal/config"
	"github.com/dusk-indust/mentor/internal/report"
	"github.com/dusk-indust/mentor/internal/scoring"
)

// runAnalyze handles `mentor analyze <path>` for both single files and
// directory trees.
func runAnalyze(flags cliFlags, cfg *config.ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	langFlag := fs.String("lang", "", "language override for single files (go, typescript, python, rust)")
	excludeFlag := fs.String("exclude", "", "comma-separated directory names to skip")
	jsonOut := fs.Bool("json", false, "emit JSON instead of markdown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: mentor analyze <path>")
	}
	path := fs.Arg(0)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	analyzer := scoring.NewAnalyzer()

	if info.IsDir() {
		return analyzeDir(analyzer, cfg, path, *excludeFlag, *jsonOut)
	}
	return analyzeFile(analyzer, path, *langFlag, *jsonOut)
}

func analyzeFile(analyzer *scoring.Analyzer, path, langOverride string, jsonOut bool) error {
	lang, ok := scoring.DetectLanguage(path)
	if langOverride != "" {
		lang, ok = scoring.ParseLanguage(langOverride)
		if !ok {
			return fmt.Errorf("unsupported language %q", langOverride)
		}
	}
	if !ok {
		return fmt.Errorf("cannot detect language of %s; use -lang", path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rep, err := analyzer.AnalyzeComplexity(source, lang)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(rep)
	}
	fmt.Print(report.RenderComplexity(rep))
	return nil
}

func analyzeDir(analyzer *scoring.Analyzer, cfg *config.ProjectConfig, root, excludeFlag string, jsonOut bool) error {
	langs := make([]scoring.Language, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		lang, ok := scoring.ParseLanguage(l)
		if !ok {
			return fmt.Errorf("config: unsupported language %q", l)
		}
		langs = append(langs, lang)
	}

	exclude := cfg.ExcludeDirs
	if excludeFlag != "" {
		exclude = append(exclude, strings.Split(excludeFlag, ",")...)
	}

	rep, err := analyzer.AnalyzeDir(context.Background(), root, langs, exclude)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", root, err)
	}

	if jsonOut {
		return printJSON(rep)
	}
	fmt.Print(report.RenderDir(rep))
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
