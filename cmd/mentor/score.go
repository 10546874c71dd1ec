package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/dusk-indust/mentor/internal/config"
	"github.com/dusk-indust/mentor/internal/report"
	"github.com/dusk-indust/mentor/internal/scoring"
)

func runScoreResource(cfg *config.ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("score-resource", flag.ContinueOnError)
	url := fs.String("url", "", "resource URL (required)")
	resourceType := fs.String("type", "", "resource type, e.g. tutorial, course, documentation (required)")
	source := fs.String("source", "", "source name, e.g. MDN, freeCodeCamp")
	year := fs.Int("year", 0, "last-updated year; enables recency-weighted scoring")
	jsonOut := fs.Bool("json", false, "emit JSON instead of markdown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" || *resourceType == "" {
		return fmt.Errorf("usage: mentor score-resource -url <url> -type <type> [-source <name>] [-year <year>]")
	}

	scorer := newScorer(cfg)
	var quality scoring.QualityScore
	if *year > 0 {
		quality = scorer.ScoreResourceWithRecency(*url, *resourceType, *source, *year)
	} else {
		quality = scorer.ScoreResource(*url, *resourceType, *source)
	}

	if *jsonOut {
		return printJSON(quality)
	}
	fmt.Print(report.RenderQuality(quality))
	return nil
}

func runScoreProject(args []string) error {
	fs := flag.NewFlagSet("score-project", flag.ContinueOnError)
	features := fs.String("features", "", "comma-separated feature list")
	team := fs.Int("team", 1, "team size")
	months := fs.Int("months", 0, "timeline in months (required, > 0)")
	stack := fs.Int("stack", 0, "number of technologies in the stack")
	jsonOut := fs.Bool("json", false, "emit JSON instead of markdown")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var featureList []string
	if *features != "" {
		for _, f := range strings.Split(*features, ",") {
			if f = strings.TrimSpace(f); f != "" {
				featureList = append(featureList, f)
			}
		}
	}

	scorer := scoring.NewScorer()
	analysis, err := scorer.ScoreProjectComplexity(featureList, *team, *months, *stack)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(analysis)
	}
	fmt.Print(report.RenderProject(analysis))
	return nil
}

func runValidateStack(args []string) error {
	fs := flag.NewFlagSet("validate-stack", flag.ContinueOnError)
	frontend := fs.String("frontend", "", "frontend technology (required)")
	backend := fs.String("backend", "", "backend technology (required)")
	database := fs.String("database", "", "database technology (required)")
	tools := fs.String("tools", "", "comma-separated additional tools")
	jsonOut := fs.Bool("json", false, "emit JSON instead of markdown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frontend == "" || *backend == "" || *database == "" {
		return fmt.Errorf("usage: mentor validate-stack -frontend <fe> -backend <be> -database <db> [-tools <a,b>]")
	}

	var toolList []string
	if *tools != "" {
		for _, t := range strings.Split(*tools, ",") {
			if t = strings.TrimSpace(t); t != "" {
				toolList = append(toolList, t)
			}
		}
	}

	scorer := scoring.NewScorer()
	compat := scorer.ValidateStack(*frontend, *backend, *database, toolList)

	if *jsonOut {
		return printJSON(compat)
	}
	fmt.Print(report.RenderStack(compat))
	return nil
}
