package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/mentor/internal/config"
	"github.com/dusk-indust/mentor/internal/mcptools"
	"github.com/dusk-indust/mentor/internal/scoring"
	"github.com/dusk-indust/mentor/internal/session"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ProjectRoot string
	LogsDir     string
	ReportsDir  string
	Addr        string
	Verbose     bool
	ServeMCP    bool
	Version     bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("mentor", flag.ContinueOnError)
	fs.StringVar(&flags.ProjectRoot, "project-root", ".", "path to the target project")
	fs.StringVar(&flags.LogsDir, "logs-dir", "", "directory for execution logs (default \"logs\")")
	fs.StringVar(&flags.ReportsDir, "reports-dir", "", "directory for markdown reports (default \"reports\")")
	fs.StringVar(&flags.Addr, "addr", "localhost:8765", "listen address for the MCP server")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server exposing the scoring tools")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.ProjectRoot)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyConfig(&flags, cfg)

	logger := newLogger(flags.Verbose)

	if flags.ServeMCP {
		return serveMCP(flags, cfg, logger)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(fs)
		return nil
	}

	switch rest[0] {
	case "init":
		return runInit(flags.ProjectRoot, rest[1:])
	case "analyze":
		return runAnalyze(flags, cfg, rest[1:])
	case "score-resource":
		return runScoreResource(cfg, rest[1:])
	case "score-project":
		return runScoreProject(rest[1:])
	case "validate-stack":
		return runValidateStack(rest[1:])
	case "report":
		return runReport(flags, rest[1:])
	case "runs":
		return runRuns(flags)
	default:
		printUsage(fs)
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

// applyConfig fills flag defaults from the project config file without
// overriding values given on the command line.
func applyConfig(flags *cliFlags, cfg *config.ProjectConfig) {
	if flags.LogsDir == "" {
		flags.LogsDir = cfg.LogsDir
	}
	if flags.ReportsDir == "" {
		flags.ReportsDir = cfg.ReportsDir
	}
	if cfg.MCPAddr != "" && flags.Addr == "localhost:8765" {
		flags.Addr = cfg.MCPAddr
	}
	if cfg.Verbose {
		flags.Verbose = true
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newScorer respects a pinned currentYear from config, for reproducible
// recency scoring.
func newScorer(cfg *config.ProjectConfig) *scoring.Scorer {
	if cfg.CurrentYear > 0 {
		return scoring.NewScorerAt(cfg.CurrentYear)
	}
	return scoring.NewScorer()
}

func serveMCP(flags cliFlags, cfg *config.ProjectConfig, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mgr := session.NewManager(session.Config{
		LogsDir:    flags.LogsDir,
		ReportsDir: flags.ReportsDir,
	}, logger)
	sess, err := mgr.Begin("mcp session")
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	svc := mcptools.NewMentorService(scoring.NewAnalyzer(), newScorer(cfg))
	svc.AttachSession(sess)

	logger.Info("mcp server listening", "addr", flags.Addr)
	serveErr := mcptools.RunMCPServer(ctx, svc, flags.Addr)

	// Persist the execution record even when the listener failed.
	if _, err := sess.Finish(serveErr == nil); err != nil {
		logger.Warn("finishing session", "error", err)
	}
	return serveErr
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, `usage: mentor [flags] <command>

Commands:
  init               register the mentor MCP server in .mcp.json
  analyze <path>     analyze complexity of a source file or directory
  score-resource     score a learning resource's quality
  score-project      estimate project complexity and risk
  validate-stack     check frontend/backend/database compatibility
  report [session]   render a markdown report for a recorded session
  runs               list recorded sessions

Flags:`)
	fs.PrintDefaults()
}
