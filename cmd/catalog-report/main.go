package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"catalogcli/internal/config"
	apperrors "catalogcli/internal/errors"
	"catalogcli/internal/infrastructure"
	"catalogcli/internal/pipeline"
	"catalogcli/internal/report"
	"catalogcli/pkg/contracts"
)

func main() {
	opts := parseFlags(os.Args[1:])
	os.Exit(run(context.Background(), opts))
}

type options struct {
	configFile  string
	inputFile   string
	cleanedOut  string
	chartsDir   string
	showVersion bool
}

func parseFlags(args []string) options {
	fs := flag.NewFlagSet("catalog-report", flag.ExitOnError)
	var opts options
	fs.StringVar(&opts.configFile, "config", "", "path to YAML config file (optional)")
	fs.StringVar(&opts.inputFile, "in", "", "raw catalog file, CSV or XLSX (defaults to netflix1.csv)")
	fs.StringVar(&opts.cleanedOut, "out", "", "cleaned CSV output path (defaults to netflix_cleaned.csv)")
	fs.StringVar(&opts.chartsDir, "charts-dir", "", "directory for chart artifacts (defaults to working directory)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	_ = fs.Parse(args)
	return opts
}

func run(ctx context.Context, opts options) int {
	if opts.showVersion {
		fmt.Println(contracts.GetVersionString())
		return 0
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	// flags win over config file and environment
	if opts.inputFile != "" {
		cfg.Input.File = opts.inputFile
	}
	if opts.cleanedOut != "" {
		cfg.Output.CleanedFile = opts.cleanedOut
	}
	if opts.chartsDir != "" {
		cfg.Output.ChartsDir = opts.chartsDir
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		return 1
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.WithRunID(ctx, uuid.NewString())

	logger.InfoContext(ctx, "Starting catalog report",
		slog.String("input", paths.InputFile),
		slog.String("cleaned_output", paths.CleanedFile),
		slog.String("charts_dir", paths.ChartsDir))

	p := pipeline.New(logger)
	records, err := p.Run(ctx, paths.InputFile, paths.CleanedFile)
	if err != nil {
		// Load and parse failures abort the run with a message but a
		// clean exit, matching the tool's original contract of never
		// crashing on a missing or unreadable input.
		if apperrors.IsType(err, apperrors.ErrTypeLoad) || apperrors.IsType(err, apperrors.ErrTypeParsing) {
			logger.ErrorContext(ctx, "Cannot load input data", slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 0
		}
		logger.ErrorContext(ctx, "Cleaning pipeline failed", slog.String("error", err.Error()))
		return 1
	}

	renderer := report.NewRenderer(logger, paths.ChartsDir)
	if err := renderer.RenderAll(ctx, records); err != nil {
		logger.ErrorContext(ctx, "Rendering failed", slog.String("error", err.Error()))
		return 1
	}

	if err := renderer.WriteSummary(ctx, records, paths.SummaryFile); err != nil {
		logger.ErrorContext(ctx, "Summary report failed", slog.String("error", err.Error()))
		return 1
	}

	logger.InfoContext(ctx, "Catalog report finished",
		slog.Int("record_count", len(records)),
		slog.Int("artifact_count", len(report.ArtifactNames)))

	return 0
}
