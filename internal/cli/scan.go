package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdejongh/sharemap/internal/platform"
	"github.com/sdejongh/sharemap/pkg/comments"
	"github.com/sdejongh/sharemap/pkg/config"
	"github.com/sdejongh/sharemap/pkg/logging"
	"github.com/sdejongh/sharemap/pkg/models"
	"github.com/sdejongh/sharemap/pkg/output"
	"github.com/sdejongh/sharemap/pkg/pathutil"
	"github.com/sdejongh/sharemap/pkg/report"
	"github.com/sdejongh/sharemap/pkg/run"
	"github.com/sdejongh/sharemap/pkg/scan"
)

// ScanFlags holds scan command flags
type ScanFlags struct {
	MaxDepth     int
	MinFiles     int
	Formats      string
	Output       string
	CommentsFile string
	Timeout      time.Duration
	NoProgress   bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var scanFlags ScanFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Inventory a directory tree and render reports",
		Long: `Scan a directory tree (local folder or mounted network share) and report
the folders that hold a significant number of files, up to a bounded depth.
Results render as JSON, HTML, and/or CSV documents.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().IntVar(&scanFlags.MaxDepth, "max-depth", scan.DefaultMaxDepth, "maximum depth to traverse below the root")
	cmd.Flags().IntVar(&scanFlags.MinFiles, "min-files", scan.DefaultMinFiles, "minimum direct file count for a folder to be included")
	cmd.Flags().StringVarP(&scanFlags.Formats, "format", "f", "", "output formats: json, html, csv, all, or a comma list")
	cmd.Flags().StringVarP(&scanFlags.Output, "output", "o", "", "output base path; each format appends its extension (single format defaults to stdout)")
	cmd.Flags().StringVar(&scanFlags.CommentsFile, "comments-file", "", "JSON or YAML file mapping folder paths to comments")
	cmd.Flags().DurationVar(&scanFlags.Timeout, "timeout", 0, "abort the scan after this duration (0 = no timeout)")
	cmd.Flags().BoolVar(&scanFlags.NoProgress, "no-progress", false, "disable the progress bar")

	// Logging flags
	cmd.Flags().StringVar(&scanFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&scanFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&scanFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root := platform.NormalizePath(args[0])

	// Load configuration and let flags override it
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyScanFlags(cmd, cfg)

	formats, err := report.ParseFormats(resolveFormats(cmd, cfg))
	if err != nil {
		return err
	}

	if err := validateScanFlags(root, formats); err != nil {
		return err
	}

	commentMap, err := loadComments(scanFlags.CommentsFile)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Interrupt converts to cooperative cancellation; a timeout layers a
	// deadline on top of the same mechanism
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if scanFlags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanFlags.Timeout)
		defer cancel()
	}

	opts := scan.Options{
		Root:       root,
		MaxDepth:   cfg.Scan.MaxDepth,
		MinFiles:   cfg.Scan.MinFiles,
		Comments:   commentMap,
		MaxRetries: cfg.Retry.MaxRetries,
		RetryDelay: time.Duration(cfg.Retry.RetryDelay),
	}

	var bar *output.ScanProgressBar
	if cfg.Output.Progress && !scanFlags.NoProgress && output.ShowProgress(os.Stderr) {
		bar = output.NewScanProgressBar(os.Stderr)
		opts.Progress = bar.Hook()
	}

	scanner := scan.NewScanner(nil, logger)

	// A single format with no output path streams to stdout
	if scanFlags.Output == "" {
		result, err := scanner.Scan(ctx, opts)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		canonical, err := pathutil.Canonicalize(root)
		if err != nil {
			canonical = root
		}
		meta := report.NewMetadata(canonical, cfg.Scan.MaxDepth, cfg.Scan.MinFiles)
		text, err := report.Render(formats[0], result, meta)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, text)

		if result.Status == models.ScanCancelled {
			os.Exit(models.RunCancelled.ExitCode())
		}
		return nil
	}

	runner := run.NewRunner(scanner, logger)
	res, err := runner.Run(ctx, run.Options{
		Scan:       opts,
		Formats:    formats,
		OutputBase: scanFlags.Output,
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		output.PrintSummary(os.Stdout, res)
	}

	// Exit with appropriate code
	os.Exit(res.Status.ExitCode())
	return nil
}

// applyScanFlags overrides config values with explicitly set flags
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("max-depth") {
		cfg.Scan.MaxDepth = scanFlags.MaxDepth
	}
	if cmd.Flags().Changed("min-files") {
		cfg.Scan.MinFiles = scanFlags.MinFiles
	}

	// A log file on the command line enables logging outright
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.Enabled = true
		cfg.Logging.File = scanFlags.LogFile
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = scanFlags.LogFormat
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = scanFlags.LogLevel
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Enable progress in verbose mode
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}
}

// resolveFormats picks the format spec: flag first, then config
func resolveFormats(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("format") {
		return scanFlags.Formats
	}
	return cfg.Output.Formats
}

// loadComments loads the comment map when a file was given
func loadComments(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	return comments.LoadFile(path)
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	// Logging disabled or no target file: null logger
	if !cfg.Enabled || cfg.File == "" {
		return logging.NewNullLogger(), nil
	}

	format := logging.FormatText
	if cfg.Format == "json" {
		format = logging.FormatJSON
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.File,
		Format:     format,
		Level:      logging.ParseLevel(cfg.Level),
		MaxSizeMB:  10,
		MaxBackups: 5,
	})
}
