package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/fintrack/docparse/internal/cache"
	"github.com/fintrack/docparse/internal/config"
	"github.com/fintrack/docparse/internal/extract"
	"github.com/fintrack/docparse/internal/model"
	"github.com/fintrack/docparse/internal/parser"
	"github.com/fintrack/docparse/internal/warranty"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging builds the slog logger from the configured level. Logs go
// to stderr so JSON results on stdout stay machine-readable.
func setupLogging(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func newService(cfg *config.Config, logger *slog.Logger) *parser.Service {
	var ocr *extract.OCRExtractor
	if cfg.OCREnabled {
		ocr = extract.NewOCRExtractor(extract.OCRConfig{
			Language: cfg.OCRLanguage,
			DPI:      cfg.OCRDPI,
			MaxPages: cfg.OCRMaxPages,
		}, logger)
	}
	cascade := extract.NewCascade(cfg.MaxFileSize, ocr, logger)
	analyzer := warranty.NewAnalyzer(logger)
	return parser.NewService(cascade, analyzer, logger)
}

// runParse parses each argument as a document and prints a BatchResult
// for several inputs or the single ExtractedDocument for one. Repeated
// paths within one invocation are served from the result cache.
func runParse(ctx context.Context, cfg *config.Config, svc *parser.Service, logger *slog.Logger, paths []string) error {
	if len(paths) == 1 {
		doc, err := svc.ParseFile(ctx, paths[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", paths[0], err)
		}
		return printJSON(cfg, doc)
	}

	results := cache.New(cfg.CacheSize)
	batch := &model.BatchResult{TotalDocuments: len(paths)}
	for _, path := range paths {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if doc, ok := results.Get(path); ok {
			batch.ProcessedDocuments++
			batch.SuccessfulExtractions++
			batch.Results = append(batch.Results, doc)
			continue
		}
		doc, err := svc.ParseFile(ctx, path)
		batch.ProcessedDocuments++
		if err != nil {
			batch.FailedDocuments++
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s: %v", path, err))
			logger.Error("document failed", "path", path, "error", err)
			continue
		}
		batch.SuccessfulExtractions++
		if doc.DocumentType == model.DocumentTypeWarranty {
			batch.WarrantyDocuments++
		}
		batch.Results = append(batch.Results, doc)
		results.Put(path, doc)
	}
	return printJSON(cfg, batch)
}

// runText reads raw text from a file (or stdin for "-") and extracts
// fields without the cascade.
func runText(cfg *config.Config, svc *parser.Service, path string) error {
	var (
		data []byte
		err  error
		name = "stdin"
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
		name = filepath.Base(path)
	}
	if err != nil {
		return fmt.Errorf("reading text input: %w", err)
	}
	doc := svc.ParseText(string(data), name, model.DocumentType(cfg.TypeHint))
	return printJSON(cfg, doc)
}

func runWarranty(ctx context.Context, cfg *config.Config, svc *parser.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	result, err := svc.AnalyzeWarranty(ctx, data, filepath.Base(path), time.Now())
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}
	return printJSON(cfg, result)
}

func printJSON(cfg *config.Config, v any) error {
	enc := json.NewEncoder(os.Stdout)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		logger.Debug("starting", "config", cfg.String())
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	svc := newService(cfg, logger)

	// SIGINT/SIGTERM cancel the context; a long OCR run stops at the
	// next page boundary.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeText:
		err = runText(cfg, svc, args[0])
	case config.ModeWarranty:
		err = runWarranty(ctx, cfg, svc, args[0])
	default:
		err = runParse(ctx, cfg, svc, logger, args)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("docparse\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
