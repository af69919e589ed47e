package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Run mode constants
	ModeParse    = "parse"
	ModeText     = "text"
	ModeWarranty = "warranty"

	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultCacheSize   = 100
	DefaultOCRLanguage = "eng"
	DefaultOCRDPI      = 300
	DefaultOCRMaxPages = 10
)

// Config holds all configuration for the document parser CLI
type Config struct {
	// Run configuration
	Mode     string // "parse", "text" or "warranty"
	TypeHint string // forced document type for text mode ("auto" to classify)

	// Extraction configuration
	MaxFileSize int64 // Maximum document file size in bytes
	CacheSize   int   // Result cache capacity (batch mode)

	// OCR configuration
	OCREnabled  bool
	OCRLanguage string
	OCRDPI      int
	OCRMaxPages int

	// Application configuration
	Version  string
	LogLevel string
	Pretty   bool // indent JSON output
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeParse,
		TypeHint:    "auto",
		MaxFileSize: DefaultMaxFileSize,
		CacheSize:   DefaultCacheSize,
		OCREnabled:  true,
		OCRLanguage: DefaultOCRLanguage,
		OCRDPI:      DefaultOCRDPI,
		OCRMaxPages: DefaultOCRMaxPages,
		Version:     "1.0.0",
		LogLevel:    DefaultLogLevel,
		Pretty:      false,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DOCPARSE")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("type", cfg.TypeHint)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("cachesize", cfg.CacheSize)
	viper.SetDefault("ocr", cfg.OCREnabled)
	viper.SetDefault("ocrlang", cfg.OCRLanguage)
	viper.SetDefault("ocrdpi", cfg.OCRDPI)
	viper.SetDefault("ocrmaxpages", cfg.OCRMaxPages)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("pretty", cfg.Pretty)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'parse' for documents, 'text' for raw text input, 'warranty' for warranty analysis")
	pflag.String("type", cfg.TypeHint, "Document type hint for text mode (auto, invoice, warranty, refund)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
	pflag.Int("cachesize", cfg.CacheSize, "Result cache capacity for batch runs")
	pflag.Bool("ocr", cfg.OCREnabled, "Enable the OCR extraction tier (requires pdftoppm and tesseract)")
	pflag.String("ocrlang", cfg.OCRLanguage, "Tesseract language")
	pflag.Int("ocrdpi", cfg.OCRDPI, "Page render resolution for OCR")
	pflag.Int("ocrmaxpages", cfg.OCRMaxPages, "Maximum pages sent through OCR (0 for all)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Bool("pretty", cfg.Pretty, "Indent JSON output")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, name := range []string{
		"mode", "type", "maxfilesize", "cachesize",
		"ocr", "ocrlang", "ocrdpi", "ocrmaxpages", "loglevel", "pretty",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocparse - extract structured commerce data from PDFs and text\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s invoice.pdf                        # parse one document\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s invoices/*.pdf                     # batch parse\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=warranty warranty-card.pdf  # warranty analysis\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=text --type=invoice body.txt # parse extracted text\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOCPARSE_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  DOCPARSE_MAXFILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  DOCPARSE_OCR          Enable OCR tier\n")
		fmt.Fprintf(os.Stderr, "  DOCPARSE_OCRLANG      Tesseract language\n")
		fmt.Fprintf(os.Stderr, "  DOCPARSE_LOGLEVEL     Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.TypeHint = viper.GetString("type")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.CacheSize = viper.GetInt("cachesize")
	cfg.OCREnabled = viper.GetBool("ocr")
	cfg.OCRLanguage = viper.GetString("ocrlang")
	cfg.OCRDPI = viper.GetInt("ocrdpi")
	cfg.OCRMaxPages = viper.GetInt("ocrmaxpages")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.Pretty = viper.GetBool("pretty")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeParse && c.Mode != ModeText && c.Mode != ModeWarranty {
		return errors.New("mode must be one of 'parse', 'text' or 'warranty'")
	}

	switch c.TypeHint {
	case "auto", "invoice", "warranty", "refund", "document":
	default:
		return fmt.Errorf("invalid type hint: %s", c.TypeHint)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}
	if c.CacheSize <= 0 {
		return errors.New("cache size must be positive")
	}
	if c.OCRDPI < 72 || c.OCRDPI > 1200 {
		return errors.New("OCR DPI must be between 72 and 1200")
	}
	if c.OCRMaxPages < 0 {
		return errors.New("OCR max pages cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, TypeHint: %s, LogLevel: %s, MaxFileSize: %d, OCR: %t}",
		c.Mode, c.TypeHint, c.LogLevel, c.MaxFileSize, c.OCREnabled)
}
