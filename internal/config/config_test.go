package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeParse {
		t.Errorf("Expected default mode to be 'parse', got '%s'", cfg.Mode)
	}

	if cfg.TypeHint != "auto" {
		t.Errorf("Expected default type hint to be 'auto', got '%s'", cfg.TypeHint)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.CacheSize != DefaultCacheSize {
		t.Errorf("Expected default cache size to be %d, got %d", DefaultCacheSize, cfg.CacheSize)
	}

	if !cfg.OCREnabled {
		t.Error("Expected OCR to be enabled by default")
	}

	if cfg.OCRLanguage != "eng" {
		t.Errorf("Expected default OCR language to be 'eng', got '%s'", cfg.OCRLanguage)
	}

	if cfg.OCRDPI != 300 {
		t.Errorf("Expected default OCR DPI to be 300, got %d", cfg.OCRDPI)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			modify:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid mode",
			modify:  func(c *Config) { c.Mode = "serve" },
			wantErr: true,
		},
		{
			name:    "warranty mode",
			modify:  func(c *Config) { c.Mode = ModeWarranty },
			wantErr: false,
		},
		{
			name:    "invalid type hint",
			modify:  func(c *Config) { c.TypeHint = "letter" },
			wantErr: true,
		},
		{
			name:    "explicit type hint",
			modify:  func(c *Config) { c.TypeHint = "invoice" },
			wantErr: false,
		},
		{
			name:    "zero max file size",
			modify:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative cache size",
			modify:  func(c *Config) { c.CacheSize = -1 },
			wantErr: true,
		},
		{
			name:    "dpi too low",
			modify:  func(c *Config) { c.OCRDPI = 30 },
			wantErr: true,
		},
		{
			name:    "dpi too high",
			modify:  func(c *Config) { c.OCRDPI = 2400 },
			wantErr: true,
		},
		{
			name:    "negative ocr max pages",
			modify:  func(c *Config) { c.OCRMaxPages = -1 },
			wantErr: true,
		},
		{
			name:    "unlimited ocr pages",
			modify:  func(c *Config) { c.OCRMaxPages = 0 },
			wantErr: false,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsDebug(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsDebug() {
		t.Error("Expected IsDebug to be false for default config")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true when log level is debug")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()
	if s == "" {
		t.Error("Expected non-empty string representation")
	}
}
