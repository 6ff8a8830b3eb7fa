// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"

	"github.com/mwiater/benchview/internal/report"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is where log output lands when the config omits a path.
	defaultLogFile = "benchview.log"
)

// Config represents the top-level application configuration. Field names
// follow the camelCase convention of the config document; raw values may be
// empty and are interpreted through the accessor methods.
type Config struct {
	Debug        bool   `json:"debug"`
	LogFile      string `json:"logFile,omitempty"`
	ReportFile   string `json:"reportFile,omitempty"`
	AutoOpen     bool   `json:"autoOpen"`
	InlineAssets bool   `json:"inlineAssets"`
	TimeUnit     string `json:"timeUnit,omitempty"`
	CountUnit    string `json:"countUnit,omitempty"`
}

// ReportFilePath returns the configured report output path, falling back to
// the formatter default if not specified.
func (c Config) ReportFilePath() string {
	if path := strings.TrimSpace(c.ReportFile); path != "" {
		return path
	}
	return report.DefaultFile
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return defaultLogFile
}

// TimeUnitName returns the configured run-time unit policy.
func (c Config) TimeUnitName() string {
	if u := strings.TrimSpace(c.TimeUnit); u != "" {
		return u
	}
	return report.BestFitUnit
}

// CountUnitName returns the configured throughput unit policy.
func (c Config) CountUnitName() string {
	if u := strings.TrimSpace(c.CountUnit); u != "" {
		return u
	}
	return report.BestFitUnit
}

// ReportConfig materializes the report configuration for one render run,
// with every fallback already applied.
func (c Config) ReportConfig() report.Config {
	return report.Config{
		File:         c.ReportFilePath(),
		AutoOpen:     c.AutoOpen,
		InlineAssets: c.InlineAssets,
		TimeUnit:     c.TimeUnitName(),
		CountUnit:    c.CountUnitName(),
	}
}
