// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"runtime"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultDataDir holds the benchmark CSV files.
	defaultDataDir = "data"
	// defaultImgDir receives the rendered charts.
	defaultImgDir = "img"
	// defaultLogFile is used when the config omits logFile.
	defaultLogFile = "benchplot.log"
	// defaultScale renders PNGs at 3x a 700x500 canvas.
	defaultScale = 3.0
	// defaultFormat is the image encoding used when the config omits format.
	defaultFormat = "png"
)

// Config represents the top-level application configuration.
type Config struct {
	DataDir        string  `json:"dataDir,omitempty"`
	ImgDir         string  `json:"imgDir,omitempty"`
	LogFile        string  `json:"logFile,omitempty"`
	Debug          bool    `json:"debug"`
	Workers        int     `json:"workers,omitempty"`
	GroupBy        string  `json:"groupBy,omitempty"`
	Format         string  `json:"format,omitempty"`
	Scale          float64 `json:"scale,omitempty"`
	AnalysisOutput string  `json:"analysisOutput,omitempty"`
	ConfigPath     string  `json:"-"`
}

// DataDirPath returns the directory scanned for CSV files.
func (c Config) DataDirPath() string {
	if d := strings.TrimSpace(c.DataDir); d != "" {
		return d
	}
	return defaultDataDir
}

// ImgDirPath returns the directory charts are written to.
func (c Config) ImgDirPath() string {
	if d := strings.TrimSpace(c.ImgDir); d != "" {
		return d
	}
	return defaultImgDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// WorkerCount returns how many files are processed at once, defaulting to the CPU count.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c Config) ImageScale() float64 {
	if c.Scale <= 0 {
		return defaultScale
	}
	return c.Scale
}

func (c Config) ImageFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Format)); f != "" {
		return f
	}
	return defaultFormat
}
