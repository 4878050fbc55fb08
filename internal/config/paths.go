package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the resolved file system locations for one run.
// Everything resolves against the working directory: the tool is invoked
// next to its data and overwrites its outputs in place.
type Paths struct {
	BaseDir     string
	InputFile   string
	CleanedFile string
	ChartsDir   string
	SummaryFile string
	LogsDir     string
}

// NewPaths resolves the configured locations against the working directory.
func NewPaths(cfg *Config) (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return &Paths{
		BaseDir:     base,
		InputFile:   resolve(base, cfg.Input.File),
		CleanedFile: resolve(base, cfg.Output.CleanedFile),
		ChartsDir:   resolve(base, cfg.Output.ChartsDir),
		SummaryFile: resolve(base, cfg.Output.SummaryFile),
		LogsDir:     resolve(base, "logs"),
	}, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// GetChartPath returns the full path for a chart artifact
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.ChartsDir,
		filepath.Dir(p.CleanedFile),
		filepath.Dir(p.SummaryFile),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
