package config // Report configuration file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportConfig holds the tunable settings of a six-frame run. Every field can
// be set from a YAML file and overridden on the command line.
type ReportConfig struct {
	Title        string  `yaml:"title"`
	FastaWrap    int     `yaml:"fasta_wrap"`    // residues per FASTA line, 0 = single line
	MinORF       int     `yaml:"min_orf"`       // minimum ORF length in amino acids
	Charts       bool    `yaml:"charts"`        // embed SVG charts in the HTML report
	ChartWidth   float64 `yaml:"chart_width"`   // inches
	ChartHeight  float64 `yaml:"chart_height"`  // inches
	SequenceWrap int     `yaml:"sequence_wrap"` // bases per line in the HTML sequence block, 0 = no wrap
}

// DefaultReportConfig returns the settings used when no file is given.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Title:        "SixSequences Translation Report",
		FastaWrap:    0,
		MinORF:       30,
		Charts:       true,
		ChartWidth:   10,
		ChartHeight:  4,
		SequenceWrap: 0,
	}
}

// LoadReportConfig reads a YAML file on top of DefaultReportConfig. Keys
// missing from the file keep their default value.
func LoadReportConfig(path string) (ReportConfig, error) {
	cfg := DefaultReportConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a report.
func (c ReportConfig) Validate() error {
	if c.FastaWrap < 0 {
		return fmt.Errorf("fasta_wrap must be >= 0, got %d", c.FastaWrap)
	}
	if c.SequenceWrap < 0 {
		return fmt.Errorf("sequence_wrap must be >= 0, got %d", c.SequenceWrap)
	}
	if c.MinORF < 1 {
		return fmt.Errorf("min_orf must be >= 1, got %d", c.MinORF)
	}
	if c.Charts && (c.ChartWidth <= 0 || c.ChartHeight <= 0) {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
