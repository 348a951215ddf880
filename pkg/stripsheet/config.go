package stripsheet

import (
	"fmt"
	"os"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Unset fields keep the option defaults.
// Header rows are 1-based as users see them in a spreadsheet; a last_row
// without a first_row starts the header block at row 1.
type Config struct {
	GapRows           *int   `yaml:"gap_rows"`
	UseOptimizedStyle *bool  `yaml:"use_optimized_style"`
	RowsPerStudent    *int   `yaml:"rows_per_student"`
	Sheet             string `yaml:"sheet"`
	Header            struct {
		FirstRow int `yaml:"first_row"`
		LastRow  int `yaml:"last_row"`
	} `yaml:"header"`
	Template struct {
		Path     string                   `yaml:"path"`
		Mappings []models.TemplateMapping `yaml:"mappings"`
	} `yaml:"template"`
	OutputDir  string `yaml:"output_dir"`
	FilePrefix string `yaml:"file_prefix"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the set fields of c onto opts.
func (c *Config) Apply(opts Options) Options {
	if c.GapRows != nil {
		opts.Generator.GapRows = *c.GapRows
	}
	if c.UseOptimizedStyle != nil {
		opts.Generator.UseOptimizedStyle = *c.UseOptimizedStyle
	}
	if c.RowsPerStudent != nil {
		opts.Generator.RowsPerStudent = *c.RowsPerStudent
	}
	if c.Sheet != "" {
		opts.SheetName = c.Sheet
	}
	if c.Header.FirstRow > 0 || c.Header.LastRow > 0 {
		first := max(c.Header.FirstRow, 1)
		last := first
		if c.Header.LastRow > 0 {
			last = c.Header.LastRow
		}
		opts.Header = HeaderRange{First: first - 1, Last: last - 1}
	}
	if c.Template.Path != "" {
		opts.TemplatePath = c.Template.Path
	}
	if len(c.Template.Mappings) > 0 {
		opts.Mappings = c.Template.Mappings
	}
	if c.OutputDir != "" {
		opts.OutputDir = c.OutputDir
	}
	if c.FilePrefix != "" {
		opts.FilePrefix = c.FilePrefix
	}
	return opts
}
