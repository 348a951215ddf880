// Package stripsheet turns a student score sheet into cut-apart strips: every
// logical record is repeated with its own copy of the header, or overlaid onto
// a user-supplied template.
package stripsheet

import (
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/layout"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// Mode represents the output mode.
type Mode string

const (
	// ModeStandard repeats the header block above every record.
	ModeStandard Mode = "standard"
	// ModeTemplate overlays every record onto a template block.
	ModeTemplate Mode = "template"
)

// DefaultFilePrefix prefixes generated file names.
const DefaultFilePrefix = "chengjitiao"

// HeaderRange selects the header block as 0-based inclusive source rows.
type HeaderRange struct {
	First int
	Last  int
}

// Count returns the number of header rows.
func (h HeaderRange) Count() int {
	return h.Last - h.First + 1
}

// Options configures strip generation.
type Options struct {
	// Generator holds gap rows, header styling and rows per student.
	Generator models.GeneratorConfig
	// Header selects the header block. Defaults to the first row.
	Header HeaderRange
	// SheetName selects the source sheet. Empty means the first sheet.
	SheetName string
	// TemplatePath enables template mode when set.
	TemplatePath string
	// Mappings binds header names to template cells.
	Mappings []models.TemplateMapping
	// OutputDir is where Export writes. Empty means the working directory.
	OutputDir string
	// FilePrefix prefixes the timestamped output file name.
	FilePrefix string
	// Progress receives completion percentages. May be nil.
	Progress layout.ProgressFunc
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Generator: models.GeneratorConfig{
			GapRows:           1,
			UseOptimizedStyle: true,
			RowsPerStudent:    1,
		},
		FilePrefix: DefaultFilePrefix,
	}
}

// Mode returns ModeTemplate when a template is configured.
func (o Options) Mode() Mode {
	if o.TemplatePath != "" {
		return ModeTemplate
	}
	return ModeStandard
}

// NormalizedMappings returns the mappings with trimmed header names and
// upper-cased, trimmed addresses. Header names are matched trimmed.
func (o Options) NormalizedMappings() []models.TemplateMapping {
	out := make([]models.TemplateMapping, len(o.Mappings))
	for i, m := range o.Mappings {
		out[i] = models.TemplateMapping{
			HeaderName:  strings.TrimSpace(m.HeaderName),
			CellAddress: layout.NormalizeAddress(m.CellAddress),
		}
	}
	return out
}
