package stripsheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/codec"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/layout"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/tiendc/go-deepcopy"
)

// Result is a generated, not yet saved, strip workbook.
type Result struct {
	// Sheet is the output workbook. The caller saves and closes it.
	Sheet *codec.SheetWriter
	// Mode is the mode that produced it.
	Mode Mode
	// Stats summarizes the layout pass.
	Stats layout.Stats
}

// Generate lays out src as strips in a new workbook. When tmpl is non-nil
// every record is overlaid onto the template instead. The inputs are copied
// first and never modified.
func Generate(ctx context.Context, src *models.SheetModel, tmpl *models.TemplateModel, opts Options) (*Result, error) {
	if src == nil || len(src.HeaderRows)+len(src.DataRows) == 0 {
		return nil, ErrInputEmpty
	}

	var sheet models.SheetModel
	if err := deepcopy.Copy(&sheet, src); err != nil {
		return nil, fmt.Errorf("snapshot source: %w", err)
	}
	var template *models.TemplateModel
	if tmpl != nil {
		template = &models.TemplateModel{}
		if err := deepcopy.Copy(template, tmpl); err != nil {
			return nil, fmt.Errorf("snapshot template: %w", err)
		}
	}

	w, err := codec.NewSheetWriter(codec.DefaultSheetName)
	if err != nil {
		return nil, err
	}

	cfg := opts.Generator.Normalize()
	engine := layout.NewStripEngine(w, cfg)
	mode := ModeStandard
	log.Debug().
		Int("header_rows", len(sheet.HeaderRows)).
		Int("data_rows", len(sheet.DataRows)).
		Int("rows_per_student", cfg.RowsPerStudent).
		Int("gap_rows", cfg.GapRows).
		Msg("Generating strips")

	if template != nil {
		mode = ModeTemplate
		err = engine.RunTemplate(ctx, &sheet, template, opts.Progress)
	} else {
		err = engine.Run(ctx, &sheet, opts.Progress)
	}
	if err != nil {
		w.Close()
		return nil, err
	}

	stats := engine.Stats()
	if stats.DroppedMerges > 0 {
		log.Debug().Int("dropped_merges", stats.DroppedMerges).Msg("Dropped merges crossing record boundaries")
	}
	if stats.SkippedMappings > 0 {
		log.Debug().Int("skipped_mappings", stats.SkippedMappings).Msg("Skipped unmapped template fields")
	}
	log.Info().
		Str("mode", string(mode)).
		Int("records", stats.Records).
		Int("rows", stats.Rows).
		Msg("Strips generated")

	return &Result{Sheet: w, Mode: mode, Stats: stats}, nil
}

// Load reads the source sheet named in opts and builds its SheetModel.
func Load(inputPath string, opts Options) (*codec.Source, *models.SheetModel, error) {
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}
	if codec.Format(inputPath) == "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidFormat, filepath.Base(inputPath))
	}

	src, err := codec.ReadSource(inputPath, opts.SheetName)
	if err != nil {
		return nil, nil, err
	}
	sheet, err := BuildSheetModel(src.Grid, src.Merges, opts.Header)
	if err != nil {
		return nil, nil, err
	}
	return src, sheet, nil
}

// Export reads inputPath, generates the strips and saves them under
// opts.OutputDir with a timestamped name. It returns the written path.
func Export(ctx context.Context, inputPath string, opts Options) (string, error) {
	_, sheet, err := Load(inputPath, opts)
	if err != nil {
		return "", err
	}

	var tmpl *models.TemplateModel
	if opts.Mode() == ModeTemplate {
		tmpl, err = codec.LoadTemplate(opts.TemplatePath, opts.NormalizedMappings())
		if err != nil {
			return "", err
		}
	}

	res, err := Generate(ctx, sheet, tmpl, opts)
	if err != nil {
		return "", err
	}
	defer res.Sheet.Close()

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return "", err
		}
	}
	out := filepath.Join(opts.OutputDir, OutputFileName(opts.FilePrefix, res.Mode, time.Now()))
	if err := res.Sheet.SaveAs(out); err != nil {
		return "", err
	}
	return out, nil
}

// OutputFileName returns "<prefix>_<unix millis>.xlsx", with "_template"
// before the timestamp in template mode.
func OutputFileName(prefix string, mode Mode, t time.Time) string {
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	if mode == ModeTemplate {
		prefix += "_template"
	}
	return fmt.Sprintf("%s_%d.xlsx", prefix, t.UnixMilli())
}
