// Package main provides the CLI entry point for stripsheet.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

var (
	configPath     string
	outputDir      string
	sheetName      string
	headerRows     string
	gapRows        int
	rowsPerStudent int
	plain          bool
	templatePath   string
	mappings       []string
	filePrefix     string
	previewCount   int
	verbose        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stripsheet [input.xlsx]",
		Short: "Generate cut-apart score strips from a spreadsheet",
		Long: `stripsheet repeats the header block above every student record so the
printed sheet can be cut into strips, or fills each record into a template.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: setup,
		RunE:              runGenerate,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file")
	pf.StringVar(&sheetName, "sheet", "", "Source sheet name (default: first sheet)")
	pf.StringVar(&headerRows, "header", "1", "Header rows, 1-based: \"1\" or \"1-2\"")
	pf.IntVar(&rowsPerStudent, "rows-per-student", 1, "Physical rows per student record")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: current directory)")
	f.IntVar(&gapRows, "gap", 1, "Blank rows between strips")
	f.BoolVar(&plain, "plain", false, "Do not fill header rows")
	f.StringVar(&templatePath, "template", "", "Template workbook; enables template mode")
	f.StringArrayVar(&mappings, "map", nil, "Template mapping HEADER=CELL, repeatable")
	f.StringVar(&filePrefix, "prefix", stripsheet.DefaultFilePrefix, "Output file name prefix")

	previewCmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Print the first strips without writing a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVarP(&previewCount, "count", "n", stripsheet.DefaultPreviewCount, "Number of strips to show")

	headersCmd := &cobra.Command{
		Use:   "headers [input.xlsx]",
		Short: "List flattened header names for template mappings",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeaders,
	}

	rootCmd.AddCommand(previewCmd, headersCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.Progress = func(percent int) {
		log.Debug().Int("percent", percent).Msg("Progress")
	}

	out, err := stripsheet.Export(context.Background(), args[0], opts)
	if err != nil {
		log.Error().Err(err).Str("input", args[0]).Msg("Generation failed")
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Println(out)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	_, sheet, err := stripsheet.Load(args[0], opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	strips := stripsheet.Preview(sheet, opts.Generator, previewCount)
	return stripsheet.RenderPreview(cmd.OutOrStdout(), sheet, strips)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	_, sheet, err := stripsheet.Load(args[0], opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	return stripsheet.RenderHeaders(cmd.OutOrStdout(), sheet)
}

// buildOptions layers defaults, the config file and explicitly set flags.
func buildOptions(cmd *cobra.Command) (stripsheet.Options, error) {
	opts := stripsheet.DefaultOptions()
	if configPath != "" {
		cfg, err := stripsheet.LoadConfig(configPath)
		if err != nil {
			return opts, fmt.Errorf("failed to load config: %w", err)
		}
		opts = cfg.Apply(opts)
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		opts.SheetName = sheetName
	}
	if flags.Changed("header") {
		hr, err := parseHeaderRange(headerRows)
		if err != nil {
			return opts, err
		}
		opts.Header = hr
	}
	if flags.Changed("rows-per-student") {
		opts.Generator.RowsPerStudent = rowsPerStudent
	}
	if flags.Changed("gap") {
		if gapRows < 0 {
			return opts, fmt.Errorf("invalid gap: %d (must be >= 0)", gapRows)
		}
		opts.Generator.GapRows = gapRows
	}
	if flags.Changed("plain") {
		opts.Generator.UseOptimizedStyle = !plain
	}
	if flags.Changed("output-dir") {
		opts.OutputDir = outputDir
	}
	if flags.Changed("template") {
		opts.TemplatePath = templatePath
	}
	if flags.Changed("prefix") {
		opts.FilePrefix = filePrefix
	}
	if len(mappings) > 0 {
		ms, err := parseMappings(mappings)
		if err != nil {
			return opts, err
		}
		opts.Mappings = ms
	}
	return opts, nil
}

// parseHeaderRange parses "2" or "2-3" (1-based, inclusive) into a 0-based range.
func parseHeaderRange(s string) (stripsheet.HeaderRange, error) {
	first, last, found := strings.Cut(strings.TrimSpace(s), "-")
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || a < 1 {
		return stripsheet.HeaderRange{}, fmt.Errorf("invalid header rows: %q", s)
	}
	b := a
	if found {
		b, err = strconv.Atoi(strings.TrimSpace(last))
		if err != nil || b < a {
			return stripsheet.HeaderRange{}, fmt.Errorf("invalid header rows: %q", s)
		}
	}
	return stripsheet.HeaderRange{First: a - 1, Last: b - 1}, nil
}

// parseMappings parses HEADER=CELL pairs. The header may itself contain "=".
func parseMappings(pairs []string) ([]models.TemplateMapping, error) {
	out := make([]models.TemplateMapping, 0, len(pairs))
	for _, p := range pairs {
		i := strings.LastIndex(p, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid mapping: %q (want HEADER=CELL)", p)
		}
		out = append(out, models.TemplateMapping{
			HeaderName:  strings.TrimSpace(p[:i]),
			CellAddress: strings.TrimSpace(p[i+1:]),
		})
	}
	return out, nil
}
