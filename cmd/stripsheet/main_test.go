package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

func TestParseHeaderRange(t *testing.T) {
	tests := []struct {
		input    string
		expected stripsheet.HeaderRange
		wantErr  bool
	}{
		{"1", stripsheet.HeaderRange{First: 0, Last: 0}, false},
		{"2-3", stripsheet.HeaderRange{First: 1, Last: 2}, false},
		{" 2 - 4 ", stripsheet.HeaderRange{First: 1, Last: 3}, false},
		{"0", stripsheet.HeaderRange{}, true},
		{"3-2", stripsheet.HeaderRange{}, true},
		{"a", stripsheet.HeaderRange{}, true},
		{"2-", stripsheet.HeaderRange{}, true},
	}
	for _, tt := range tests {
		got, err := parseHeaderRange(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHeaderRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseHeaderRange(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseMappings(t *testing.T) {
	got, err := parseMappings([]string{"姓名=B2", " a=b = c3 "})
	if err != nil {
		t.Fatalf("parseMappings failed: %v", err)
	}
	want := []models.TemplateMapping{
		{HeaderName: "姓名", CellAddress: "B2"},
		{HeaderName: "a=b", CellAddress: "c3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseMappings = %v, expected %v", got, want)
	}

	for _, bad := range []string{"B2", "=B2"} {
		if _, err := parseMappings([]string{bad}); err == nil {
			t.Errorf("parseMappings(%q) accepted an invalid pair", bad)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	opts, err := buildOptions(cmd)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	def := stripsheet.DefaultOptions()
	if opts.Generator != def.Generator || opts.Header != def.Header || opts.FilePrefix != def.FilePrefix {
		t.Errorf("options = %+v, expected defaults", opts)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "gap_rows: 3\nrows_per_student: 2\nfile_prefix: term1\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd = newRootCmd()
	err = cmd.ParseFlags([]string{
		"--config", cfgPath,
		"--gap", "0",
		"--header", "2-3",
		"--plain",
		"--template", "strip.xlsx",
		"--map", "Name=B1",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	opts, err = buildOptions(cmd)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.Generator != (models.GeneratorConfig{GapRows: 0, UseOptimizedStyle: false, RowsPerStudent: 2}) {
		t.Errorf("generator = %+v", opts.Generator)
	}
	if opts.Header != (stripsheet.HeaderRange{First: 1, Last: 2}) {
		t.Errorf("header = %+v", opts.Header)
	}
	if opts.FilePrefix != "term1" || opts.Mode() != stripsheet.ModeTemplate {
		t.Errorf("options = %+v", opts)
	}
	if len(opts.Mappings) != 1 || opts.Mappings[0].CellAddress != "B1" {
		t.Errorf("mappings = %v", opts.Mappings)
	}
}

func TestBuildOptionsRejectsNegativeGap(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--gap", "-1"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if _, err := buildOptions(cmd); err == nil {
		t.Error("buildOptions accepted a negative gap")
	}
}
