package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// Source is one parsed source sheet: its cell grid and merged regions.
type Source struct {
	// BookName is the file name without directories.
	BookName string
	// SheetName is the sheet that was read.
	SheetName string
	// Sheets lists every sheet in the workbook.
	Sheets []string
	// Grid holds the sheet's rows.
	Grid models.Grid
	// Merges holds the sheet's merged regions.
	Merges []models.CellMerge
}

// Format returns the reader format for a path: "xlsx", "xls" or "".
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return "xlsx"
	case ".xls":
		return "xls"
	}
	return ""
}

// ReadSource reads sheetName (the first sheet when empty) from an xlsx or xls file.
func ReadSource(path, sheetName string) (*Source, error) {
	switch Format(path) {
	case "xlsx":
		return readXLSX(path, sheetName)
	case "xls":
		return readXLS(path, sheetName)
	}
	return nil, newError("open", path, ErrUnsupportedFormat)
}

func readXLSX(path, sheetName string) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newError("open", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	name, err := pickSheet(sheets, sheetName)
	if err != nil {
		return nil, newError("read", path, err)
	}

	grid, err := ReadGrid(f, name)
	if err != nil {
		return nil, newError("read", path, err)
	}
	merges, err := ReadMerges(f, name)
	if err != nil {
		return nil, newError("read", path, err)
	}

	return &Source{
		BookName:  filepath.Base(path),
		SheetName: name,
		Sheets:    sheets,
		Grid:      grid,
		Merges:    merges,
	}, nil
}

// pickSheet returns want when present, the first sheet when want is empty.
func pickSheet(sheets []string, want string) (string, error) {
	if want == "" {
		if len(sheets) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, want)
}
