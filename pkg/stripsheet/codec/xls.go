package codec

import (
	"path/filepath"

	"github.com/extrame/xls"
)

// xlsCharset is used for BIFF files without a usable code page.
const xlsCharset = "utf-8"

// readXLS reads a legacy BIFF workbook. The xls library does not expose
// merged regions, so Merges is always empty for these files.
func readXLS(path, sheetName string) (*Source, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, newError("open", path, err)
	}

	sheets := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if sh := wb.GetSheet(i); sh != nil {
			sheets = append(sheets, sh.Name)
		}
	}
	name, err := pickSheet(sheets, sheetName)
	if err != nil {
		return nil, newError("read", path, err)
	}

	var rows [][]string
	for i := 0; i < wb.NumSheets(); i++ {
		sh := wb.GetSheet(i)
		if sh == nil || sh.Name != name {
			continue
		}
		rows = xlsRows(sh)
		break
	}

	return &Source{
		BookName:  filepath.Base(path),
		SheetName: name,
		Sheets:    sheets,
		Grid:      gridFromStrings(rows),
	}, nil
}

// xlsRows keeps row positions: missing rows become empty rows. Rows read
// without a ROW record report no column extent, so every row is read up to
// the widest extent seen in the sheet.
func xlsRows(sh *xls.WorkSheet) [][]string {
	n := int(sh.MaxRow) + 1
	found := make([]*xls.Row, n)
	width := 0
	for i := range found {
		if row := xlsRow(sh, i); row != nil {
			found[i] = row
			width = max(width, row.LastCol())
		}
	}

	rows := make([][]string, n)
	for i, row := range found {
		if row == nil {
			continue
		}
		cols := make([]string, width)
		for j := range cols {
			cols[j] = row.Col(j)
		}
		rows[i] = cols
	}
	return rows
}

// xlsRow returns row i or nil when the sheet has no such row. The library
// dereferences missing rows, so the panic is turned into nil.
func xlsRow(sh *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sh.Row(i)
}
