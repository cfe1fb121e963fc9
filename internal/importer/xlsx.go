package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetOptions locates word rows in a spreadsheet. Columns are fixed:
// A word, B translation, C category, D group.
type SheetOptions struct {
	// Sheet defaults to the first sheet of the workbook.
	Sheet string
	// StartRow is the 1-based first data row; 0 means 2 (one header row).
	StartRow int
}

func (o SheetOptions) startRow() int {
	if o.StartRow <= 0 {
		return 2
	}
	return o.StartRow
}

// ReadXLSX reads word rows from an Excel workbook.
func ReadXLSX(path string, opts SheetOptions) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return FromRows(collectRows(rows, nil, opts.startRow())), nil
}

// collectRows maps raw cells to Rows, skipping header and blank lines.
// lines[i] is the file line of raw[i]; nil means raw is dense from line 1.
func collectRows(raw [][]string, lines []int, startRow int) []Row {
	var out []Row
	for i, cells := range raw {
		line := i + 1
		if lines != nil {
			line = lines[i]
		}
		if line < startRow || blank(cells) {
			continue
		}
		out = append(out, Row{
			Line:        line,
			Word:        cell(cells, 0),
			Translation: cell(cells, 1),
			Category:    cell(cells, 2),
			Group:       cell(cells, 3),
		})
	}
	return out
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSXTemplate writes an empty workbook with the expected header row.
func WriteXLSXTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range []string{"word", "translation", "category", "group"} {
		ref, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, ref, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
