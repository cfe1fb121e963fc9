package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads word rows in the same column order as ReadXLSX. Sheet is
// ignored; StartRow counts physical lines.
func ReadCSV(r io.Reader, opts SheetOptions) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var raw [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		raw = append(raw, rec)
		lines = append(lines, line)
	}
	return FromRows(collectRows(raw, lines, opts.startRow())), nil
}
