package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// LoadFile reads a dataset from path, choosing the reader by extension.
func LoadFile(path string, opts SheetOptions) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseDataset(data)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f, opts)
	default:
		return nil, fmt.Errorf("%w: %q (want .json, .xlsx or .csv)", ErrUnsupportedFormat, ext)
	}
}
