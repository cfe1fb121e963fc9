// Package importer reads vocabulary datasets from JSON, XLSX and CSV files.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DatasetVersion is the JSON layout this package reads and writes.
const DatasetVersion = 1

// Dataset is the file form of a vocabulary: ordered groups of ordered
// categories of ordered word pairs.
type Dataset struct {
	Version int           `json:"version"`
	Source  string        `json:"source,omitempty"`
	Target  string        `json:"target,omitempty"`
	Groups  []GroupImport `json:"groups"`
}

type GroupImport struct {
	Name       string           `json:"name"`
	Categories []CategoryImport `json:"categories"`
}

type CategoryImport struct {
	Name  string       `json:"name"`
	Words []WordImport `json:"words"`
}

type WordImport struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`

	// Row is the 1-based spreadsheet row the pair came from, 0 for JSON.
	Row int `json:"-"`
}

// ParseDataset decodes a JSON dataset. Unknown fields are rejected so typos
// in hand-written files surface early.
func ParseDataset(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if ds.Version == 0 {
		ds.Version = DatasetVersion
	}
	if ds.Version != DatasetVersion {
		return nil, fmt.Errorf("dataset version %d is not supported (want %d)", ds.Version, DatasetVersion)
	}
	return &ds, nil
}

// Len counts word pairs.
func (ds *Dataset) Len() int {
	n := 0
	for _, g := range ds.Groups {
		for _, c := range g.Categories {
			n += len(c.Words)
		}
	}
	return n
}
