package app

import "time"

// ImportResult is the outcome of adding words from a file.
type ImportResult struct {
	Path       string
	Total      int
	Added      int
	Skipped    int
	Duplicates []string
}

// BackupView describes a saved copy of replaced progress.
type BackupView struct {
	ID        string
	Reason    string
	CreatedAt time.Time
	Bytes     int
}
