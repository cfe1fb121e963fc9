package app

import (
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/progress"
)

type StatusRequest struct {
	Now           *time.Time
	ActivityLimit int
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{ActivityLimit: 10}
}

type StatusResponse struct {
	GeneratedAt time.Time
	Overview    progress.Overview
	Categories  []progress.CategoryProgress
	Activities  domain.ActivityLog
	Warnings    []string
}

type WordsRequest struct {
	Now      *time.Time
	Category string
	DueOnly  bool
}

// WordView is one row of the word listing.
type WordView struct {
	Word        string
	Translation string
	Category    string
	Level       domain.Level
	Interval    int
	EaseFactor  float64
	NextReview  time.Time
	Due         bool
	Correct     int
	Incorrect   int
}
