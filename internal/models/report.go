package models

import (
	"time"

	"github.com/thenoetrevino/plantel/internal/types"
)

// StatCount is one pre-aggregated bucket of a report
type StatCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ReportFilter narrows the generated PDF report. Zero values mean no bound.
type ReportFilter struct {
	From       time.Time         `json:"from,omitempty"`
	To         time.Time         `json:"to,omitempty"`
	AthleteIDs []types.AthleteID `json:"athlete_ids,omitempty"`
}

// CURPResult is the answer of the population registry lookup
type CURPResult struct {
	CURP      string `json:"curp"`
	Valid     bool   `json:"valid"`
	FullName  string `json:"full_name,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Message   string `json:"message,omitempty"`
}
