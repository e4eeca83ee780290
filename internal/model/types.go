// Package model defines shared data structures.
package model

import "time"

// RunStats captures a completed sort run.
type RunStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	SourcePath string
	OutputPath string
	Words      int
	EmptyLines int
	DurationMs int64
}

// RunRecord is a stored run with its database identity.
type RunRecord struct {
	RunID int64
	RunStats
}

// HistoryConfig defines filters and options for history output.
type HistoryConfig struct {
	Since *time.Time
	Last  int
}
