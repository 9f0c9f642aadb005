package model

import (
	"time"
)

// EntryStatus is the processing status of a history entry
type EntryStatus string

const (
	StatusCompleted  EntryStatus = "completed"
	StatusProcessing EntryStatus = "processing"
	StatusFailed     EntryStatus = "failed"
)

// Valid reports whether s is a known status
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusProcessing, StatusFailed:
		return true
	default:
		return false
	}
}

// HistoryEntry is a Result plus identity and status
type HistoryEntry struct {
	Result    `yaml:",inline"`
	ID        string      `json:"id" yaml:"id" db:"id" validate:"required"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at" db:"created_at"`
	Status    EntryStatus `json:"status" yaml:"status" db:"status"`
}

// TableName returns the table name for HistoryEntry
func (HistoryEntry) TableName() string {
	return "history_entries"
}
