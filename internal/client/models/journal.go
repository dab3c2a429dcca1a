package models

import "time"

// Write actions recorded in the journal.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// JournalEntry is one write attempt against the backend, kept locally.
type JournalEntry struct {
	ID        string
	Resource  string
	Action    string
	RecordID  string
	Success   bool
	Message   string
	CreatedAt time.Time
}
