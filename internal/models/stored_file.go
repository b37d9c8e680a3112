package models

import "time"

// StoredFile describes a resume written to the storage directory. It is
// returned by the storage service and never persisted as a record.
type StoredFile struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	StoredAt     time.Time `json:"stored_at"`
}
