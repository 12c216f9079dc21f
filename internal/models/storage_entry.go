package models

import "time"

// StorageEntry is one row of the app-local key-value store. Structured state
// (such as the settings record) is kept as JSON text in Value.
type StorageEntry struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
