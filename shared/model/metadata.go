package model

import "time"

// Metadata is the audit trail embedded in every entity. The time columns
// are DB-defaulted, so inserts only carry the by-columns.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
