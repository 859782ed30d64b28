package domain

import "time"

// SchemaVersion stamps export bundles so future formats can migrate.
const SchemaVersion = "1.0.0"

// Meta is the small metadata record persisted alongside the aggregates.
// It exists to stamp backup files and carries no runtime logic.
type Meta struct {
	Version    string     `json:"version"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastExport *time.Time `json:"lastExport"`
}

// NewMeta returns metadata for a freshly created session.
func NewMeta(now time.Time) Meta {
	return Meta{Version: SchemaVersion, CreatedAt: now}
}

// ExportBundle is the portable snapshot format: all four aggregates
// plus metadata. Import requires every member to be present, which the
// validator tags enforce before anything is written.
type ExportBundle struct {
	State      *SessionState `json:"state" validate:"required"`
	History    *History      `json:"history" validate:"required"`
	Collection *Collection   `json:"collection" validate:"required"`
	Meta       *Meta         `json:"meta" validate:"required"`
}
