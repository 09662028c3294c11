package domain

import "time"

// AuditFields holds standard audit information embedded in every persisted
// domain entity. On obligations, LastUpdatedAt doubles as the "last edited"
// timestamp bumped by workflow mutations.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}
