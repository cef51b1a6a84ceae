package models

import "time"

// Member is a household member holding a running point total. Points only
// change through the store's ApplyPointsDelta so the toggle path and the
// ledger path can never double-apply the same logical event.
type Member struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Points    int        `json:"points"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
