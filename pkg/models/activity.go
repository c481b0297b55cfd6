package models

import "time"

// ActivityEntry is one row of the append-only activity_log audit trail.
// ItemID survives item deletion as null, so the trail keeps its history.
type ActivityEntry struct {
	ID        int       `json:"id" db:"id"`
	ItemID    *int      `json:"item_id" db:"item_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	User      string    `json:"user" db:"user"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
