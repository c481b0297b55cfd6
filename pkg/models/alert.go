package models

import (
	"time"

	"stocktrack/pkg/metadata"
)

type Alert struct {
	ID         int                `json:"id" db:"id"`
	ItemID     int                `json:"item_id" db:"item_id"`
	AlertType  metadata.AlertType `json:"alert_type" db:"alert_type"`
	Message    string             `json:"message" db:"message"`
	Severity   metadata.Severity  `json:"severity" db:"severity"`
	IsResolved bool               `json:"is_resolved" db:"is_resolved"`
	CreatedAt  time.Time          `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time         `json:"resolved_at" db:"resolved_at"`
}

// AlertView is an Alert joined with the current state of its item, the
// shape the alert listing endpoints return.
type AlertView struct {
	Alert
	ItemName     string `json:"item_name" db:"item_name"`
	SKU          string `json:"sku" db:"sku"`
	Quantity     int    `json:"quantity" db:"quantity"`
	MinThreshold int    `json:"min_threshold" db:"min_threshold"`
}
