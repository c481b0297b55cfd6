package models

import "time"

type InventoryItem struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description" db:"description"`
	SKU          string    `json:"sku" db:"sku"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Unit         string    `json:"unit" db:"unit"`
	Category     *string   `json:"category" db:"category"`
	MinThreshold int       `json:"min_threshold" db:"min_threshold"`
	MaxThreshold int       `json:"max_threshold" db:"max_threshold"`
	UnitPrice    float64   `json:"unit_price" db:"unit_price"`
	Supplier     *string   `json:"supplier" db:"supplier"`
	Location     *string   `json:"location" db:"location"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
