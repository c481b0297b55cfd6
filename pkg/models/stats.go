package models

type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

type InventoryStats struct {
	TotalItems          int             `json:"total_items"`
	LowStockItems       int             `json:"low_stock_items"`
	TotalInventoryValue string          `json:"total_inventory_value"`
	Categories          []CategoryCount `json:"categories"`
}
