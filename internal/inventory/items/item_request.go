package items

type CreateItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  *string  `json:"description"`
	SKU          string   `json:"sku" binding:"required"`
	Quantity     *int     `json:"quantity" binding:"required,gte=0"`
	Unit         string   `json:"unit"`
	Category     *string  `json:"category"`
	MinThreshold *int     `json:"min_threshold"`
	MaxThreshold *int     `json:"max_threshold"`
	UnitPrice    *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Supplier     *string  `json:"supplier"`
	Location     *string  `json:"location"`
}

// UpdateItemRequest carries a partial update; nil fields keep their
// stored value.
type UpdateItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	SKU          *string  `json:"sku"`
	Quantity     *int     `json:"quantity" binding:"omitempty,gte=0"`
	Unit         *string  `json:"unit"`
	Category     *string  `json:"category"`
	MinThreshold *int     `json:"min_threshold"`
	MaxThreshold *int     `json:"max_threshold"`
	UnitPrice    *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Supplier     *string  `json:"supplier"`
	Location     *string  `json:"location"`
}

type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Operation string `json:"operation" binding:"required"`
}

type ListItemsQuery struct {
	Category string `form:"category"`
	LowStock string `form:"low_stock"`
}
