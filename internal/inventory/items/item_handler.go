package items

import (
	"net/http"
	"strconv"

	custom_error "stocktrack/pkg/errors"
	"stocktrack/pkg/models"

	"github.com/gin-gonic/gin"
)

// ItemOperations is the service surface the handler needs.
type ItemOperations interface {
	ListItems(conditions ListItemsQuery) (*[]models.InventoryItem, error)
	GetItem(id int) (*models.InventoryItem, error)
	GetStats() (*models.InventoryStats, error)
	CreateItem(req CreateItemRequest) (*models.InventoryItem, error)
	UpdateItem(id int, req UpdateItemRequest) (*models.InventoryItem, error)
	DeleteItem(id int) error
	AdjustStock(id int, req AdjustStockRequest) (*models.InventoryItem, error)
}

type ItemHandler struct {
	service ItemOperations
}

func NewItemHandler(service ItemOperations) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) RegisterRoutes(router *gin.Engine) {
	inventoryRoutes := router.Group("/api/inventory")
	{
		inventoryRoutes.GET("", h.ListItems)
		inventoryRoutes.GET("/stats", h.GetStats)
		inventoryRoutes.GET("/:id", h.GetItem)
		inventoryRoutes.POST("", h.CreateItem)
		inventoryRoutes.PUT("/:id", h.UpdateItem)
		inventoryRoutes.PATCH("/:id/stock", h.AdjustStock)
		inventoryRoutes.DELETE("/:id", h.DeleteItem)
	}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	var conditions ListItemsQuery
	if err := c.ShouldBindQuery(&conditions); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid query parameters"})
		return
	}

	itemList, err := h.service.ListItems(conditions)
	if err != nil {
		respondWithError(c, err, "Unable to list inventory items")
		return
	}

	items := *itemList
	if items == nil {
		items = []models.InventoryItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		respondWithError(c, err, "Unable to get inventory item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *ItemHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		respondWithError(c, err, "Unable to compute inventory statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, SKU, and quantity are required fields"})
		return
	}

	item, err := h.service.CreateItem(req)
	if err != nil {
		respondWithError(c, err, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Item created successfully",
		"data":    item,
	})
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	item, err := h.service.UpdateItem(id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item updated successfully",
		"data":    item,
	})
}

func (h *ItemHandler) AdjustStock(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity and operation (add/remove) are required"})
		return
	}

	item, err := h.service.AdjustStock(id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update stock")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock updated successfully",
		"data":    item,
	})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(id); err != nil {
		respondWithError(c, err, "Failed to delete inventory item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item deleted successfully",
	})
}

func bindItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Item id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func respondWithError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *custom_error.NotFoundError:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
	case *custom_error.ConflictError:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"success": false, "message": "SKU already exists"})
	case *custom_error.ValidationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": e.Message})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
	}
}
