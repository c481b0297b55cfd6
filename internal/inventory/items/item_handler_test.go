package items

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "stocktrack/pkg/errors"
	"stocktrack/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ListItems(conditions ListItemsQuery) (*[]models.InventoryItem, error) {
	args := m.Called(conditions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.InventoryItem), args.Error(1)
}

func (m *MockItemService) GetItem(id int) (*models.InventoryItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockItemService) GetStats() (*models.InventoryStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryStats), args.Error(1)
}

func (m *MockItemService) CreateItem(req CreateItemRequest) (*models.InventoryItem, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockItemService) UpdateItem(id int, req UpdateItemRequest) (*models.InventoryItem, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockItemService) DeleteItem(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemService) AdjustStock(id int, req AdjustStockRequest) (*models.InventoryItem, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func setupItemRouter(service ItemOperations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewItemHandler(service).RegisterRoutes(router)
	return router
}

func sampleItem() *models.InventoryItem {
	return &models.InventoryItem{
		ID:           1,
		Name:         "Widget",
		SKU:          "W-1",
		Quantity:     5,
		Unit:         "units",
		MinThreshold: 10,
		MaxThreshold: 100,
	}
}

func TestCreateItem(t *testing.T) {
	service := new(MockItemService)
	service.On("CreateItem", mock.AnythingOfType("items.CreateItemRequest")).Return(sampleItem(), nil)

	router := setupItemRouter(service)
	body, _ := json.Marshal(map[string]interface{}{
		"name":          "Widget",
		"sku":           "W-1",
		"quantity":      5,
		"min_threshold": 10,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Item created successfully", response["message"])
	service.AssertExpectations(t)
}

func TestCreateItemMissingRequiredFields(t *testing.T) {
	service := new(MockItemService)

	router := setupItemRouter(service)
	body := []byte(`{"name": "Widget"}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "CreateItem", mock.Anything)
}

func TestCreateItemZeroQuantityAllowed(t *testing.T) {
	service := new(MockItemService)
	service.On("CreateItem", mock.MatchedBy(func(req CreateItemRequest) bool {
		return req.Quantity != nil && *req.Quantity == 0
	})).Return(sampleItem(), nil)

	router := setupItemRouter(service)
	body := []byte(`{"name": "Widget", "sku": "W-1", "quantity": 0}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestCreateItemDuplicateSKU(t *testing.T) {
	service := new(MockItemService)
	service.On("CreateItem", mock.Anything).Return(nil, custom_error.WrapDBError("SKU already exists", "23505"))

	router := setupItemRouter(service)
	body := []byte(`{"name": "Widget", "sku": "W-1", "quantity": 5}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "SKU already exists", response["message"])
}

func TestGetItemNotFound(t *testing.T) {
	service := new(MockItemService)
	service.On("GetItem", 42).Return(nil, custom_error.NewNotFoundError("inventory item", 42))

	router := setupItemRouter(service)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/inventory/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListItemsWithFilters(t *testing.T) {
	service := new(MockItemService)
	service.On("ListItems", ListItemsQuery{Category: "Electronics", LowStock: "true"}).
		Return(&[]models.InventoryItem{*sampleItem()}, nil)

	router := setupItemRouter(service)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/inventory?category=Electronics&low_stock=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
	service.AssertExpectations(t)
}

func TestAdjustStockInvalidOperation(t *testing.T) {
	service := new(MockItemService)
	service.On("AdjustStock", 1, mock.Anything).
		Return(nil, custom_error.NewValidationError("invalid operation: set, only valid values are: add, remove"))

	router := setupItemRouter(service)
	body := []byte(`{"quantity": 5, "operation": "set"}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/inventory/1/stock", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustStockMissingOperation(t *testing.T) {
	service := new(MockItemService)

	router := setupItemRouter(service)
	body := []byte(`{"quantity": 5}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/inventory/1/stock", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
}

func TestDeleteItem(t *testing.T) {
	service := new(MockItemService)
	service.On("DeleteItem", 1).Return(nil)

	router := setupItemRouter(service)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/inventory/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Item deleted successfully"}`, w.Body.String())
}

func TestGetStats(t *testing.T) {
	service := new(MockItemService)
	service.On("GetStats").Return(&models.InventoryStats{
		TotalItems:          8,
		LowStockItems:       3,
		TotalInventoryValue: "2547.10",
		Categories: []models.CategoryCount{
			{Category: "Electronics", Count: 4},
			{Category: "Office Supplies", Count: 4},
		},
	}, nil)

	router := setupItemRouter(service)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/inventory/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["low_stock_items"])
	assert.Equal(t, "2547.10", data["total_inventory_value"])
}
