package items

import (
	"fmt"

	"stocktrack/internal/inventory/alerts"
	"stocktrack/internal/repository"
	"stocktrack/pkg/activitylog"
	custom_error "stocktrack/pkg/errors"
	"stocktrack/pkg/metadata"
	"stocktrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

type ItemService struct {
	itemRepo    *ItemRepository
	repo        *repository.Repository
	reconciler  *alerts.Reconciler
	activityLog *activitylog.Activitylog
	log         *zap.Logger
}

func NewItemService(
	itemRepo *ItemRepository,
	repo *repository.Repository,
	reconciler *alerts.Reconciler,
	activityLog *activitylog.Activitylog,
	log *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		repo:        repo,
		reconciler:  reconciler,
		activityLog: activityLog,
		log:         log,
	}
}

func (s *ItemService) ListItems(conditions ListItemsQuery) (*[]models.InventoryItem, error) {
	return s.itemRepo.GetItemsBy(conditions)
}

func (s *ItemService) GetItem(id int) (*models.InventoryItem, error) {
	return s.itemRepo.GetItem(id)
}

func (s *ItemService) GetStats() (*models.InventoryStats, error) {
	return s.itemRepo.GetStats()
}

func (s *ItemService) CreateItem(req CreateItemRequest) (*models.InventoryItem, error) {
	record := goqu.Record{
		"name":          req.Name,
		"description":   req.Description,
		"sku":           req.SKU,
		"quantity":      *req.Quantity,
		"unit":          "units",
		"category":      req.Category,
		"min_threshold": 10,
		"max_threshold": 100,
		"unit_price":    0.00,
		"supplier":      req.Supplier,
		"location":      req.Location,
	}
	if req.Unit != "" {
		record["unit"] = req.Unit
	}
	if req.MinThreshold != nil {
		record["min_threshold"] = *req.MinThreshold
	}
	if req.MaxThreshold != nil {
		record["max_threshold"] = *req.MaxThreshold
	}
	if req.UnitPrice != nil {
		record["unit_price"] = *req.UnitPrice
	}

	itemID, err := s.itemRepo.PersistItem(record)
	if err != nil {
		return nil, err
	}

	s.activityLog.Log(itemID, "CREATE", fmt.Sprintf("Created new item: %s", req.Name))
	s.reconcileAlerts(itemID)

	return s.itemRepo.GetItem(itemID)
}

func (s *ItemService) UpdateItem(id int, req UpdateItemRequest) (*models.InventoryItem, error) {
	existing, err := s.itemRepo.GetItem(id)
	if err != nil {
		return nil, err
	}

	record := goqu.Record{}
	if req.Name != nil {
		record["name"] = *req.Name
	}
	if req.Description != nil {
		record["description"] = *req.Description
	}
	if req.SKU != nil {
		record["sku"] = *req.SKU
	}
	if req.Quantity != nil {
		record["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		record["unit"] = *req.Unit
	}
	if req.Category != nil {
		record["category"] = *req.Category
	}
	if req.MinThreshold != nil {
		record["min_threshold"] = *req.MinThreshold
	}
	if req.MaxThreshold != nil {
		record["max_threshold"] = *req.MaxThreshold
	}
	if req.UnitPrice != nil {
		record["unit_price"] = *req.UnitPrice
	}
	if req.Supplier != nil {
		record["supplier"] = *req.Supplier
	}
	if req.Location != nil {
		record["location"] = *req.Location
	}

	if err := s.itemRepo.UpdateItem(id, record); err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	s.activityLog.Log(id, "UPDATE", fmt.Sprintf("Updated item: %s", name))
	s.reconcileAlerts(id)

	return s.itemRepo.GetItem(id)
}

// DeleteItem removes the item together with a trail entry in one
// transaction. Alerts go with the item via the cascade; the trail row
// keeps a nulled item_id.
func (s *ItemService) DeleteItem(id int) error {
	existing, err := s.itemRepo.GetItem(id)
	if err != nil {
		return err
	}

	return repository.WithTransaction(s.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if err := s.activityLog.LogTx(tx, id, "DELETE", fmt.Sprintf("Deleted item: %s", existing.Name)); err != nil {
			return err
		}
		return s.itemRepo.DeleteItem(tx, id)
	})
}

func (s *ItemService) AdjustStock(id int, req AdjustStockRequest) (*models.InventoryItem, error) {
	operation, err := metadata.NewStockOperation(req.Operation)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	newQuantity, err := s.itemRepo.AdjustQuantity(id, operation, req.Quantity)
	if err != nil {
		return nil, err
	}

	verb := "Added"
	if operation == metadata.OperationRemove {
		verb = "Removed"
	}
	s.activityLog.Log(id, operation.Action(), fmt.Sprintf("%s %d units. New quantity: %d", verb, req.Quantity, newQuantity))
	s.reconcileAlerts(id)

	return s.itemRepo.GetItem(id)
}

// reconcileAlerts keeps alert state in sync after a mutation. The
// mutation has already committed; a reconciliation failure is logged and
// never surfaces to the client.
func (s *ItemService) reconcileAlerts(itemID int) {
	if err := s.reconciler.Reconcile(itemID); err != nil {
		s.log.Error("Alert reconciliation failed",
			zap.Int("item_id", itemID),
			zap.Error(err),
		)
	}
}
