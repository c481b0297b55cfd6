package items

import (
	"fmt"

	"stocktrack/internal/repository"
	custom_error "stocktrack/pkg/errors"
	"stocktrack/pkg/metadata"
	"stocktrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type ItemRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ItemRepository {
	return &ItemRepository{repository: r}
}

func (r *ItemRepository) GetItem(id int) (*models.InventoryItem, error) {
	query := r.repository.GoquDBWrapper.
		From("inventory_items").
		Where(goqu.Ex{"id": id})

	var item models.InventoryItem
	found, err := query.Executor().ScanStruct(&item)
	if err != nil {
		return nil, fmt.Errorf("unable to select inventory item from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("inventory item", id)
	}

	return &item, nil
}

func (r *ItemRepository) GetItemsBy(conditions ListItemsQuery) (*[]models.InventoryItem, error) {
	query := r.repository.GoquDBWrapper.
		From("inventory_items").
		Order(goqu.I("name").Asc())

	if conditions.Category != "" {
		query = query.Where(goqu.Ex{"category": conditions.Category})
	}
	if conditions.LowStock == "true" {
		query = query.Where(goqu.C("quantity").Lte(goqu.I("min_threshold")))
	}

	var items []models.InventoryItem
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select inventory items from database: %w", err)
	}

	return &items, nil
}

func (r *ItemRepository) PersistItem(record goqu.Record) (int, error) {
	var itemID int

	query := r.repository.GoquDBWrapper.Insert("inventory_items").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&itemID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("SKU already exists", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert inventory item record: %w", err)
	}

	return itemID, nil
}

func (r *ItemRepository) UpdateItem(id int, record goqu.Record) error {
	record["updated_at"] = goqu.L("now()")

	query := r.repository.GoquDBWrapper.Update("inventory_items").
		Set(record).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("SKU already exists", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("inventory item", id)
	}

	return nil
}

// AdjustQuantity applies the stock operation as a single conditional
// update so two concurrent adjustments never lose a write. Removal floors
// the result at zero.
func (r *ItemRepository) AdjustQuantity(id int, operation metadata.StockOperation, quantity int) (int, error) {
	var expr goqu.Record
	switch operation {
	case metadata.OperationAdd:
		expr = goqu.Record{"quantity": goqu.L("quantity + ?", quantity)}
	case metadata.OperationRemove:
		expr = goqu.Record{"quantity": goqu.L("GREATEST(quantity - ?, 0)", quantity)}
	default:
		return 0, custom_error.NewValidationError(fmt.Sprintf("invalid operation: %s", operation))
	}

	expr["updated_at"] = goqu.L("now()")

	query := r.repository.GoquDBWrapper.Update("inventory_items").
		Set(expr).
		Where(goqu.Ex{"id": id}).
		Returning("quantity")

	var newQuantity int
	found, err := query.Executor().ScanVal(&newQuantity)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust stock quantity: %w", err)
	}
	if !found {
		return 0, custom_error.NewNotFoundError("inventory item", id)
	}

	return newQuantity, nil
}

func (r *ItemRepository) DeleteItem(tx *goqu.TxDatabase, id int) error {
	query := tx.Delete("inventory_items").
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("inventory item", id)
	}

	return nil
}

func (r *ItemRepository) GetStats() (*models.InventoryStats, error) {
	db := r.repository.GoquDBWrapper

	var totalItems int
	if _, err := db.From("inventory_items").
		Select(goqu.COUNT("*")).
		Executor().ScanVal(&totalItems); err != nil {
		return nil, fmt.Errorf("failed to count inventory items: %w", err)
	}

	var lowStockItems int
	if _, err := db.From("inventory_items").
		Select(goqu.COUNT("*")).
		Where(goqu.C("quantity").Lte(goqu.I("min_threshold"))).
		Executor().ScanVal(&lowStockItems); err != nil {
		return nil, fmt.Errorf("failed to count low stock items: %w", err)
	}

	var totalValue float64
	if _, err := db.From("inventory_items").
		Select(goqu.L("COALESCE(SUM(quantity * unit_price), 0)")).
		Executor().ScanVal(&totalValue); err != nil {
		return nil, fmt.Errorf("failed to sum inventory value: %w", err)
	}

	var categories []models.CategoryCount
	if err := db.From("inventory_items").
		Select(goqu.C("category"), goqu.COUNT("*").As("count")).
		Where(goqu.C("category").IsNotNull()).
		GroupBy(goqu.C("category")).
		Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return &models.InventoryStats{
		TotalItems:          totalItems,
		LowStockItems:       lowStockItems,
		TotalInventoryValue: fmt.Sprintf("%.2f", totalValue),
		Categories:          categories,
	}, nil
}
