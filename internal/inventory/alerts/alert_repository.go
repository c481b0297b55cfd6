package alerts

import (
	"fmt"

	"stocktrack/internal/repository"
	"stocktrack/pkg/metadata"
	"stocktrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AlertRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AlertRepository {
	return &AlertRepository{repository: r}
}

// itemState is the slice of an inventory item the reconciler needs.
type itemState struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	SKU          string `db:"sku"`
	Quantity     int    `db:"quantity"`
	Unit         string `db:"unit"`
	MinThreshold int    `db:"min_threshold"`
}

func (r *AlertRepository) getItemState(itemID int) (*itemState, bool, error) {
	query := r.repository.GoquDBWrapper.
		From("inventory_items").
		Select("id", "name", "sku", "quantity", "unit", "min_threshold").
		Where(goqu.Ex{"id": itemID})

	var item itemState
	found, err := query.Executor().ScanStruct(&item)
	if err != nil {
		return nil, false, fmt.Errorf("unable to load item state: %w", err)
	}

	return &item, found, nil
}

func (r *AlertRepository) hasUnresolvedAlert(itemID int, alertType metadata.AlertType) (bool, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		From("alerts").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{
			"item_id":     itemID,
			"alert_type":  alertType.String(),
			"is_resolved": false,
		}).
		Executor().ScanVal(&count)
	if err != nil {
		return false, fmt.Errorf("unable to check for unresolved alerts: %w", err)
	}

	return count > 0, nil
}

func (r *AlertRepository) insertAlert(itemID int, alertType metadata.AlertType, message string, severity metadata.Severity) error {
	query := r.repository.GoquDBWrapper.Insert("alerts").
		Rows(goqu.Record{
			"item_id":    itemID,
			"alert_type": alertType.String(),
			"message":    message,
			"severity":   severity.String(),
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert alert record: %w", err)
	}

	return nil
}

func (r *AlertRepository) resolveAlertsForItem(itemID int, alertType metadata.AlertType) error {
	query := r.repository.GoquDBWrapper.Update("alerts").
		Set(goqu.Record{
			"is_resolved": true,
			"resolved_at": goqu.L("now()"),
		}).
		Where(goqu.Ex{
			"item_id":     itemID,
			"alert_type":  alertType.String(),
			"is_resolved": false,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to resolve alerts: %w", err)
	}

	return nil
}

func (r *AlertRepository) getAlertViewQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select(
			goqu.I("a.id"),
			goqu.I("a.item_id"),
			goqu.I("a.alert_type"),
			goqu.I("a.message"),
			goqu.I("a.severity"),
			goqu.I("a.is_resolved"),
			goqu.I("a.created_at"),
			goqu.I("a.resolved_at"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.sku").As("sku"),
			goqu.I("i.quantity").As("quantity"),
			goqu.I("i.min_threshold").As("min_threshold"),
		).
		From(goqu.T("alerts").As("a")).
		Join(
			goqu.T("inventory_items").As("i"),
			goqu.On(goqu.Ex{"a.item_id": goqu.I("i.id")}),
		)
}

func (r *AlertRepository) GetActiveAlerts() (*[]models.AlertView, error) {
	query := r.getAlertViewQuery().
		Where(goqu.Ex{"a.is_resolved": false}).
		Order(
			goqu.L("CASE a.severity WHEN 'critical' THEN 1 WHEN 'high' THEN 2 WHEN 'warning' THEN 3 ELSE 4 END").Asc(),
			goqu.I("a.created_at").Desc(),
		)

	var alerts []models.AlertView
	if err := query.Executor().ScanStructs(&alerts); err != nil {
		return nil, fmt.Errorf("unable to select active alerts from database: %w", err)
	}

	return &alerts, nil
}

func (r *AlertRepository) GetAllAlerts() (*[]models.AlertView, error) {
	query := r.getAlertViewQuery().
		Order(goqu.I("a.created_at").Desc())

	var alerts []models.AlertView
	if err := query.Executor().ScanStructs(&alerts); err != nil {
		return nil, fmt.Errorf("unable to select alerts from database: %w", err)
	}

	return &alerts, nil
}

// ResolveAlert marks one alert resolved by id. Returns false when no row
// matched.
func (r *AlertRepository) ResolveAlert(alertID int) (bool, error) {
	query := r.repository.GoquDBWrapper.Update("alerts").
		Set(goqu.Record{
			"is_resolved": true,
			"resolved_at": goqu.L("now()"),
		}).
		Where(goqu.Ex{"id": alertID})

	result, err := query.Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("failed to resolve alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *AlertRepository) DeleteAlert(alertID int) (bool, error) {
	query := r.repository.GoquDBWrapper.Delete("alerts").
		Where(goqu.Ex{"id": alertID})

	result, err := query.Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("failed to delete alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
