package alerts

import (
	"fmt"

	"stocktrack/pkg/metadata"

	"go.uber.org/zap"
)

// reconcilerStore is the slice of AlertRepository the reconciler drives.
type reconcilerStore interface {
	getItemState(itemID int) (*itemState, bool, error)
	hasUnresolvedAlert(itemID int, alertType metadata.AlertType) (bool, error)
	insertAlert(itemID int, alertType metadata.AlertType, message string, severity metadata.Severity) error
	resolveAlertsForItem(itemID int, alertType metadata.AlertType) error
}

// Reconciler keeps the alerts table consistent with item stock levels.
// It runs after every item mutation and is a pure function of the item's
// current quantity, its minimum threshold and the presence of an
// unresolved low-stock alert. No hysteresis: crossing the threshold in
// either direction flips alert state on the next call.
type Reconciler struct {
	store reconcilerStore
	log   *zap.Logger
}

func NewReconciler(r *AlertRepository, log *zap.Logger) *Reconciler {
	return &Reconciler{store: r, log: log}
}

func (rc *Reconciler) Reconcile(itemID int) error {
	item, found, err := rc.store.getItemState(itemID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if item.Quantity > item.MinThreshold {
		return rc.store.resolveAlertsForItem(itemID, metadata.AlertTypeLowStock)
	}

	exists, err := rc.store.hasUnresolvedAlert(itemID, metadata.AlertTypeLowStock)
	if err != nil {
		return err
	}
	if exists {
		// An open alert keeps the severity and message it was created
		// with, even when the stock level worsens afterwards. It only
		// refreshes through a resolve/re-create cycle.
		return nil
	}

	severity := metadata.SeverityFor(item.Quantity, item.MinThreshold)
	message := fmt.Sprintf(
		"Low stock alert: %s (SKU: %s) has only %d %s remaining. Minimum threshold: %d",
		item.Name, item.SKU, item.Quantity, item.Unit, item.MinThreshold,
	)

	if err := rc.store.insertAlert(itemID, metadata.AlertTypeLowStock, message, severity); err != nil {
		return err
	}

	rc.log.Warn("Low stock alert created",
		zap.String("sku", item.SKU),
		zap.Int("quantity", item.Quantity),
		zap.String("severity", severity.String()),
	)

	return nil
}
