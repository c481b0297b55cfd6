package activitylog

import (
	"fmt"

	"stocktrack/internal/repository"
	"stocktrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

const systemUser = "system"

// Activitylog appends rows to the activity_log audit trail. Failures are
// logged and swallowed so a missing trail entry never fails the mutation
// it describes.
type Activitylog struct {
	r   *repository.Repository
	log *zap.Logger
}

func NewActivityLog(r *repository.Repository, log *zap.Logger) *Activitylog {
	return &Activitylog{r: r, log: log}
}

func (a *Activitylog) Log(itemID int, action string, details string) {
	entry := models.ActivityEntry{
		ItemID:  &itemID,
		Action:  action,
		Details: details,
		User:    systemUser,
	}

	if err := a.persistEntry(entry); err != nil {
		a.log.Warn("Unable to create activity log entry",
			zap.Int("item_id", itemID),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}

	a.log.Debug("Created activity log entry",
		zap.Int("item_id", itemID),
		zap.String("action", action),
	)
}

// LogTx writes the entry inside the caller's transaction, for trail rows
// that must commit together with the mutation they describe.
func (a *Activitylog) LogTx(tx *goqu.TxDatabase, itemID int, action string, details string) error {
	query := tx.Insert("activity_log").
		Rows(goqu.Record{
			"item_id": itemID,
			"action":  action,
			"details": details,
			"user":    systemUser,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert activity log entry: %w", err)
	}

	return nil
}

func (a *Activitylog) persistEntry(entry models.ActivityEntry) error {
	query := a.r.GoquDBWrapper.Insert("activity_log").
		Rows(goqu.Record{
			"item_id": entry.ItemID,
			"action":  entry.Action,
			"details": entry.Details,
			"user":    entry.User,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert activity log entry: %w", err)
	}

	return nil
}
