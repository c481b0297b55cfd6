package container

import (
	"database/sql"

	"stocktrack/internal/inventory/alerts"
	"stocktrack/internal/inventory/items"
	"stocktrack/internal/repository"
	"stocktrack/pkg/activitylog"

	"go.uber.org/zap"
)

// Container wires the application graph once at startup. The store is
// constructed here and injected; no package holds a global connection.
type Container struct {
	Repository   *repository.Repository
	ActivityLog  *activitylog.Activitylog
	Reconciler   *alerts.Reconciler
	ItemHandler  *items.ItemHandler
	AlertHandler *alerts.AlertHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	activityLog := activitylog.NewActivityLog(repo, log)

	alertRepo := alerts.NewRepository(repo)
	reconciler := alerts.NewReconciler(alertRepo, log)
	alertHandler := alerts.NewAlertHandler(alertRepo)

	itemRepo := items.NewRepository(repo)
	itemService := items.NewItemService(itemRepo, repo, reconciler, activityLog, log)
	itemHandler := items.NewItemHandler(itemService)

	return &Container{
		Repository:   repo,
		ActivityLog:  activityLog,
		Reconciler:   reconciler,
		ItemHandler:  itemHandler,
		AlertHandler: alertHandler,
	}
}

// Close releases everything the container owns.
func (c *Container) Close() error {
	return c.Repository.Close()
}
