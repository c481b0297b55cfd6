package alerts

import (
	"net/http"
	"strconv"

	"stocktrack/pkg/models"

	"github.com/gin-gonic/gin"
)

// AlertStore is the repository surface the handler needs.
type AlertStore interface {
	GetActiveAlerts() (*[]models.AlertView, error)
	GetAllAlerts() (*[]models.AlertView, error)
	ResolveAlert(alertID int) (bool, error)
	DeleteAlert(alertID int) (bool, error)
}

type AlertHandler struct {
	r AlertStore
}

func NewAlertHandler(r AlertStore) *AlertHandler {
	return &AlertHandler{r: r}
}

func (h *AlertHandler) RegisterRoutes(router *gin.Engine) {
	alertRoutes := router.Group("/api/alerts")
	{
		alertRoutes.GET("/active", h.GetActiveAlerts)
		alertRoutes.GET("", h.GetAllAlerts)
		alertRoutes.PATCH("/:id/resolve", h.ResolveAlert)
		alertRoutes.DELETE("/:id", h.DeleteAlert)
	}
}

func (h *AlertHandler) GetActiveAlerts(c *gin.Context) {
	alertList, err := h.r.GetActiveAlerts()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to list active alerts"})
		return
	}

	h.respondWithAlerts(c, alertList)
}

func (h *AlertHandler) GetAllAlerts(c *gin.Context) {
	alertList, err := h.r.GetAllAlerts()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to list alerts"})
		return
	}

	h.respondWithAlerts(c, alertList)
}

func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	id, ok := bindAlertID(c)
	if !ok {
		return
	}

	resolved, err := h.r.ResolveAlert(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resolve alert"})
		return
	}
	if !resolved {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Alert resolved successfully",
	})
}

func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	id, ok := bindAlertID(c)
	if !ok {
		return
	}

	deleted, err := h.r.DeleteAlert(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete alert"})
		return
	}
	if !deleted {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Alert deleted successfully",
	})
}

func (h *AlertHandler) respondWithAlerts(c *gin.Context, alertList *[]models.AlertView) {
	alerts := *alertList
	if alerts == nil {
		alerts = []models.AlertView{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(alerts),
		"data":    alerts,
	})
}

func bindAlertID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Alert id must be a positive integer"})
		return 0, false
	}
	return id, true
}
