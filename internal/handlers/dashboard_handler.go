package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Summary backs the dashboard widgets: next scheduled appointment,
// favorite protocols and the most recent documents.
func (h *DashboardHandler) Summary(c *gin.Context) {
	now := timezone.Now()
	today := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	var upcoming models.Appointment
	hasUpcoming := true
	err := h.db.
		Preload("Client").
		Where("status = ?", "scheduled").
		Where("date > ? OR (date = ? AND start_time >= ?)", today, today, currentTime).
		Order("date ASC, start_time ASC").
		First(&upcoming).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			httperr.Internal(c, "failed_to_load_dashboard", "Erreur lors du chargement du tableau de bord.")
			return
		}
		hasUpcoming = false
	}

	var favorites []models.Protocol
	if err := h.db.
		Where("is_favorite = true").
		Order("updated_at DESC").
		Limit(5).
		Find(&favorites).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erreur lors du chargement du tableau de bord.")
		return
	}

	var recentDocuments []models.Document
	if err := h.db.
		Order("created_at DESC").
		Limit(5).
		Find(&recentDocuments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erreur lors du chargement du tableau de bord.")
		return
	}

	resp := gin.H{
		"favorites":        favorites,
		"recent_documents": recentDocuments,
	}
	if hasUpcoming {
		resp["upcoming_appointment"] = upcoming
	}

	c.JSON(http.StatusOK, resp)
}

// QuickSearch backs the dashboard search box: clients by name.
func (h *DashboardHandler) QuickSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"clients": []models.Client{}})
		return
	}

	like := "%" + query + "%"
	var clients []models.Client
	if err := h.db.
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", like, like).
		Order("last_name ASC").
		Limit(10).
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_search", "Erreur lors de la recherche.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
