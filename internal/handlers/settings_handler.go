package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type SettingsRequest struct {
	Theme                string `json:"theme" binding:"required,oneof=light dark"`
	AutoLock             bool   `json:"auto_lock"`
	AutoLockTimeoutMin   int    `json:"auto_lock_timeout" binding:"omitempty,min=1,max=120"`
	ShowWellnessReminder bool   `json:"show_wellness_reminder"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var settings models.UserSettings
	err := h.db.Where("user_id = ?", userID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.UserSettings{UserID: userID}
		err = h.db.Create(&settings).Error
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erreur lors du chargement des paramètres.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	var settings models.UserSettings
	err := h.db.Where("user_id = ?", userID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.UserSettings{UserID: userID}
		err = nil
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erreur lors du chargement des paramètres.")
		return
	}

	settings.Theme = req.Theme
	settings.AutoLock = req.AutoLock
	settings.ShowWellnessReminder = req.ShowWellnessReminder

	// omitted timeout keeps the stored value
	if req.AutoLockTimeoutMin > 0 {
		settings.AutoLockTimeoutMin = req.AutoLockTimeoutMin
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erreur lors de l'enregistrement des paramètres.")
		return
	}

	c.JSON(http.StatusOK, settings)
}
