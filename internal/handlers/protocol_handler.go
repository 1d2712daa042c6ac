package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/analysis"
	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	"github.com/DjapsSparrow/Kine-siologie/internal/storage"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

const maxUploadBytes = 20 << 20 // 20 MiB

type ProtocolHandler struct {
	db       *gorm.DB
	files    *storage.FileStore
	analyzer *analysis.Analyzer
	audit    *audit.Dispatcher
}

func NewProtocolHandler(
	db *gorm.DB,
	files *storage.FileStore,
	analyzer *analysis.Analyzer,
	audit *audit.Dispatcher,
) *ProtocolHandler {
	return &ProtocolHandler{
		db:       db,
		files:    files,
		analyzer: analyzer,
		audit:    audit,
	}
}

type ProtocolRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	CategoryID  *string `json:"category_id"`
	NewCategory string  `json:"new_category"`
	Notes       string  `json:"notes"`
}

// ======================================================
// LIST (category + favorite filters)
// ======================================================

func (h *ProtocolHandler) List(c *gin.Context) {
	q := h.db.Preload("Category").Session(&gorm.Session{})

	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if c.Query("favorites") == "true" {
		q = q.Where("is_favorite = true")
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("query"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var protocols []models.Protocol
	if err := q.Order("name ASC").Find(&protocols).Error; err != nil {
		httperr.Internal(c, "failed_to_list_protocols", "Erreur lors du chargement des protocoles.")
		return
	}

	c.JSON(http.StatusOK, protocols)
}

func (h *ProtocolHandler) Get(c *gin.Context) {
	var protocol models.Protocol
	if err := h.db.Preload("Category").First(&protocol, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "protocol_not_found", "Protocole introuvable.")
		return
	}

	c.JSON(http.StatusOK, protocol)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ProtocolHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ProtocolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	categoryID, err := h.resolveCategory(req.CategoryID, req.NewCategory)
	if err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erreur lors de la création de la catégorie.")
		return
	}

	protocol := models.Protocol{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Notes:       req.Notes,
		CreatedBy:   userID,
	}

	if err := h.db.Create(&protocol).Error; err != nil {
		httperr.Internal(c, "failed_to_create_protocol", "Erreur lors de la création du protocole.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "protocol_created",
		Entity:   "protocol",
		EntityID: &protocol.ID,
	})

	c.JSON(http.StatusCreated, protocol)
}

func (h *ProtocolHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var protocol models.Protocol
	if err := h.db.First(&protocol, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "protocol_not_found", "Protocole introuvable.")
		return
	}

	var req ProtocolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	categoryID, err := h.resolveCategory(req.CategoryID, req.NewCategory)
	if err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erreur lors de la création de la catégorie.")
		return
	}

	protocol.Name = req.Name
	protocol.Description = req.Description
	protocol.CategoryID = categoryID
	protocol.Notes = req.Notes

	if err := h.db.Save(&protocol).Error; err != nil {
		httperr.Internal(c, "failed_to_update_protocol", "Erreur lors de la modification du protocole.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "protocol_updated",
		Entity:   "protocol",
		EntityID: &protocol.ID,
	})

	c.JSON(http.StatusOK, protocol)
}

func (h *ProtocolHandler) resolveCategory(categoryID *string, newCategory string) (*string, error) {
	if newCategory == "" {
		return categoryID, nil
	}

	var category models.ProtocolCategory
	err := h.db.Where("name = ?", newCategory).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		category = models.ProtocolCategory{Name: newCategory}
		err = h.db.Create(&category).Error
	}
	if err != nil {
		return nil, err
	}

	return &category.ID, nil
}

// ======================================================
// FAVORITE / DELETE
// ======================================================

func (h *ProtocolHandler) ToggleFavorite(c *gin.Context) {
	var protocol models.Protocol
	if err := h.db.First(&protocol, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "protocol_not_found", "Protocole introuvable.")
		return
	}

	protocol.IsFavorite = !protocol.IsFavorite
	if err := h.db.Save(&protocol).Error; err != nil {
		httperr.Internal(c, "failed_to_update_protocol", "Erreur lors de la modification du protocole.")
		return
	}

	c.JSON(http.StatusOK, protocol)
}

func (h *ProtocolHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, gin.H{"confirmed": false})
		return
	}

	if err := h.db.Delete(&models.Protocol{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_protocol", "Erreur lors de la suppression du protocole.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "protocol_deleted",
		Entity:   "protocol",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// FILE UPLOAD
// ======================================================

func (h *ProtocolHandler) UploadFile(c *gin.Context) {
	var protocol models.Protocol
	if err := h.db.First(&protocol, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "protocol_not_found", "Protocole introuvable.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Fichier manquant.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Le fichier dépasse la taille maximale.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erreur lors de la lecture du fichier.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erreur lors de la lecture du fichier.")
		return
	}

	url, err := h.files.Upload(
		c.Request.Context(),
		"protocols",
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Erreur lors de l'envoi du fichier.")
		return
	}

	protocol.FileURL = url
	if err := h.db.Save(&protocol).Error; err != nil {
		httperr.Internal(c, "failed_to_update_protocol", "Erreur lors de la modification du protocole.")
		return
	}

	c.JSON(http.StatusOK, protocol)
}

// ======================================================
// ANALYSIS
// ======================================================

type AnalyzeRequest struct {
	FileContent string `json:"file_content" binding:"required"`
}

// Analyze sends the attached document text to the analysis service and
// stores the returned summary on the protocol.
func (h *ProtocolHandler) Analyze(c *gin.Context) {
	var protocol models.Protocol
	if err := h.db.First(&protocol, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "protocol_not_found", "Protocole introuvable.")
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Contenu du fichier manquant.")
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.FileContent)
	if err != nil {
		if err == analysis.ErrNotConfigured {
			httperr.Internal(c, "analysis_not_configured", "Service d'analyse non configuré.")
			return
		}
		httperr.Internal(c, "analysis_failed", "Erreur lors de l'analyse du protocole.")
		return
	}

	now := timezone.Now()
	protocol.IsDynamic = true
	protocol.DynamicContent = result
	protocol.AnalyzedAt = &now

	if err := h.db.Save(&protocol).Error; err != nil {
		httperr.Internal(c, "failed_to_update_protocol", "Erreur lors de la modification du protocole.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": result,
	})
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *ProtocolHandler) ListCategories(c *gin.Context) {
	var categories []models.ProtocolCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erreur lors du chargement des catégories.")
		return
	}

	c.JSON(http.StatusOK, categories)
}
