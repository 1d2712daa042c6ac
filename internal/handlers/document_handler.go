package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	"github.com/DjapsSparrow/Kine-siologie/internal/storage"
)

type DocumentHandler struct {
	db    *gorm.DB
	files *storage.FileStore
	audit *audit.Dispatcher
}

func NewDocumentHandler(
	db *gorm.DB,
	files *storage.FileStore,
	audit *audit.Dispatcher,
) *DocumentHandler {
	return &DocumentHandler{db: db, files: files, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *DocumentHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if protocolID := c.Query("protocol_id"); protocolID != "" {
		q = q.Where("protocol_id = ?", protocolID)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var documents []models.Document
	if err := q.Order("created_at DESC").Find(&documents).Error; err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Erreur lors du chargement des documents.")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// ======================================================
// UPLOAD
// ======================================================

func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

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

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.files.Upload(
		c.Request.Context(),
		"documents",
		fileHeader.Filename,
		contentType,
		data,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Erreur lors de l'envoi du fichier.")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	doc := models.Document{
		Name:      name,
		Category:  c.PostForm("category"),
		FileURL:   url,
		FileType:  contentType,
		Tags:      strings.TrimSpace(c.PostForm("tags")),
		CreatedBy: userID,
	}

	if clientID := c.PostForm("client_id"); clientID != "" {
		doc.ClientID = &clientID
	}
	if protocolID := c.PostForm("protocol_id"); protocolID != "" {
		doc.ProtocolID = &protocolID
	}
	if sessionID := c.PostForm("session_id"); sessionID != "" {
		doc.SessionID = &sessionID
	}

	if err := h.db.Create(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_document", "Erreur lors de l'enregistrement du document.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "document_uploaded",
		Entity:   "document",
		EntityID: &doc.ID,
	})

	c.JSON(http.StatusCreated, doc)
}

// ======================================================
// DELETE
// ======================================================

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, gin.H{"confirmed": false})
		return
	}

	if err := h.db.Delete(&models.Document{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_document", "Erreur lors de la suppression du document.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "document_deleted",
		Entity:   "document",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
