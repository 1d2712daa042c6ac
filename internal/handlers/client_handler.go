package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	"github.com/DjapsSparrow/Kine-siologie/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

type ClientRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"date_of_birth"`
	GlobalSummary string `json:"global_summary"`
	PersonalNotes string `json:"personal_notes"`
}

// ======================================================
// LIST (with search)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("last_name ASC, first_name ASC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'adresse e-mail ne semble pas valide.")
		return
	}

	client := models.Client{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         email,
		Phone:         req.Phone,
		GlobalSummary: req.GlobalSummary,
		PersonalNotes: req.PersonalNotes,
		CreatedBy:     userID,
	}

	if req.DateOfBirth != "" {
		dob, err := parsePracticeDate(req.DateOfBirth)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date de naissance invalide.")
			return
		}
		client.DateOfBirth = &dob
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erreur lors de la création du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'adresse e-mail ne semble pas valide.")
		return
	}

	client.FirstName = strings.TrimSpace(req.FirstName)
	client.LastName = strings.TrimSpace(req.LastName)
	client.Email = email
	client.Phone = req.Phone
	client.GlobalSummary = req.GlobalSummary
	client.PersonalNotes = req.PersonalNotes

	if req.DateOfBirth != "" {
		dob, err := parsePracticeDate(req.DateOfBirth)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date de naissance invalide.")
			return
		}
		client.DateOfBirth = &dob
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erreur lors de la modification du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, gin.H{"confirmed": false})
		return
	}

	if err := h.db.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erreur lors de la suppression du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
