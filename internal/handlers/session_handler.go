package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

type SessionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSessionHandler(db *gorm.DB, audit *audit.Dispatcher) *SessionHandler {
	return &SessionHandler{db: db, audit: audit}
}

type SessionRequest struct {
	ClientID                 *string `json:"client_id"`
	AppointmentID            *string `json:"appointment_id"`
	ProtocolID               *string `json:"protocol_id"`
	ClientFeedback           string  `json:"client_feedback"`
	PractitionerObservations string  `json:"practitioner_observations"`
	PractitionerNotes        string  `json:"practitioner_notes"`
	SyntheticSummary         string  `json:"synthetic_summary"`
}

func (h *SessionHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if appointmentID := c.Query("appointment_id"); appointmentID != "" {
		q = q.Where("appointment_id = ?", appointmentID)
	}

	var sessions []models.Session
	if err := q.Order("created_at DESC").Find(&sessions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sessions", "Erreur lors du chargement des séances.")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	session := models.Session{
		ClientID:                 req.ClientID,
		AppointmentID:            req.AppointmentID,
		ProtocolID:               req.ProtocolID,
		ClientFeedback:           req.ClientFeedback,
		PractitionerObservations: req.PractitionerObservations,
		PractitionerNotes:        req.PractitionerNotes,
		SyntheticSummary:         req.SyntheticSummary,
	}

	if err := h.db.Create(&session).Error; err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erreur lors de la création de la séance.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "session_created",
		Entity:   "session",
		EntityID: &session.ID,
	})

	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var session models.Session
	if err := h.db.First(&session, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "session_not_found", "Séance introuvable.")
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	session.ClientID = req.ClientID
	session.AppointmentID = req.AppointmentID
	session.ProtocolID = req.ProtocolID
	session.ClientFeedback = req.ClientFeedback
	session.PractitionerObservations = req.PractitionerObservations
	session.PractitionerNotes = req.PractitionerNotes
	session.SyntheticSummary = req.SyntheticSummary

	if err := h.db.Save(&session).Error; err != nil {
		httperr.Internal(c, "failed_to_update_session", "Erreur lors de la modification de la séance.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "session_updated",
		Entity:   "session",
		EntityID: &session.ID,
	})

	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, gin.H{"confirmed": false})
		return
	}

	if err := h.db.Delete(&models.Session{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_session", "Erreur lors de la suppression de la séance.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "session_deleted",
		Entity:   "session",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
