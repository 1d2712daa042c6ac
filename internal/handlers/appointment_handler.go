package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/httpresp"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	ucAppointment "github.com/DjapsSparrow/Kine-siologie/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	completeUC     *ucAppointment.CompleteAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	listUC         *ucAppointment.ListAppointments
	calendarUC     *ucAppointment.CalendarEvents
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	calendarUC *ucAppointment.CalendarEvents,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		calendarUC:     calendarUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	DurationMin int    `json:"duration" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	DurationMin int    `json:"duration" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

// writeScheduleError maps engine and business errors to the response
// taxonomy. Validation failures are recoverable by fixing the input.
func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidDuration):
		httperr.BadRequest(c, "invalid_duration", "La durée doit être un multiple positif de 15 minutes.")
		return
	case errors.Is(err, schedule.ErrOutOfWindow):
		httperr.BadRequest(c, "out_of_window", "Le créneau est en dehors des heures d'ouverture.")
		return
	case errors.Is(err, schedule.ErrInvalidTime):
		httperr.BadRequest(c, "invalid_date_or_time", "Date ou heure invalide.")
		return
	}

	switch code := httperr.BusinessCode(err); code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Rendez-vous introuvable.")
	case "client_not_found":
		httperr.BadRequest(c, code, "Client introuvable.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Statut invalide.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Date invalide.")
	default:
		if httperr.IsConstraintViolation(err) {
			httperr.Conflict(c, "conflicting_write", "Écriture en conflit, réessayez.")
			return
		}
		httperr.Internal(c, "store_error", "Erreur lors de l'accès aux données.")
	}
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), userID, ucAppointment.CreateAppointmentInput{
		ClientID:    req.ClientID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / CALENDAR / AVAILABILITY
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "Les bornes from et to sont obligatoires.")
		return
	}

	if _, err := parsePracticeDate(from); err != nil {
		httperr.BadRequest(c, "invalid_date", "Borne from invalide.")
		return
	}
	if _, err := parsePracticeDate(to); err != nil {
		httperr.BadRequest(c, "invalid_date", "Borne to invalide.")
		return
	}

	events, err := h.calendarUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, events)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	durationMin := schedule.DefaultWindow.SlotMinutes
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Durée invalide.")
			return
		}
		durationMin = parsed
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, durationMin)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), userID, id, ucAppointment.UpdateAppointmentInput{
		ClientID:    req.ClientID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if !confirmed(c) {
		httpresp.NotConfirmed(c)
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	ap, err := h.completeUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if !confirmed(c) {
		httpresp.NotConfirmed(c)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
