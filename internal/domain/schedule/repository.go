package schedule

import (
	"context"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

// Repository is the store adapter the scheduling use cases depend on.
// Appointment reads come back joined with their client, ordered by date
// then start time ascending.
type Repository interface {
	// -------- Appointments --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Clients --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
	) ([]models.Client, error)
}
