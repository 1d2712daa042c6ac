package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session holds the practitioner's notes taken during an appointment.
type Session struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID      *string `gorm:"type:uuid;index" json:"client_id"`
	AppointmentID *string `gorm:"type:uuid;index" json:"appointment_id"`
	ProtocolID    *string `gorm:"type:uuid" json:"protocol_id"`

	ClientFeedback           string `gorm:"type:text" json:"client_feedback"`
	PractitionerObservations string `gorm:"type:text" json:"practitioner_observations"`
	PractitionerNotes        string `gorm:"type:text" json:"practitioner_notes"`
	SyntheticSummary         string `gorm:"type:text" json:"synthetic_summary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
