package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	FileURL  string `gorm:"size:500;not null" json:"file_url"`
	FileType string `gorm:"size:50" json:"file_type"`

	// Comma-separated tag list.
	Tags string `gorm:"size:255" json:"tags"`

	ClientID   *string `gorm:"type:uuid;index" json:"client_id"`
	ProtocolID *string `gorm:"type:uuid" json:"protocol_id"`
	SessionID  *string `gorm:"type:uuid" json:"session_id"`

	CreatedBy string `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
