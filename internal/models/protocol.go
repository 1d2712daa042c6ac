package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Protocol struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	CategoryID  *string `gorm:"type:uuid" json:"category_id"`

	Category ProtocolCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	FileURL    string `gorm:"size:500" json:"file_url"`
	IsFavorite bool   `gorm:"default:false" json:"is_favorite"`
	Notes      string `gorm:"type:text" json:"notes"`

	// Set once the attached document has been analyzed.
	IsDynamic      bool       `gorm:"default:false" json:"is_dynamic"`
	DynamicContent string     `gorm:"type:text" json:"dynamic_content"`
	AnalyzedAt     *time.Time `json:"analyzed_at"`

	CreatedBy string `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Protocol) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProtocolCategory struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *ProtocolCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
