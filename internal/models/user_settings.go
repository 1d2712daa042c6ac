package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSettings struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Theme                string `gorm:"size:10;default:'light'" json:"theme"`
	AutoLock             bool   `gorm:"default:true" json:"auto_lock"`
	AutoLockTimeoutMin   int    `gorm:"default:15" json:"auto_lock_timeout"`
	ShowWellnessReminder bool   `gorm:"default:true" json:"show_wellness_reminder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
