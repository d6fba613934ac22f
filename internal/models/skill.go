package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Skill struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Icon      string    `json:"icon"` // CSS class, e.g. "fab fa-react"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
