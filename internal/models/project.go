package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry. JSON names follow the public API contract.
type Project struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	LiveLink    string    `json:"liveLink,omitempty"`
	GithubLink  string    `json:"githubLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return nil
}
