package models

import "time"

// AboutSingletonID is the primary key of the only About row.
const AboutSingletonID uint = 1

// About is the singleton profile shown in the About section.
type About struct {
	ID           uint      `gorm:"primaryKey" json:"_id"`
	Text         string    `gorm:"type:text" json:"text"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Education    string    `gorm:"type:text" json:"education,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CVLink       string    `json:"cvLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
