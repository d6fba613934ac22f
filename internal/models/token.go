package models

import "time"

// RevokedToken marks a signed-out access token. Only the SHA-256 of the token
// is stored; rows can be purged once ExpiresAt has passed.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	TokenHash string    `gorm:"uniqueIndex;size:64"`
	UserID    string    `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
