package models

import "time"

const VisitorStatID uint = 1

// VisitorStat holds the site wide visit counter in a single row.
type VisitorStat struct {
	ID        uint  `gorm:"primaryKey"`
	Count     int64 `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
