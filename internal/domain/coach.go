package domain

import "time"

// Coach teaches lessons on the timetable. Coaches are seeded at startup and
// immutable afterwards; lessons reference them by ID.
type Coach struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}
