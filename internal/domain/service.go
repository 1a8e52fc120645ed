package domain

import "time"

// Service represents a service offered by the shop (haircut, shave, ...)
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
}
