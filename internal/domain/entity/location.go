package entity

import "time"

// Location representa un punto físico de almacenamiento o distribución
// (nombre único).
type Location struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
