package models

import "github.com/google/uuid"

// Category is a read-only product grouping, seeded by cmd/seed.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}
