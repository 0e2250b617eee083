package domain

import "time"

// Category represents a catalog shelf such as fantasy or sci-fi.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
