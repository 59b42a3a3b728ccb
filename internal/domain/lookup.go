package domain

import "time"

// Category is a top-level ticket classification.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Subcategory refines a category.
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
}

// AssignmentGroup is a pool of staff a ticket can be routed to.
type AssignmentGroup struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// Tag is a free-form label attachable to tickets.
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
