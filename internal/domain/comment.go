package domain

import "time"

// Comment is a thread entry on a ticket. Internal comments (work notes) are
// visible to staff only.
type Comment struct {
	ID        string
	TicketID  string
	AuthorID  string
	Body      string
	Internal  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
