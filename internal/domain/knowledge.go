package domain

import "time"

// ArticleCategory groups knowledge base articles.
type ArticleCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Article is a knowledge base entry authored by staff.
type Article struct {
	ID         string
	CategoryID *string
	AuthorID   string
	Title      string
	Body       string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
