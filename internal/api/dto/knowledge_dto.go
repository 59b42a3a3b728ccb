package dto

import "time"

// ArticleRequest is a knowledge base article creation/update payload.
type ArticleRequest struct {
	CategoryID *string `json:"category_id"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Published  bool    `json:"published"`
}

// ArticleResponse is a knowledge base entry.
type ArticleResponse struct {
	ID         string    `json:"id"`
	CategoryID *string   `json:"category_id"`
	AuthorID   string    `json:"author_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ArticleCategoryResponse is a knowledge base category.
type ArticleCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
