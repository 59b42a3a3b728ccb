package dto

// CategoryResponse is a top-level ticket classification.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SubcategoryResponse refines a category.
type SubcategoryResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// AssignmentGroupResponse is a routing target for tickets.
type AssignmentGroupResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// TagResponse is a free-form ticket label.
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTagRequest payload.
type CreateTagRequest struct {
	Name string `json:"name"`
}
