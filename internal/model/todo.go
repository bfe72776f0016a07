package model

import "time"

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *Date     `json:"dueDate"`
	CategoryID  *string   `json:"categoryId"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasCategory reports whether the todo references the given category id.
func (t Todo) HasCategory(categoryID string) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}
