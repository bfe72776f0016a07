package model

// MaxCategoryNameLength is the single bound applied to category names by
// both the API and the CLI.
const MaxCategoryNameLength = 100

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}
