package model

type FilterStatus string

const (
	FilterStatusAll       FilterStatus = "all"
	FilterStatusActive    FilterStatus = "active"
	FilterStatusCompleted FilterStatus = "completed"
)

func (s FilterStatus) IsValid() bool {
	return s == FilterStatusAll || s == FilterStatusActive || s == FilterStatusCompleted
}

type SortBy string

const (
	SortByDueDate   SortBy = "dueDate"
	SortByCreatedAt SortBy = "createdAt"
)

func (s SortBy) IsValid() bool {
	return s == SortByDueDate || s == SortByCreatedAt
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// Reverse returns the opposite direction.
func (o SortOrder) Reverse() SortOrder {
	if o == SortOrderDesc {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// TodoFilters is the client-side view configuration. A nil CategoryID
// means any category.
type TodoFilters struct {
	Status     FilterStatus `json:"status"`
	CategoryID *string      `json:"categoryId"`
	SortBy     SortBy       `json:"sortBy"`
	SortOrder  SortOrder    `json:"sortOrder"`
}

func DefaultFilters() TodoFilters {
	return TodoFilters{
		Status:    FilterStatusAll,
		SortBy:    SortByDueDate,
		SortOrder: SortOrderAsc,
	}
}
