// Package board is the client-side state of the todo board: a cached copy of
// the server collections, the view filters over them, and the bookkeeping
// for mutations that are still in flight.
package board

import (
	"slices"

	"github.com/jaekwang-park/todo-board/internal/model"
)

// UncategorizedID keys the group of todos without a resolvable category.
const UncategorizedID = "uncategorized"

type CategoryGroup struct {
	ID string
	// Category is nil for the uncategorized group.
	Category *model.Category
	Todos    []model.Todo
}

// VisibleTodos filters and sorts todos according to f. The result is a new
// slice; todos is never modified. Equal sort keys keep their input order.
func VisibleTodos(todos []model.Todo, f model.TodoFilters) []model.Todo {
	visible := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if !matchesStatus(t, f.Status) {
			continue
		}
		if f.CategoryID != nil && !t.HasCategory(*f.CategoryID) {
			continue
		}
		visible = append(visible, t)
	}

	cmp := compareDueDate
	if f.SortBy == model.SortByCreatedAt {
		cmp = compareCreatedAt
	}
	if f.SortOrder == model.SortOrderDesc {
		asc := cmp
		cmp = func(a, b model.Todo) int { return -asc(a, b) }
	}
	slices.SortStableFunc(visible, cmp)

	return visible
}

func matchesStatus(t model.Todo, status model.FilterStatus) bool {
	switch status {
	case model.FilterStatusActive:
		return !t.Completed
	case model.FilterStatusCompleted:
		return t.Completed
	default:
		return true
	}
}

// compareDueDate treats a missing due date as later than any date.
func compareDueDate(a, b model.Todo) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	return a.DueDate.Compare(b.DueDate.Time)
}

func compareCreatedAt(a, b model.Todo) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

// GroupByCategory partitions visible into one group per category, in
// category order, followed by the uncategorized group. Todos whose category
// is null or unknown are uncategorized. Empty groups are omitted.
func GroupByCategory(visible []model.Todo, categories []model.Category) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories)+1)
	index := make(map[string]int, len(categories))
	for _, c := range categories {
		if _, dup := index[c.ID]; dup {
			continue
		}
		index[c.ID] = len(groups)
		groups = append(groups, CategoryGroup{ID: c.ID, Category: &c})
	}
	uncategorized := len(groups)
	groups = append(groups, CategoryGroup{ID: UncategorizedID})

	for _, t := range visible {
		i := uncategorized
		if t.CategoryID != nil {
			if j, ok := index[*t.CategoryID]; ok {
				i = j
			}
		}
		groups[i].Todos = append(groups[i].Todos, t)
	}

	return slices.DeleteFunc(groups, func(g CategoryGroup) bool { return len(g.Todos) == 0 })
}
