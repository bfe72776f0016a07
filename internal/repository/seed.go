package repository

import (
	"time"

	"github.com/jaekwang-park/todo-board/internal/model"
)

func seedCategories() []model.Category {
	return []model.Category{
		{ID: "cat-work", Name: "Work", Color: "hsl(152, 35%, 45%)"},
		{ID: "cat-personal", Name: "Personal", Color: "hsl(262, 52%, 55%)"},
		{ID: "cat-health", Name: "Health", Color: "hsl(340, 65%, 55%)"},
		{ID: "cat-learning", Name: "Learning", Color: "hsl(38, 92%, 50%)"},
	}
}

// seedTodos builds the demo todos with due dates relative to now.
func seedTodos(now time.Time) []model.Todo {
	today := model.DateOf(now.UTC())
	dueIn := func(days int) *model.Date {
		d := model.Date{Time: today.AddDate(0, 0, days)}
		return &d
	}
	category := func(id string) *string { return &id }

	todos := []model.Todo{
		{
			ID:          "todo-1",
			Title:       "Design new landing page",
			Description: "Create wireframes and mockups for the new marketing site",
			DueDate:     dueIn(2),
			CategoryID:  category("cat-work"),
		},
		{
			ID:          "todo-2",
			Title:       "Buy groceries",
			Description: "Milk, eggs, bread, vegetables",
			DueDate:     dueIn(1),
			CategoryID:  category("cat-personal"),
		},
		{
			ID:          "todo-3",
			Title:       "Review pull requests",
			Description: "Check team PRs and provide feedback",
			DueDate:     dueIn(0),
			CategoryID:  category("cat-work"),
			Completed:   true,
		},
		{
			ID:          "todo-4",
			Title:       "Morning yoga session",
			Description: "30 minutes of stretching and meditation",
			CategoryID:  category("cat-health"),
		},
		{
			ID:          "todo-5",
			Title:       "Read 'Atomic Habits'",
			Description: "Finish chapters 5-8",
			DueDate:     dueIn(7),
			CategoryID:  category("cat-learning"),
		},
	}
	for i := range todos {
		todos[i].CreatedAt = now
		todos[i].UpdatedAt = now
	}
	return todos
}
