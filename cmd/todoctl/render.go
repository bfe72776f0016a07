package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaekwang-park/todo-board/internal/board"
	"github.com/jaekwang-park/todo-board/internal/model"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statValueStyle = lipgloss.NewStyle().Bold(true).PaddingRight(2)
)

// categoryStyle colors a header with the category color when it is a hex
// value; other CSS color forms are left uncolored.
func categoryStyle(c *model.Category) lipgloss.Style {
	style := headerStyle
	if c != nil && strings.HasPrefix(c.Color, "#") {
		style = style.Foreground(lipgloss.Color(c.Color))
	}
	return style
}

func groupTitle(g board.CategoryGroup) string {
	if g.Category == nil {
		return "Uncategorized"
	}
	if g.Category.Icon != "" {
		return g.Category.Icon + " " + g.Category.Name
	}
	return g.Category.Name
}

func renderGroups(w io.Writer, groups []board.CategoryGroup, today model.Date) {
	if len(groups) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No todos."))
		return
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := fmt.Sprintf("%s (%d)", groupTitle(g), len(g.Todos))
		fmt.Fprintln(w, categoryStyle(g.Category).Render(header))
		for _, t := range g.Todos {
			fmt.Fprintln(w, "  "+todoLine(t, today))
		}
	}
}

func renderFlat(w io.Writer, todos []model.Todo, categories []model.Category, today model.Date) {
	if len(todos) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No todos."))
		return
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for _, t := range todos {
		line := todoLine(t, today)
		if t.CategoryID != nil {
			if name, ok := names[*t.CategoryID]; ok {
				line += " " + mutedStyle.Render("["+name+"]")
			}
		}
		fmt.Fprintln(w, line)
	}
}

func todoLine(t model.Todo, today model.Date) string {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s %s", box, title, mutedStyle.Render(t.ID))
	if t.DueDate != nil {
		due := "due " + t.DueDate.String()
		if !t.Completed && t.DueDate.Before(today.Time) {
			due = overdueStyle.Render(due + " (overdue)")
		} else {
			due = mutedStyle.Render(due)
		}
		line += " " + due
	}
	return line
}

func renderCategories(w io.Writer, categories []model.Category, todos []model.Todo) {
	if len(categories) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No categories."))
		return
	}
	counts := make(map[string]int)
	for _, t := range todos {
		if t.CategoryID != nil {
			counts[*t.CategoryID]++
		}
	}
	for _, c := range categories {
		name := categoryStyle(&c).Render(groupTitle(board.CategoryGroup{Category: &c}))
		fmt.Fprintf(w, "%s %s %s\n", name, mutedStyle.Render(c.ID), mutedStyle.Render(fmt.Sprintf("%d todos", counts[c.ID])))
	}
}

func renderStats(w io.Writer, s board.Stats) {
	rows := []struct {
		label string
		value string
	}{
		{"Total", fmt.Sprint(s.Total)},
		{"Active", fmt.Sprint(s.Active)},
		{"Completed", fmt.Sprint(s.Completed)},
		{"Done", fmt.Sprintf("%d%%", s.CompletionRate)},
	}
	cells := make([]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, statValueStyle.Render(r.value)+mutedStyle.Render(r.label))
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, cells...))
}
