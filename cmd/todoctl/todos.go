package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/todo-board/internal/client"
	"github.com/jaekwang-park/todo-board/internal/model"
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listStatus   string
	listCategory string
	listSort     string
	listOrder    string
	listFlat     bool
)

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

// add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addDue         string
	addCategory    string
)

// toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a todo between active and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editTitle         string
	editDescription   string
	editDue           string
	editClearDue      bool
	editCategory      string
	editClearCategory bool
)

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(listCmd, statsCmd, addCmd, toggleCmd, editCmd, rmCmd)

	listCmd.Flags().StringVar(&listStatus, "status", string(model.FilterStatusAll), "Status filter (all, active, completed)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show todos in this category id")
	listCmd.Flags().StringVar(&listSort, "sort", string(model.SortByDueDate), "Sort key (dueDate, createdAt)")
	listCmd.Flags().StringVar(&listOrder, "order", string(model.SortOrderAsc), "Sort order (asc, desc)")
	listCmd.Flags().BoolVar(&listFlat, "flat", false, "Print a single list instead of category groups")

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category id")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category id")
	editCmd.Flags().BoolVar(&editClearCategory, "clear-category", false, "Remove the category")
	editCmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	editCmd.MarkFlagsMutuallyExclusive("category", "clear-category")
}

// listFilters validates the list flags.
func listFilters() (model.TodoFilters, error) {
	f := model.TodoFilters{
		Status:    model.FilterStatus(listStatus),
		SortBy:    model.SortBy(listSort),
		SortOrder: model.SortOrder(listOrder),
	}
	if !f.Status.IsValid() {
		return f, fmt.Errorf("invalid --status %q: expected all, active or completed", listStatus)
	}
	if !f.SortBy.IsValid() {
		return f, fmt.Errorf("invalid --sort %q: expected dueDate or createdAt", listSort)
	}
	if !f.SortOrder.IsValid() {
		return f, fmt.Errorf("invalid --order %q: expected asc or desc", listOrder)
	}
	if listCategory != "" {
		id := listCategory
		f.CategoryID = &id
	}
	return f, nil
}

func today() model.Date {
	return model.DateOf(time.Now())
}

func runList(cmd *cobra.Command, args []string) error {
	f, err := listFilters()
	if err != nil {
		return err
	}

	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	b.SetStatusFilter(f.Status)
	b.SetCategoryFilter(f.CategoryID)
	b.SetSortBy(f.SortBy)
	b.SetSortOrder(f.SortOrder)

	if listFlat {
		renderFlat(cmd.OutOrStdout(), b.Visible(), b.Categories(), today())
		return nil
	}
	renderGroups(cmd.OutOrStdout(), b.Groups(), today())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	renderStats(cmd.OutOrStdout(), b.Stats())
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := client.CreateTodoRequest{
		Title:       args[0],
		Description: addDescription,
	}
	if addDue != "" {
		req.DueDate = &addDue
	}
	if addCategory != "" {
		req.CategoryID = &addCategory
	}

	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	created, err := b.CreateTodo(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("created"), todoLine(created, today()))
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	toggled, err := b.ToggleTodo(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), todoLine(toggled, today()))
	return nil
}

// editRequest builds a partial update from the flags that were set.
func editRequest(cmd *cobra.Command) (client.UpdateTodoRequest, error) {
	var req client.UpdateTodoRequest
	flags := cmd.Flags()

	if flags.Changed("title") {
		req.Title = &editTitle
	}
	if flags.Changed("description") {
		req.Description = &editDescription
	}
	switch {
	case editClearDue:
		req.DueDate = model.Null[string]()
	case flags.Changed("due"):
		req.DueDate = model.Some(editDue)
	}
	switch {
	case editClearCategory:
		req.CategoryID = model.Null[string]()
	case flags.Changed("category"):
		req.CategoryID = model.Some(editCategory)
	}

	if req.Title == nil && req.Description == nil && !req.DueDate.Set && !req.CategoryID.Set {
		return req, fmt.Errorf("nothing to update: pass at least one of --title, --description, --due, --clear-due, --category, --clear-category")
	}
	return req, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	req, err := editRequest(cmd)
	if err != nil {
		return err
	}

	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	updated, err := b.UpdateTodo(cmd.Context(), args[0], req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("updated"), todoLine(updated, today()))
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	if err := b.DeleteTodo(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("deleted"), args[0])
	return nil
}
