package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/todo-board/internal/client"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"category"},
	Short:   "List categories",
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

// categories add
var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var (
	categoriesAddColor string
	categoriesAddIcon  string
)

// categories rm
var categoriesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category; its todos become uncategorized",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRm,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesAddCmd, categoriesRmCmd)

	categoriesAddCmd.Flags().StringVar(&categoriesAddColor, "color", "#6b7280", "Display color")
	categoriesAddCmd.Flags().StringVar(&categoriesAddIcon, "icon", "", "Optional icon")
}

func runCategories(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	renderCategories(cmd.OutOrStdout(), b.Categories(), b.Todos())
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	created, err := b.CreateCategory(cmd.Context(), client.CreateCategoryRequest{
		Name:  args[0],
		Color: categoriesAddColor,
		Icon:  categoriesAddIcon,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("created"), created.Name, mutedStyle.Render(created.ID))
	return nil
}

func runCategoriesRm(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	affected := 0
	for _, t := range b.Todos() {
		if t.HasCategory(args[0]) {
			affected++
		}
	}
	if err := b.DeleteCategory(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("deleted"), args[0],
		mutedStyle.Render(fmt.Sprintf("(%d todos uncategorized)", affected)))
	return nil
}
