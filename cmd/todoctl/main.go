// Package main implements todoctl, a command-line client for the todo board API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/todo-board/internal/board"
	"github.com/jaekwang-park/todo-board/internal/client"
	"github.com/jaekwang-park/todo-board/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "todoctl",
	Short:         "Manage todos and categories on a todo board server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootAPIURL string
	rootToken  string
)

func init() {
	defaults := config.LoadClient()
	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", defaults.APIURL, "Base URL of the API (env TODO_API_URL)")
	rootCmd.PersistentFlags().StringVar(&rootToken, "token", defaults.Token, "Bearer token (env TODO_API_TOKEN)")
}

// loadBoard connects to the API and fetches both collections.
func loadBoard(ctx context.Context) (*board.Board, error) {
	b := board.New(client.New(rootAPIURL, client.WithToken(rootToken)))
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return b, nil
}
