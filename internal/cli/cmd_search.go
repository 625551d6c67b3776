package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/model"
)

func newSearchCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search archived posts with full-text search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			posts, err := app.store.SearchPosts(cmd.Context(), model.SearchOptions{
				Query: args[0],
				Limit: limit,
			})
			if err != nil {
				return err
			}
			switch getOutput() {
			case model.OutputJSON:
				return writeJSON(os.Stdout, posts)
			case model.OutputWide:
				writePostsTable(os.Stdout, posts, true)
			default:
				writePostsTable(os.Stdout, posts, false)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Result limit")
	return cmd
}
