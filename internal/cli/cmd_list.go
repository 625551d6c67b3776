package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/model"
)

func newListCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			posts, err := app.store.ListPosts(cmd.Context(), model.PostListOptions{Limit: limit})
			if err != nil {
				return err
			}
			switch getOutput() {
			case model.OutputJSON:
				return writeJSON(os.Stdout, posts)
			case model.OutputWide:
				writePostsTable(os.Stdout, posts, true)
				stats, err := app.store.GetStats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "\n%d posts, %d comments archived\n", stats.Posts, stats.Comments)
			default:
				writePostsTable(os.Stdout, posts, false)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Result limit")
	return cmd
}

func newShowCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived post's Markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			post, err := app.store.GetPost(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutput() == model.OutputJSON {
				return writeJSON(os.Stdout, post)
			}
			fmt.Fprint(os.Stdout, post.ContentMD)
			return nil
		},
	}
}
