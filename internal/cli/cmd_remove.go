package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/model"
)

func newRemoveCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a post from the archive (the note file is left alone)",
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
			if err := app.store.RemovePost(cmd.Context(), id); err != nil {
				return err
			}
			if getOutput() == model.OutputJSON {
				return writeJSON(os.Stdout, RemovePostResponse{ID: id, Removed: true})
			}
			fmt.Fprintf(os.Stdout, "Removed post %d\n", id)
			return nil
		},
	}
}
