package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/model"
)

func newFrontpageCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "frontpage",
		Short: "List the current frontpage via the RSS feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			items, err := app.frontpage.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			switch getOutput() {
			case model.OutputJSON:
				return writeJSON(os.Stdout, items)
			case model.OutputWide:
				writeFrontpageTable(os.Stdout, items, true)
			default:
				writeFrontpageTable(os.Stdout, items, false)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 30, "Result limit")
	return cmd
}
