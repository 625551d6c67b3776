package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/config"
	"github.com/tengjizhang/hnmd/internal/model"
)

func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	var dbPath string
	var output string
	var outFmt model.OutputFormat
	var app *App

	dbPath = cfg.DBPath
	output = string(model.OutputTable)

	getApp := func() *App { return app }
	getOutput := func() model.OutputFormat { return outFmt }

	cmd := &cobra.Command{
		Use:           "hnmd",
		Short:         "Archive Hacker News comment threads as Markdown notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsedFmt, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			outFmt = parsedFmt
			if !requiresApp(cmd) {
				return nil
			}
			if app != nil {
				return nil
			}
			a, err := NewApp(cfg, dbPath)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", dbPath, "SQLite database path")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", output, "Output format: table, json, wide")

	cmd.AddCommand(newSaveCmd(getApp, getOutput))
	cmd.AddCommand(newListCmd(getApp, getOutput))
	cmd.AddCommand(newShowCmd(getApp, getOutput))
	cmd.AddCommand(newSearchCmd(getApp, getOutput))
	cmd.AddCommand(newRemoveCmd(getApp, getOutput))
	cmd.AddCommand(newFrontpageCmd(getApp, getOutput))

	return cmd
}

func parseOutputFormat(raw string) (model.OutputFormat, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch model.OutputFormat(s) {
	case model.OutputTable, model.OutputJSON, model.OutputWide:
		return model.OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected table|json|wide)", raw)
	}
}

func requiresApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		name := c.Name()
		if name == "help" || name == "completion" {
			return false
		}
	}
	return true
}
