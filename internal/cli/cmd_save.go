package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/hnmd/internal/hn"
	"github.com/tengjizhang/hnmd/internal/model"
	"github.com/tengjizhang/hnmd/internal/notes"
	"github.com/tengjizhang/hnmd/internal/render"
)

func newSaveCmd(getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var notesDir string
	var template string
	var noLinks bool
	var noWrap bool
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "save <post-url>",
		Short: "Fetch a post's comment tree and save it as a Markdown note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			sourceURL := args[0]

			info, err := app.acquirer.Acquire(cmd.Context(), sourceURL)
			empty := errors.Is(err, hn.ErrEmptyResult)
			if err != nil && !empty {
				return err
			}
			if empty {
				fmt.Fprintln(os.Stderr, "No comments found; saving post header only")
			}

			opts := model.RenderOptions{
				EnhancedLinks: app.cfg.EnhancedLinks && !noLinks,
				WrapHTMLTags:  app.cfg.WrapHTMLTags && !noWrap,
			}
			rendered := render.NewRenderer(opts, app.cfg.WebBaseURL).Render(info, sourceURL)

			if toStdout {
				fmt.Fprint(os.Stdout, rendered)
				return nil
			}

			dir := fallback(notesDir, app.cfg.NotesDir)
			tmpl := fallback(template, app.cfg.FilenameTemplate)
			path, err := notes.NewSaver(dir, tmpl).Save(info, rendered)
			if err != nil {
				return fmt.Errorf("write note: %w", err)
			}

			id, inserted, err := app.store.UpsertPost(cmd.Context(), model.UpsertPostInput{
				PostID:       info.PostID,
				Title:        info.Title,
				SourceURL:    sourceURL,
				OriginalURL:  info.OriginalURL,
				CommentCount: info.CommentCount,
				NotePath:     path,
				ContentMD:    rendered,
				ScrapedAt:    info.ScrapedDate,
			})
			if err != nil {
				return fmt.Errorf("archive post: %w", err)
			}

			if getOutput() == model.OutputJSON {
				post, _ := app.store.GetPost(cmd.Context(), id)
				return writeJSON(os.Stdout, SavePostResponse{
					Post:     post,
					Inserted: inserted,
					NotePath: path,
				})
			}

			if inserted {
				fmt.Fprintf(os.Stdout, "Saved post %s (%d comments) -> %s\n", info.PostID, info.CommentCount, path)
			} else {
				fmt.Fprintf(os.Stdout, "Re-saved post %s (%d comments) -> %s\n", info.PostID, info.CommentCount, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notesDir, "dir", "", "Notes directory (defaults to config notes_dir)")
	cmd.Flags().StringVar(&template, "template", "", "Filename template (defaults to config filename_template)")
	cmd.Flags().BoolVar(&noLinks, "no-links", false, "Disable profile and permalink links")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "Disable backtick-wrapping of quoted HTML tags")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the document instead of writing a note")
	return cmd
}
