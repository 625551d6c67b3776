package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tengjizhang/hnmd/internal/model"
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePostsTable(out io.Writer, posts []model.Post, wide bool) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if wide {
		fmt.Fprintln(tw, "ID\tPOST_ID\tTITLE\tCOMMENTS\tSCRAPED\tNOTE\tORIGINAL_URL")
		for _, p := range posts {
			fmt.Fprintf(
				tw,
				"%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
				p.ID,
				p.PostID,
				compactText(displayPostTitle(p), 56),
				p.CommentCount,
				formatDate(p.ScrapedAt),
				compactText(p.NotePath, 48),
				compactText(p.OriginalURL, 48),
			)
		}
	} else {
		fmt.Fprintln(tw, "ID\tPOST_ID\tTITLE\tCOMMENTS\tSCRAPED")
		for _, p := range posts {
			fmt.Fprintf(
				tw,
				"%d\t%s\t%s\t%d\t%s\n",
				p.ID,
				p.PostID,
				compactText(displayPostTitle(p), 56),
				p.CommentCount,
				formatDate(p.ScrapedAt),
			)
		}
	}
	_ = tw.Flush()
}

func writeFrontpageTable(out io.Writer, items []model.FrontpageItem, wide bool) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if wide {
		fmt.Fprintln(tw, "TITLE\tITEM_URL\tEXTERNAL_URL\tSUMMARY")
		for _, it := range items {
			fmt.Fprintf(
				tw,
				"%s\t%s\t%s\t%s\n",
				compactText(it.Title, 56),
				it.ItemURL,
				compactText(it.ExternalURL, 48),
				compactText(oneLine(it.Summary), 90),
			)
		}
	} else {
		fmt.Fprintln(tw, "TITLE\tITEM_URL")
		for _, it := range items {
			fmt.Fprintf(
				tw,
				"%s\t%s\n",
				compactText(it.Title, 72),
				it.ItemURL,
			)
		}
	}
	_ = tw.Flush()
}

func oneLine(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.TrimSpace(v)
}

func displayPostTitle(p model.Post) string {
	if strings.TrimSpace(p.Title) != "" {
		return p.Title
	}
	return "(untitled)"
}
