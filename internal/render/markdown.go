package render

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tengjizhang/hnmd/internal/model"
)

const untitledHeading = "Unknown Title"

// indent unit per nesting level; two spaces so deep bodies do not trip
// Markdown's four-space code-block rule at the first level
const indentUnit = "  "

var trailingDigitsRegexp = regexp.MustCompile(`(\d+)$`)

// Renderer emits the final Markdown document for one acquired post. It is a
// pure transformation: identical PostInfo and options produce byte-identical
// output, and the input forest is never mutated.
type Renderer struct {
	opts       model.RenderOptions
	webBaseURL string
}

func NewRenderer(opts model.RenderOptions, webBaseURL string) *Renderer {
	return &Renderer{opts: opts, webBaseURL: strings.TrimRight(webBaseURL, "/")}
}

func (r *Renderer) Render(post model.PostInfo, sourceURL string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "source: %s\n", sourceURL)
	fmt.Fprintf(&b, "post_id: \"%s\"\n", escapeFrontmatter(post.PostID))
	fmt.Fprintf(&b, "scraped: %s\n", post.ScrapedDate.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "comments: %d\n", post.CommentCount)
	if post.Title != "" {
		fmt.Fprintf(&b, "title: \"%s\"\n", escapeFrontmatter(post.Title))
	}
	if post.OriginalURL != "" {
		fmt.Fprintf(&b, "original_url: %s\n", post.OriginalURL)
	}
	b.WriteString("---\n\n")

	title := post.Title
	if title == "" {
		title = untitledHeading
	}
	b.WriteString("# " + EscapeMarkdown(title) + "\n\n")
	b.WriteString("## Comments\n\n")

	for i, c := range post.Comments {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		r.renderComment(&b, c)
	}
	return b.String()
}

func (r *Renderer) renderComment(b *strings.Builder, c *model.Comment) {
	indent := strings.Repeat(indentUnit, c.Depth)

	author := EscapeMarkdown(c.Author)
	if r.opts.EnhancedLinks && c.Author != "" {
		author = "[" + author + "](" + r.webBaseURL + "/user?id=" + url.QueryEscape(c.Author) + ")"
	}

	ts := c.Timestamp
	if ts != "" && r.opts.EnhancedLinks {
		if num := trailingDigitsRegexp.FindString(c.ID); num != "" {
			ts = "[" + ts + "](" + r.webBaseURL + "/item?id=" + num + ")"
		}
	}

	b.WriteString(indent + "**" + author + "**")
	if ts != "" {
		b.WriteString(" - " + ts)
	}
	b.WriteString("\n")

	body := ConvertBody(c.Body)
	if r.opts.WrapHTMLTags {
		body = WrapHTMLTags(body)
	}
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(indent + line + "\n")
	}
	b.WriteString("\n")

	for _, child := range c.Children {
		r.renderComment(b, child)
	}
}

const markdownSpecials = "\\`*_{}[]()#+-.!"

// EscapeMarkdown backslash-escapes Markdown control characters in free text
// placed outside code spans.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var frontmatterReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
)

// escapeFrontmatter keeps a quoted metadata value syntactically valid no
// matter what the source title contains.
func escapeFrontmatter(s string) string {
	return frontmatterReplacer.Replace(s)
}
