package render

import (
	"strings"
	"testing"
	"time"

	"github.com/tengjizhang/hnmd/internal/model"
)

const testWebBase = "https://news.ycombinator.com"

func testPost() model.PostInfo {
	child := &model.Comment{
		ID:        "12",
		Author:    "bob",
		Body:      "<p>reply</p>",
		Timestamp: "1 hour ago",
		Depth:     1,
		ParentID:  "11",
	}
	return model.PostInfo{
		Title:        "A Story",
		OriginalURL:  "https://example.com/story",
		PostID:       "1",
		CommentCount: 3,
		ScrapedDate:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Comments: []*model.Comment{
			{
				ID:        "11",
				Author:    "alice",
				Body:      "<p>top</p>",
				Timestamp: "2 hours ago",
				Children:  []*model.Comment{child},
			},
			{
				ID:        "15",
				Author:    "carol",
				Body:      "<p>other</p>",
				Timestamp: "10 minutes ago",
			},
		},
	}
}

func TestRenderDocumentStructure(t *testing.T) {
	r := NewRenderer(model.RenderOptions{}, testWebBase)
	out := r.Render(testPost(), "https://news.ycombinator.com/item?id=1")

	for _, want := range []string{
		"source: https://news.ycombinator.com/item?id=1\n",
		"post_id: \"1\"\n",
		"scraped: 2025-06-01T12:00:00Z\n",
		"comments: 3\n",
		"title: \"A Story\"\n",
		"original_url: https://example.com/story\n",
		"# A Story\n",
		"## Comments\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	// one separating rule between the two top-level comments, none after
	frontmatterEnd := strings.Index(out[3:], "---") + 3
	body := out[frontmatterEnd+3:]
	if got := strings.Count(body, "---"); got != 1 {
		t.Fatalf("expected exactly 1 separator rule, got %d in:\n%s", got, body)
	}
	if strings.HasSuffix(strings.TrimSpace(out), "---") {
		t.Fatalf("document must not end with a rule")
	}

	// the reply sits indented under its parent
	if !strings.Contains(out, "**alice** - 2 hours ago\ntop\n") {
		t.Fatalf("top comment misrendered:\n%s", out)
	}
	if !strings.Contains(out, "  **bob** - 1 hour ago\n  reply\n") {
		t.Fatalf("child must be indented one unit:\n%s", out)
	}
}

func TestRenderEnhancedLinks(t *testing.T) {
	r := NewRenderer(model.RenderOptions{EnhancedLinks: true}, testWebBase)
	out := r.Render(testPost(), "https://news.ycombinator.com/item?id=1")

	if !strings.Contains(out, "[alice]("+testWebBase+"/user?id=alice)") {
		t.Fatalf("author profile link missing:\n%s", out)
	}
	if !strings.Contains(out, "[2 hours ago]("+testWebBase+"/item?id=11)") {
		t.Fatalf("timestamp permalink missing:\n%s", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	post := testPost()
	r := NewRenderer(model.RenderOptions{EnhancedLinks: true, WrapHTMLTags: true}, testWebBase)
	a := r.Render(post, "https://news.ycombinator.com/item?id=1")
	b := r.Render(post, "https://news.ycombinator.com/item?id=1")
	if a != b {
		t.Fatalf("render is not byte-identical across runs")
	}
}

func TestRenderAdversarialTitle(t *testing.T) {
	post := testPost()
	post.Title = "quote \" back \\ newline \n tab \t end"
	r := NewRenderer(model.RenderOptions{}, testWebBase)
	out := r.Render(post, "https://news.ycombinator.com/item?id=1")

	if !strings.Contains(out, `title: "quote \" back \\ newline \n tab \t end"`) {
		t.Fatalf("frontmatter title not escaped:\n%s", out)
	}
	// no raw newline may survive inside the frontmatter block
	fm := out[:strings.Index(out[3:], "---")+3]
	for _, line := range strings.Split(fm, "\n") {
		if strings.HasPrefix(line, "title:") && strings.Contains(line, "\t") {
			t.Fatalf("raw tab survived in frontmatter line %q", line)
		}
	}
}

func TestRenderEscapesAuthor(t *testing.T) {
	post := testPost()
	post.Comments[0].Author = "a*b_c"
	r := NewRenderer(model.RenderOptions{}, testWebBase)
	out := r.Render(post, "https://news.ycombinator.com/item?id=1")
	if !strings.Contains(out, `a\*b\_c`) {
		t.Fatalf("author markdown specials not escaped:\n%s", out)
	}
}

func TestRenderUntitledFallback(t *testing.T) {
	post := testPost()
	post.Title = ""
	r := NewRenderer(model.RenderOptions{}, testWebBase)
	out := r.Render(post, "https://news.ycombinator.com/item?id=1")
	if !strings.Contains(out, "# Unknown Title\n") {
		t.Fatalf("missing fallback heading:\n%s", out)
	}
	if strings.Contains(out, "title:") {
		t.Fatalf("frontmatter must omit an absent title:\n%s", out)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	post := testPost()
	before := post.Comments[0].Body
	r := NewRenderer(model.RenderOptions{WrapHTMLTags: true}, testWebBase)
	_ = r.Render(post, "https://news.ycombinator.com/item?id=1")
	if post.Comments[0].Body != before {
		t.Fatalf("render mutated its input")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := EscapeMarkdown(`a[b]c!d#e`)
	want := `a\[b\]c\!d\#e`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
