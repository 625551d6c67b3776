package model

import "time"

type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputWide  OutputFormat = "wide"
)

// Comment is one node of a post's comment forest. Ownership is strictly by
// containment in Children; ParentID is a back-reference set during assembly
// and is never walked.
type Comment struct {
	ID        string     `json:"id"`
	Author    string     `json:"author"`
	Body      string     `json:"body"` // raw HTML, converted at render time
	Timestamp string     `json:"timestamp"`
	Depth     int        `json:"depth"`
	ParentID  string     `json:"parent_id,omitempty"`
	Children  []*Comment `json:"children,omitempty"`
}

// PostInfo is the normalized result of one acquisition, regardless of which
// strategy produced it. CommentCount is always computed from the forest.
type PostInfo struct {
	Title        string     `json:"title,omitempty"`
	OriginalURL  string     `json:"original_url,omitempty"`
	PostID       string     `json:"post_id"`
	CommentCount int        `json:"comment_count"`
	ScrapedDate  time.Time  `json:"scraped_date"`
	Comments     []*Comment `json:"comments"`
}

// RenderOptions is the per-call rendering configuration. It is an immutable
// value; the renderer never reads shared state.
type RenderOptions struct {
	EnhancedLinks bool
	WrapHTMLTags  bool
}

// Post is an archived, rendered post as stored in the local database.
type Post struct {
	ID           int64     `json:"id"`
	PostID       string    `json:"post_id"`
	Title        string    `json:"title,omitempty"`
	SourceURL    string    `json:"source_url"`
	OriginalURL  string    `json:"original_url,omitempty"`
	CommentCount int       `json:"comment_count"`
	NotePath     string    `json:"note_path,omitempty"`
	ContentMD    string    `json:"content_md,omitempty"`
	ScrapedAt    time.Time `json:"scraped_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type PostListOptions struct {
	Limit int
}

type SearchOptions struct {
	Query string
	Limit int
}

type UpsertPostInput struct {
	PostID       string
	Title        string
	SourceURL    string
	OriginalURL  string
	CommentCount int
	NotePath     string
	ContentMD    string
	ScrapedAt    time.Time
}

// FrontpageItem is one entry of the forum's RSS feed, used by the frontpage
// listing only; it never enters the archive.
type FrontpageItem struct {
	Title       string     `json:"title"`
	ItemURL     string     `json:"item_url"`
	ExternalURL string     `json:"external_url,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type Stats struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}
