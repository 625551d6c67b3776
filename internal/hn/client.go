package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/tengjizhang/hnmd/internal/config"
)

var itemURLRegexp = regexp.MustCompile(`^https?://news\.ycombinator\.com/item\?id=(\d+)$`)

// ParsePostURL extracts the numeric post ID from a canonical item URL.
// Validation is purely syntactic; nothing is fetched.
func ParsePostURL(raw string) (int64, error) {
	m := itemURLRegexp.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return id, nil
}

// Item is one record of the read-only item API.
type Item struct {
	ID      int64   `json:"id"`
	By      string  `json:"by"`
	Text    string  `json:"text"`
	Time    int64   `json:"time"`
	Kids    []int64 `json:"kids"`
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Deleted bool    `json:"deleted"`
	Dead    bool    `json:"dead"`
	Type    string  `json:"type"`
}

// Removed reports whether the record was deleted or killed at the source.
// Removed items are excluded from the forest entirely, not kept as stubs.
func (it *Item) Removed() bool {
	return it == nil || it.Deleted || it.Dead
}

type Client struct {
	http       *http.Client
	apiBaseURL string
	webBaseURL string
	userAgent  string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.HTTPTimeout},
		apiBaseURL: cfg.APIBaseURL,
		webBaseURL: cfg.WebBaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// FetchItem fetches one item record. A present-but-null record (the API's
// way of saying "no such item") returns (nil, nil).
func (c *Client) FetchItem(ctx context.Context, id int64) (*Item, error) {
	url := fmt.Sprintf("%s/item/%d.json", c.apiBaseURL, id)
	body, err := c.get(ctx, url, 4<<20)
	if err != nil {
		return nil, err
	}
	var item *Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decode item %d: %w", id, err)
	}
	return item, nil
}

// FetchItemPage fetches the rendered HTML page for an item.
func (c *Client) FetchItemPage(ctx context.Context, id int64) ([]byte, error) {
	url := fmt.Sprintf("%s/item?id=%d", c.webBaseURL, id)
	return c.get(ctx, url, 16<<20)
}

func (c *Client) get(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
