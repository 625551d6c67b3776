package hn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/tengjizhang/hnmd/internal/config"
	"github.com/tengjizhang/hnmd/internal/model"
	"github.com/tengjizhang/hnmd/internal/render"
)

// FrontpageLister reads the forum's RSS feed and produces a browsable
// listing. Feed items never enter the archive; this exists so a post worth
// saving can be found without leaving the terminal.
type FrontpageLister struct {
	http       *http.Client
	feedURL    string
	webBaseURL string
	userAgent  string
	summarizer *render.Summarizer
}

func NewFrontpageLister(cfg config.Config, summarizer *render.Summarizer) *FrontpageLister {
	return &FrontpageLister{
		http:       &http.Client{Timeout: cfg.HTTPTimeout},
		feedURL:    cfg.FeedURL,
		webBaseURL: strings.TrimRight(cfg.WebBaseURL, "/"),
		userAgent:  cfg.UserAgent,
		summarizer: summarizer,
	}
}

func (l *FrontpageLister) List(ctx context.Context, limit int) ([]model.FrontpageItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http %d from %s", ErrNetwork, resp.StatusCode, l.feedURL)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse frontpage feed: %w", err)
	}

	items := make([]model.FrontpageItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if limit > 0 && len(items) >= limit {
			break
		}
		items = append(items, model.FrontpageItem{
			Title:       item.Title,
			ItemURL:     l.itemURL(item),
			ExternalURL: item.Link,
			PublishedAt: item.PublishedParsed,
			Summary:     l.summarizer.Summarize(item.Description),
		})
	}
	return items, nil
}

var feedItemIDRegexp = regexp.MustCompile(`item\?id=(\d+)`)

// itemURL recovers the discussion-page URL for a feed entry. Link points at
// the external article; the item reference hides in the comments element,
// guid or description depending on which feed variant served the request.
func (l *FrontpageLister) itemURL(item *gofeed.Item) string {
	candidates := make([]string, 0, 4)
	if item.Custom != nil {
		candidates = append(candidates, item.Custom["comments"])
	}
	candidates = append(candidates, item.GUID, item.Link, item.Description)
	for _, c := range candidates {
		if m := feedItemIDRegexp.FindStringSubmatch(c); m != nil {
			return l.webBaseURL + "/item?id=" + m[1]
		}
	}
	return item.Link
}
