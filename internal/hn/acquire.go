package hn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tengjizhang/hnmd/internal/config"
	"github.com/tengjizhang/hnmd/internal/model"
)

// Acquirer turns a post URL into a normalized PostInfo. It tries the
// structured item API first and falls back to scraping the rendered page
// when the API yields nothing. Acquisitions are stateless; nothing is
// cached between calls.
type Acquirer struct {
	client          *Client
	sem             chan struct{}
	timestampFormat string
	warnf           func(format string, args ...any)
	now             func() time.Time
}

func NewAcquirer(client *Client, cfg config.Config) *Acquirer {
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = 10
	}
	return &Acquirer{
		client:          client,
		sem:             make(chan struct{}, concurrency),
		timestampFormat: cfg.TimestampFormat,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
		now: time.Now,
	}
}

// Acquire fetches one post and its full comment forest. The returned
// PostInfo is complete even when the error is ErrEmptyResult; any other
// non-nil error means acquisition failed.
func (a *Acquirer) Acquire(ctx context.Context, rawURL string) (model.PostInfo, error) {
	postID, err := ParsePostURL(rawURL)
	if err != nil {
		return model.PostInfo{}, err
	}

	info, apiErr := a.fetchFromAPI(ctx, postID)
	if apiErr == nil && len(info.Comments) > 0 {
		return a.finalize(info), nil
	}
	if apiErr != nil {
		if ctx.Err() != nil {
			return model.PostInfo{}, apiErr
		}
		a.warnf("item api failed for post %d, falling back to page scrape: %v", postID, apiErr)
	}

	pageInfo, pageErr := a.fetchFromPage(ctx, postID)
	if pageErr != nil {
		if apiErr == nil {
			// the API root was reachable, it just had no comments; the
			// failed scrape does not invalidate that result
			a.warnf("page scrape failed for post %d: %v", postID, pageErr)
			return a.finalize(info), ErrEmptyResult
		}
		if errors.Is(apiErr, ErrNotFound) && errors.Is(pageErr, ErrNotFound) {
			return model.PostInfo{}, fmt.Errorf("%w: post %d", ErrNotFound, postID)
		}
		if errors.Is(pageErr, ErrNotFound) {
			return model.PostInfo{}, pageErr
		}
		return model.PostInfo{}, fmt.Errorf("%w: %v", ErrNetwork, pageErr)
	}

	// the API record, when it was readable, is the better source of
	// title and external link
	if apiErr == nil {
		if pageInfo.Title == "" {
			pageInfo.Title = info.Title
		}
		if pageInfo.OriginalURL == "" {
			pageInfo.OriginalURL = info.OriginalURL
		}
	}

	if len(pageInfo.Comments) == 0 {
		return a.finalize(pageInfo), ErrEmptyResult
	}
	return a.finalize(pageInfo), nil
}

func (a *Acquirer) finalize(info model.PostInfo) model.PostInfo {
	info.CommentCount = countComments(info.Comments)
	info.ScrapedDate = a.now()
	return info
}
