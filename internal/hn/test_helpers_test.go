package hn

import (
	"testing"
	"time"

	"github.com/tengjizhang/hnmd/internal/config"
)

var testScrapedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestConfig(apiBase, webBase string) config.Config {
	return config.Config{
		APIBaseURL:       apiBase,
		WebBaseURL:       webBase,
		FeedURL:          webBase + "/rss",
		HTTPTimeout:      5 * time.Second,
		FetchConcurrency: 4,
		TimestampFormat:  "2006-01-02 15:04",
		UserAgent:        "hnmd-test/1.0",
	}
}

func newTestAcquirer(t *testing.T, apiBase, webBase string) *Acquirer {
	t.Helper()
	cfg := newTestConfig(apiBase, webBase)
	a := NewAcquirer(NewClient(cfg), cfg)
	a.warnf = t.Logf
	a.now = func() time.Time { return testScrapedAt }
	return a
}
