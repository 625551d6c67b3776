package hn

import (
	"errors"
	"testing"
)

func TestParsePostURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		want    int64
		wantErr bool
	}{
		{"https", "https://news.ycombinator.com/item?id=8863", 8863, false},
		{"http", "http://news.ycombinator.com/item?id=1", 1, false},
		{"wrong host", "https://example.com/item?id=8863", 0, true},
		{"missing id", "https://news.ycombinator.com/item", 0, true},
		{"non-numeric id", "https://news.ycombinator.com/item?id=abc", 0, true},
		{"trailing garbage", "https://news.ycombinator.com/item?id=8863&x=1", 0, true},
		{"user page", "https://news.ycombinator.com/user?id=pg", 0, true},
		{"empty", "", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePostURL(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got id %d", tc.url, got)
				}
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("expected ErrInvalidURL, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.url, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q: got %d, want %d", tc.url, got, tc.want)
			}
		})
	}
}
