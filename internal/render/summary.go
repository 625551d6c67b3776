package render

import (
	"regexp"
	"strings"

	markdown "github.com/JohannesKaufmann/html-to-markdown"
)

const summaryMaxLen = 280

var wsRegexp = regexp.MustCompile(`\s+`)

// Summarizer collapses feed-item HTML into a one-line Markdown summary for
// listings. Comment bodies never pass through here; they go through
// ConvertBody, which enforces the bounded tag set.
type Summarizer struct {
	converter *markdown.Converter
}

func NewSummarizer() *Summarizer {
	return &Summarizer{converter: markdown.NewConverter("", true, nil)}
}

func (s *Summarizer) Summarize(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	out, err := s.converter.ConvertString(html)
	if err != nil {
		out = html
	}
	return compactText(out, summaryMaxLen)
}

func compactText(v string, max int) string {
	v = strings.TrimSpace(wsRegexp.ReplaceAllString(v, " "))
	if max <= 0 || len(v) <= max {
		return v
	}
	return v[:max-1] + "..."
}
