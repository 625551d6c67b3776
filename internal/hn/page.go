package hn

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tengjizhang/hnmd/internal/model"
)

// The page encodes nesting as a spacer-image width, one fixed unit per level.
const indentPixelsPerLevel = 40

// flatComment is one comment row as it appears on the rendered page: document
// order plus an indentation level, with no parent reference.
type flatComment struct {
	id     string
	author string
	age    string
	body   string
	level  int
}

// fetchFromPage runs the flat-list fallback strategy against the rendered
// item page.
func (a *Acquirer) fetchFromPage(ctx context.Context, postID int64) (model.PostInfo, error) {
	raw, err := a.client.FetchItemPage(ctx, postID)
	if err != nil {
		return model.PostInfo{}, err
	}
	return parseItemPage(postID, raw)
}

func parseItemPage(postID int64, raw []byte) (model.PostInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return model.PostInfo{}, fmt.Errorf("parse item page: %w", err)
	}

	info := model.PostInfo{PostID: strconv.FormatInt(postID, 10)}

	titleLine := doc.Find("span.titleline").First()
	if titleLine.Length() > 0 {
		anchor := titleLine.Find("a").First()
		info.Title = strings.TrimSpace(anchor.Text())
		info.OriginalURL = strings.TrimSpace(anchor.AttrOr("href", ""))
	}

	var rows []flatComment
	doc.Find("tr.athing.comtr").Each(func(_ int, s *goquery.Selection) {
		body := s.Find(".commtext").First()
		if body.Length() == 0 {
			// deleted and flagged rows render without a body; drop them
			return
		}
		inner, err := body.Html()
		if err != nil {
			return
		}
		width, _ := strconv.Atoi(s.Find("td.ind img").First().AttrOr("width", "0"))
		rows = append(rows, flatComment{
			id:     s.AttrOr("id", ""),
			author: authorOr(strings.TrimSpace(s.Find("a.hnuser").First().Text())),
			age:    strings.TrimSpace(s.Find("span.age").First().Text()),
			body:   inner,
			level:  width / indentPixelsPerLevel,
		})
	})

	info.Comments = assembleForest(rows)
	return info, nil
}
