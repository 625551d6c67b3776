package hn

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/tengjizhang/hnmd/internal/model"
)

const anonymousAuthor = "Anonymous"

// fetchFromAPI runs the structured strategy: fetch the root record, then
// descend its kid references. Per-node failures prune only that subtree.
func (a *Acquirer) fetchFromAPI(ctx context.Context, postID int64) (model.PostInfo, error) {
	root, err := a.client.FetchItem(ctx, postID)
	if err != nil {
		return model.PostInfo{}, err
	}
	if root.Removed() {
		return model.PostInfo{}, ErrNotFound
	}

	info := model.PostInfo{
		Title:       root.Title,
		OriginalURL: root.URL,
		PostID:      strconv.FormatInt(postID, 10),
	}
	info.Comments = a.fetchChildren(ctx, "", root.Kids, 0)
	return info, nil
}

// fetchChildren fetches every id of one sibling group. Fetches fan out
// concurrently but each node lands at its source index, so reply order
// survives out-of-order completion. The semaphore is held only around the
// HTTP call; recursion into a node's own kids runs outside it, so nested
// levels cannot deadlock against their ancestors.
func (a *Acquirer) fetchChildren(ctx context.Context, parentID string, ids []int64, depth int) []*model.Comment {
	if len(ids) == 0 {
		return nil
	}

	results := make([]*model.Comment, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}

			a.sem <- struct{}{}
			item, err := a.client.FetchItem(ctx, id)
			<-a.sem

			if err != nil {
				a.warnf("skipping comment %d: %v", id, err)
				return
			}
			if item.Removed() {
				return
			}

			c := &model.Comment{
				ID:        strconv.FormatInt(item.ID, 10),
				Author:    authorOr(item.By),
				Body:      item.Text,
				Timestamp: a.formatTime(item.Time),
				Depth:     depth,
				ParentID:  parentID,
			}
			c.Children = a.fetchChildren(ctx, c.ID, item.Kids, depth+1)
			results[i] = c
		}(i, id)
	}
	wg.Wait()

	out := make([]*model.Comment, 0, len(results))
	for _, c := range results {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (a *Acquirer) formatTime(unix int64) string {
	if unix <= 0 {
		return ""
	}
	return time.Unix(unix, 0).Format(a.timestampFormat)
}

func authorOr(by string) string {
	if by == "" {
		return anonymousAuthor
	}
	return by
}
