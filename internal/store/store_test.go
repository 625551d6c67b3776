package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tengjizhang/hnmd/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "hnmd.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewStore(db)
}

func upsertInput(postID, title, content string) model.UpsertPostInput {
	return model.UpsertPostInput{
		PostID:       postID,
		Title:        title,
		SourceURL:    "https://news.ycombinator.com/item?id=" + postID,
		OriginalURL:  "https://example.com/" + postID,
		CommentCount: 3,
		NotePath:     "/notes/" + postID + ".md",
		ContentMD:    content,
		ScrapedAt:    time.Now().UTC(),
	}
}

func TestUpsertPostInsertAndUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, inserted, err := store.UpsertPost(ctx, upsertInput("1", "First", "body"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !inserted {
		t.Fatalf("expected insert on first upsert")
	}

	in := upsertInput("1", "First (updated)", "new body")
	in.CommentCount = 7
	id2, inserted, err := store.UpsertPost(ctx, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if inserted {
		t.Fatalf("expected update, not insert, for same post_id")
	}
	if id != id2 {
		t.Fatalf("row id changed on upsert: %d -> %d", id, id2)
	}

	post, err := store.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Title != "First (updated)" || post.CommentCount != 7 || post.ContentMD != "new body" {
		t.Fatalf("update not applied: %+v", post)
	}
	if post.ScrapedAt.IsZero() || post.CreatedAt.IsZero() {
		t.Fatalf("timestamps not round-tripped: %+v", post)
	}
}

func TestUpsertPostRejectsEmptyID(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.UpsertPost(context.Background(), model.UpsertPostInput{SourceURL: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetPostNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetPost(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndSearchPosts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, in := range []model.UpsertPostInput{
		upsertInput("1", "Rust in production", "a long thread about rust"),
		upsertInput("2", "Go generics", "comments about generics"),
		upsertInput("3", "Databases", "sqlite is everywhere"),
	} {
		if _, _, err := store.UpsertPost(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.PostID, err)
		}
	}

	posts, err := store.ListPosts(ctx, model.PostListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	hits, err := store.SearchPosts(ctx, model.SearchOptions{Query: "sqlite"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].PostID != "3" {
		t.Fatalf("unexpected search hits: %+v", hits)
	}

	hits, err = store.SearchPosts(ctx, model.SearchOptions{Query: "generics"})
	if err != nil {
		t.Fatalf("search title: %v", err)
	}
	if len(hits) != 1 || hits[0].PostID != "2" {
		t.Fatalf("title search failed: %+v", hits)
	}

	if _, err := store.SearchPosts(ctx, model.SearchOptions{Query: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty query must be rejected, got %v", err)
	}
}

func TestRemovePost(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, _, err := store.UpsertPost(ctx, upsertInput("1", "T", "b"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.RemovePost(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.RemovePost(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove should be ErrNotFound, got %v", err)
	}

	// removed rows must leave the search index too
	hits, err := store.SearchPosts(ctx, model.SearchOptions{Query: "b"})
	if err != nil {
		t.Fatalf("search after remove: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("stale fts rows after delete: %+v", hits)
	}
}

func TestGetStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in1 := upsertInput("1", "A", "x")
	in1.CommentCount = 2
	in2 := upsertInput("2", "B", "y")
	in2.CommentCount = 5
	for _, in := range []model.UpsertPostInput{in1, in2} {
		if _, _, err := store.UpsertPost(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Posts != 2 || stats.Comments != 7 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
