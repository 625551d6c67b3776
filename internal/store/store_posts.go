package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tengjizhang/hnmd/internal/model"
)

const postSelectColumns = `
	p.id, p.post_id, p.title, p.source_url, p.original_url,
	p.comment_count, p.note_path, p.content_md, p.scraped_at, p.created_at
`

func (s *Store) UpsertPost(ctx context.Context, in model.UpsertPostInput) (postID int64, inserted bool, err error) {
	if strings.TrimSpace(in.PostID) == "" {
		return 0, false, fmt.Errorf("%w: post_id must not be empty", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var existingID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE post_id = ?`, in.PostID).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		inserted = true
	case err != nil:
		return 0, false, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO posts (
			post_id, title, source_url, original_url,
			comment_count, note_path, content_md, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(post_id) DO UPDATE SET
			title = excluded.title,
			source_url = excluded.source_url,
			original_url = excluded.original_url,
			comment_count = excluded.comment_count,
			note_path = excluded.note_path,
			content_md = excluded.content_md,
			scraped_at = excluded.scraped_at
	`,
		in.PostID,
		in.Title,
		in.SourceURL,
		in.OriginalURL,
		in.CommentCount,
		in.NotePath,
		in.ContentMD,
		timeToDBString(in.ScrapedAt),
	)
	if err != nil {
		return 0, false, err
	}

	if err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE post_id = ?`, in.PostID).Scan(&postID); err != nil {
		return 0, false, err
	}
	if err = tx.Commit(); err != nil {
		return 0, false, err
	}
	return postID, inserted, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (model.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+postSelectColumns+`
		FROM posts p
		WHERE p.id = ?
	`, id)
	post, err := scanPost(row)
	if err != nil {
		return model.Post{}, wrapNotFound("post", err)
	}
	return post, nil
}

func (s *Store) ListPosts(ctx context.Context, opts model.PostListOptions) ([]model.Post, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postSelectColumns+`
		FROM posts p
		ORDER BY COALESCE(p.scraped_at, p.created_at) DESC
		LIMIT ?
	`, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *Store) SearchPosts(ctx context.Context, opts model.SearchOptions) ([]model.Post, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postSelectColumns+`
		FROM posts_fts
		JOIN posts p ON p.id = posts_fts.rowid
		WHERE posts_fts MATCH ?
		ORDER BY bm25(posts_fts), COALESCE(p.scraped_at, p.created_at) DESC
		LIMIT ?
	`, opts.Query, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *Store) RemovePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) GetStats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&stats.Posts); err != nil {
		return model.Stats{}, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(comment_count), 0) FROM posts`).Scan(&stats.Comments); err != nil {
		return model.Stats{}, err
	}
	return stats, nil
}
