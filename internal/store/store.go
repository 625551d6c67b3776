package store

import (
	"database/sql"

	"github.com/tengjizhang/hnmd/internal/model"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(scanner rowScanner) (model.Post, error) {
	var p model.Post
	var title, originalURL, notePath, contentMD, scrapedAt sql.NullString
	var createdAt string
	if err := scanner.Scan(
		&p.ID,
		&p.PostID,
		&title,
		&p.SourceURL,
		&originalURL,
		&p.CommentCount,
		&notePath,
		&contentMD,
		&scrapedAt,
		&createdAt,
	); err != nil {
		return model.Post{}, err
	}
	p.Title = title.String
	p.OriginalURL = originalURL.String
	p.NotePath = notePath.String
	p.ContentMD = contentMD.String
	if scrapedAt.Valid {
		if t, err := parseDBTime(scrapedAt.String); err == nil {
			p.ScrapedAt = t
		}
	}
	if t, err := parseDBTime(createdAt); err == nil {
		p.CreatedAt = t
	}
	return p, nil
}
