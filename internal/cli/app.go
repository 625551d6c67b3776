package cli

import (
	"database/sql"

	"github.com/tengjizhang/hnmd/internal/config"
	"github.com/tengjizhang/hnmd/internal/hn"
	"github.com/tengjizhang/hnmd/internal/render"
	"github.com/tengjizhang/hnmd/internal/store"
)

type App struct {
	cfg       config.Config
	db        *sql.DB
	store     *store.Store
	acquirer  *hn.Acquirer
	frontpage *hn.FrontpageLister
}

func NewApp(cfg config.Config, dbPath string) (*App, error) {
	cfg.DBPath = dbPath
	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	client := hn.NewClient(cfg)

	return &App{
		cfg:       cfg,
		db:        db,
		store:     store.NewStore(db),
		acquirer:  hn.NewAcquirer(client, cfg),
		frontpage: hn.NewFrontpageLister(cfg, render.NewSummarizer()),
	}, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
