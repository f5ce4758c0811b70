package handlers

import (
	"time"

	"ebook-thumbnailer/internal/startup"
	"ebook-thumbnailer/internal/thumbnail"
)

type Handlers struct {
	cache       *thumbnail.Cache
	booksDir    string
	defaultSize int
	startedAt   time.Time
}

func New(cache *thumbnail.Cache, config *startup.Config) *Handlers {
	return &Handlers{
		cache:       cache,
		booksDir:    config.BooksDir,
		defaultSize: config.DefaultSize,
		startedAt:   time.Now(),
	}
}
