// Package lookup implements the dictionary lookup flow: query the word
// store, group rows into word → language → part of speech → definitions,
// apply the language filter, and expand wiki template markup in each
// definition.
package lookup

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/define/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Find(ctx context.Context, term string, partial bool) ([]domain.Meaning, error)
}

// Service performs dictionary lookups.
type Service struct {
	words wordRepo
	log   *slog.Logger
}

// New creates a new lookup service.
func New(words wordRepo, log *slog.Logger) *Service {
	return &Service{words: words, log: log}
}
