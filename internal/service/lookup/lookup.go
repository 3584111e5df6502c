package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/define/internal/domain"
	"github.com/heartmarshall/define/internal/wikitext"
)

// Lookup queries the word store and returns grouped definitions with
// template markup expanded (unless Raw is set).
func (s *Service) Lookup(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meanings, err := s.words.Find(ctx, input.Term, input.Partial)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", input.Term, err)
	}

	words := domain.Group(meanings)

	if input.Language != "" {
		words = words.FilterLanguage(input.Language)
	}

	if !input.Raw {
		s.expandAll(words)
	}

	return &Result{Words: words}, nil
}

// expandAll rewrites template markup in every definition in place.
// Expansion problems are logged, never fatal: the last computed string is
// still used so the user sees a best-effort cleanup instead of nothing.
func (s *Service) expandAll(words domain.WordMap) {
	for word, langs := range words {
		for _, poses := range langs {
			for _, defs := range poses {
				for i, def := range defs {
					expanded, err := wikitext.Expand(def)
					if err != nil {
						s.log.Warn("template expansion incomplete",
							slog.String("word", word),
							slog.String("error", err.Error()))
					}
					defs[i] = expanded
				}
			}
		}
	}
}
