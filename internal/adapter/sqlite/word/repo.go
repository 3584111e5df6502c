// Package word implements the word repository over the local SQLite store.
// The words table is flat: one row per (name, language, part_of_speech,
// definition); grouping happens in the domain layer.
package word

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/define/internal/domain"
)

// Repo provides read access to the words table.
type Repo struct {
	db *sql.DB
}

// New creates a new word repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Find returns all meanings whose name matches term: exact equality by
// default, substring match when partial is set. Rows are ordered by name,
// language, and part of speech so downstream grouping is deterministic.
func (r *Repo) Find(ctx context.Context, term string, partial bool) ([]domain.Meaning, error) {
	qb := sq.Select("name", "language", "part_of_speech", "definition").
		From("words").
		OrderBy("name", "language", "part_of_speech")

	if partial {
		qb = qb.Where(sq.Like{"name": "%" + term + "%"})
	} else {
		qb = qb.Where(sq.Eq{"name": term})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	defer rows.Close()

	var meanings []domain.Meaning
	for rows.Next() {
		var m domain.Meaning
		if err := rows.Scan(&m.Word, &m.Language, &m.PartOfSpeech, &m.Definition); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		meanings = append(meanings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}

	return meanings, nil
}
