// Package sqlite opens the local dictionary database using the pure-Go
// SQLite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/heartmarshall/define/internal/config"
	"github.com/heartmarshall/define/internal/domain"
)

// Open opens the SQLite database at cfg.Path and pings it for fail-fast
// validation. The file must already exist: the driver would otherwise
// create an empty database and every lookup would fail with a confusing
// "no such table" error.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if _, err := os.Stat(cfg.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("database file %s: %w", cfg.Path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database file %s: %w", cfg.Path, err)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
