package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate performs business-rule validation on the loaded configuration
// and fills in the default database path. It must be called after loading;
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}

	if c.Output.Width <= 0 {
		return fmt.Errorf("output.width must be > 0 (got %d)", c.Output.Width)
	}

	return nil
}

// DefaultDatabasePath returns the dictionary database location under the
// user data directory: $XDG_DATA_HOME/define/define.sqlite3, falling back
// to ~/.local/share/define/define.sqlite3.
func DefaultDatabasePath() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "define.sqlite3"
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "define", "define.sqlite3")
}
