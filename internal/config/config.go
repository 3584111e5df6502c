package config

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds SQLite database settings.
type DatabaseConfig struct {
	// Path to the dictionary database file. When empty, the default
	// under the user data directory is used (see DefaultDatabasePath).
	Path string `yaml:"path" env:"DEFINE_DATABASE_PATH"`
}

// OutputConfig holds terminal rendering settings.
type OutputConfig struct {
	Width int  `yaml:"width" env:"DEFINE_OUTPUT_WIDTH" env-default:"80"`
	Color bool `yaml:"color" env:"DEFINE_OUTPUT_COLOR" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
