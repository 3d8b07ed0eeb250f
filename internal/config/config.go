package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds runtime settings resolved from the environment.
type Config struct {
	DataDir     string // directory for the database and session file
	DBFile      string // sqlite file name inside DataDir
	OfficeTitle string // optional override for the stored shop title
}

// Load reads an optional .env file and resolves settings from the
// environment. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("SHOPDESK_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = filepath.Join(home, ".shopdesk")
	}

	return Config{
		DataDir:     dataDir,
		DBFile:      getEnv("SHOPDESK_DB", "shopdesk.db"),
		OfficeTitle: getEnv("SHOPDESK_OFFICE_TITLE", ""),
	}, nil
}

// DatabasePath returns the full path of the sqlite database file.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// SessionFilePath returns the full path of the persisted login session file.
func (c Config) SessionFilePath() string {
	return filepath.Join(c.DataDir, "session.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
