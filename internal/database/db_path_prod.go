//go:build prod

package database

import (
	"os"
	"path/filepath"

	"murmur/internal/logger"
)

// GetDefaultDBPath returns the database path for production mode.
// In production, the store is kept in the user's config directory.
func GetDefaultDBPath() string {
	log := logger.For("database")

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user config dir, using working directory")
		return "murmur.db"
	}

	appDir := filepath.Join(configDir, "murmur")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("failed to create app config dir, using working directory")
		return "murmur.db"
	}

	return filepath.Join(appDir, "murmur.db")
}

func IsDevelopment() bool {
	return false
}
