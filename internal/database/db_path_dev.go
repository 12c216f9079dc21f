//go:build !prod

package database

import "os"

// GetDefaultDBPath returns the database path for development mode.
// In dev mode the store lives in the project root for easy inspection;
// MURMUR_DB_PATH overrides it for throwaway runs.
func GetDefaultDBPath() string {
	if path := os.Getenv("MURMUR_DB_PATH"); path != "" {
		return path
	}
	return "murmur.db"
}

func IsDevelopment() bool {
	return true
}
