package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadDotEnv exports variables from the .env files present in dir, most
// specific first:
//
//	.env.<appEnv>.local, .env.<appEnv>, .env.local, .env
//
// Variables already set in the process environment are never overwritten,
// so a value from a more specific file wins over a less specific one.
// Missing files are skipped.
func loadDotEnv(dir, appEnv string) error {
	filenames := []string{
		".env." + appEnv + ".local",
		".env." + appEnv,
		".env.local",
		".env",
	}

	for _, name := range filenames {
		path := filepath.Join(dir, name)
		if s, err := os.Stat(path); err != nil || s.IsDir() {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
	}

	return nil
}
