package infra

import "github.com/joho/godotenv"

// Initialize loads .env into the process environment. A missing file is not
// fatal; callers log it once the logger is up.
func Initialize() error {
	return godotenv.Load()
}
