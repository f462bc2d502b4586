package config

import "os"

// GetEnv returns the value of an environment variable, falling back to the
// given default when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
