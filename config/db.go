package config

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// GetEnv returns the named environment variable or the fallback when it
// is unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt is GetEnv for integer variables; unparsable values fall back.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
