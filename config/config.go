// Package config snapshots the process environment into a plain map at
// startup. Callers read settings through the typed getters instead of
// touching os.Getenv scattered through the code.
package config

import (
	"os"
	"strconv"
	"strings"
)

func New() map[string]string {
	environ := os.Environ()
	settings := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if found && key != "" {
			settings[key] = value
		}
	}
	return settings
}

// GetString returns the configured value for key, or defaultValue when the
// key is absent. An explicitly empty value is returned as-is.
func GetString(config map[string]string, key, defaultValue string) string {
	if value, ok := config[key]; ok {
		return value
	}
	return defaultValue
}

// GetInt returns the configured value parsed as an integer, or defaultValue
// when the key is absent or not a valid integer.
func GetInt(config map[string]string, key string, defaultValue int) int {
	value, ok := config[key]
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
