// Package config snapshots the process environment once at startup and
// exposes typed getters with fallback defaults.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New captures the current environment as a key/value map.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value, _ := strings.Cut(entry, "=")
			envAsMap[key] = value
		}
	}
	return envAsMap
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// IsSet reports whether the key is present with a non-empty value.
func IsSet(config map[string]string, key string) bool {
	return GetString(config, key, "") != ""
}
