package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "trivia"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// CategoryListGenerationKey holds a counter bumped on every category mutation.
func CategoryListGenerationKey() string {
	return GenerateCacheKey("category", "list", "generation")
}

// CategoryListKey holds the JSON-encoded category list read under one generation.
func CategoryListKey(generation int64) string {
	return GenerateCacheKey("category", "list", "all", strconv.FormatInt(generation, 10))
}
