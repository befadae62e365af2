package shared

import (
	"cargobike/shared/cache"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a cache namespace and its parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// InvalidateCaches drops every key under prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ValueOr dereferences ptr, or returns fallback when ptr is nil.
func ValueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}

	return *ptr
}
