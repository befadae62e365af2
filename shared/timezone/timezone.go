package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.RWMutex
	appLocation = time.Local
)

// Init sets the application location. An empty name keeps the host's local zone.
func Init(name string) {
	loc := time.Local

	if name != "" {
		loaded, err := time.LoadLocation(name)
		if err != nil {
			log.Error().
				Err(err).
				Str("timezone", name).
				Msg("Failed to load timezone, falling back to local time. Please use standard timezone names like 'Europe/Paris', 'UTC'")
		} else {
			loc = loaded
		}
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().Str("location", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the current application location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// Now returns the current local wall-clock time as a naive value, truncated to whole seconds.
func Now() time.Time {
	return Wall(time.Now()).Truncate(time.Second)
}

// Wall reads t on the application clock and returns those wall fields in UTC.
// Naive values never cross a DST transition, so adding a duration to one
// always moves the wall clock forward by exactly that duration.
func Wall(t time.Time) time.Time {
	local := t.In(GetLocation())

	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
}

// FromUnixMilli converts a picker timestamp in milliseconds to a naive wall-clock value.
func FromUnixMilli(ms int64) time.Time {
	return Wall(time.UnixMilli(ms))
}

// Parse reads a naive time string. The result carries no zone offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, time.UTC)
}

// Format writes the wall fields of a naive value.
func Format(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}
