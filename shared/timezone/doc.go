// Package timezone provides naive local-time helpers for the application.
//
// Reservation timestamps are stored without an offset. Instants are read on
// the application clock once, at the edge, and kept as naive values: the wall
// fields in UTC. Arithmetic, parsing and formatting then happen in that fixed
// zone, so a pickup during a DST change keeps its wall time and its duration.
//
// Usage Examples:
//
//  1. Initialise once at process start:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Converting a time-picker result:
//     pickup := timezone.FromUnixMilli(1704103200000)
//
//  3. Parsing and formatting stored values:
//     t, err := timezone.Parse(constant.DateTimeFormat, "2024-01-01 10:00:00")
//     s := timezone.Format(t, constant.DateTimeFormat)
//
// An empty or unknown timezone name falls back to the host's local zone.
package timezone
