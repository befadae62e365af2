package model

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DurationOptions are the labels offered by the duration prompt, in display order.
var DurationOptions = []string{"30 minutes", "1 hour", "3 hours", "5 hours", "1 day"}

func IsDurationOption(label string) bool {
	return slices.Contains(DurationOptions, label)
}

// ParseDuration reads "<n> <unit>" labels. Units containing "minute" count in
// minutes; every other unit counts in hours, so "1 day" lasts one hour.
func ParseDuration(label string) (time.Duration, error) {
	parts := strings.Fields(label)
	if len(parts) < 2 {
		return 0, fmt.Errorf("duration %q: expected a magnitude and a unit", label)
	}

	magnitude, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", label, err)
	}

	if magnitude <= 0 {
		return 0, fmt.Errorf("duration %q: magnitude must be positive", label)
	}

	if strings.Contains(parts[1], "minute") {
		return time.Duration(magnitude) * time.Minute, nil
	}

	return time.Duration(magnitude) * time.Hour, nil
}

// EndTime is start shifted by the parsed duration label.
func EndTime(start time.Time, label string) (time.Time, error) {
	d, err := ParseDuration(label)
	if err != nil {
		return time.Time{}, err
	}

	return start.Add(d), nil
}

// NewID keeps the low 64 bits of a random UUID.
func NewID() uint64 {
	u := uuid.New()

	return binary.BigEndian.Uint64(u[8:])
}
