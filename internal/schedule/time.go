// Package schedule implements the weekly time-slot grid used to program
// a room's schedule: "HH:MM" arithmetic, slot generation, the per-day
// selection store, and the compression of selected slots into minimal
// contiguous ranges (franjas).
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

// timeRe validates the canonical zero-padded "HH:MM" representation.
var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidTime reports whether s is a well-formed "HH:MM" time of day.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// ToMinutes converts "HH:MM" to minutes since midnight.
// The input must already satisfy IsValidTime; callers validate first.
func ToMinutes(s string) int {
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m
}

// ToTimeString converts minutes since midnight back to zero-padded "HH:MM".
// Values up to 1439+period occur transiently when closing the final range
// of a day; no clamping is applied.
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
