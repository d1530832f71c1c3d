// Package duration resolves human-entered duration and target-time strings
// into an absolute target instant.
//
// Three grammars are recognized, tried in order of specificity:
//
//   - relative durations like "1h30m" or "25m" (hours, minutes, seconds,
//     in strictly descending unit order, each unit at most once)
//   - absolute datetimes like "2026-01-25T14:00" or "2026-01-25"
//   - bare times of day like "T14:00", resolved to their next occurrence
package duration

import (
	"strings"
	"time"
)

// unitRank orders relative-duration units so the scanner can enforce
// descending order. Higher rank must come first.
var unitRank = map[byte]int{'h': 3, 'm': 2, 's': 1}

var unitValue = map[byte]time.Duration{
	'h': time.Hour,
	'm': time.Minute,
	's': time.Second,
}

// Absolute datetime layouts, most specific first. All are interpreted in
// the local timezone.
var absoluteLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var timeOnlyLayouts = []string{
	"15:04:05",
	"15:04",
}

// Resolve parses a raw duration string against the given current instant and
// returns the absolute target instant. The target is always strictly after
// now; inputs that resolve to now or earlier fail.
func Resolve(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, &ParseError{Input: input, Reason: "empty input"}
	}

	if isRelative(s) {
		return resolveRelative(s, now)
	}
	if strings.HasPrefix(s, "T") || strings.HasPrefix(s, "t") {
		return resolveTimeOnly(s, now)
	}
	if target, ok, err := resolveAbsolute(s, now); ok {
		return target, err
	}

	return time.Time{}, &ParseError{Input: s, Reason: "unrecognized format"}
}

// isRelative reports whether the string starts like a <number><unit> token
// sequence. A leading digit is enough to commit to the relative grammar:
// absolute dates also start with a digit, but they contain '-' separators
// which the relative scanner rejects with a precise error, so we only
// commit when no date separator is present.
func isRelative(s string) bool {
	return s[0] >= '0' && s[0] <= '9' && !strings.Contains(s, "-")
}

// resolveRelative scans <number><unit> tokens and returns now + their sum.
// Units must appear in strictly descending order (h before m before s) and
// at most once each.
func resolveRelative(s string, now time.Time) (time.Time, error) {
	var total time.Duration
	prevRank := 4 // above 'h'

	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return time.Time{}, &ParseError{Input: s, Reason: "expected a number before the unit"}
		}
		if j == len(s) {
			return time.Time{}, &ParseError{Input: s, Reason: "missing unit after number"}
		}

		var n int64
		for _, c := range s[i:j] {
			n = n*10 + int64(c-'0')
		}

		unit := lowerByte(s[j])
		rank, ok := unitRank[unit]
		if !ok {
			return time.Time{}, &ParseError{Input: s, Reason: "unknown unit " + string(s[j]) + " (want h, m, or s)"}
		}
		if rank == prevRank {
			return time.Time{}, &ParseError{Input: s, Reason: "unit " + string(unit) + " given more than once"}
		}
		if rank > prevRank {
			return time.Time{}, &ParseError{Input: s, Reason: "units must be ordered h, m, s"}
		}
		prevRank = rank

		total += time.Duration(n) * unitValue[unit]
		i = j + 1
	}

	if total <= 0 {
		return time.Time{}, &ParseError{Input: s, Reason: "duration must be greater than zero"}
	}
	return now.Add(total), nil
}

// resolveAbsolute tries the absolute datetime layouts. The boolean result
// reports whether the input matched one of them at all; a matched instant
// that is not strictly in the future is an error, never rolled forward.
func resolveAbsolute(s string, now time.Time) (time.Time, bool, error) {
	for _, layout := range absoluteLayouts {
		target, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		if !target.After(now) {
			return time.Time{}, true, &PastInstantError{Input: s, Target: target}
		}
		return target, true, nil
	}
	return time.Time{}, false, nil
}

// resolveTimeOnly parses a bare "THH:MM[:SS]" time of day and resolves it
// to its next occurrence: today if still ahead, otherwise tomorrow. This
// is the only grammar permitted to roll forward a day.
func resolveTimeOnly(s string, now time.Time) (time.Time, error) {
	for _, layout := range timeOnlyLayouts {
		t, err := time.ParseInLocation(layout, s[1:], now.Location())
		if err != nil {
			continue
		}
		target := time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location())
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return target, nil
	}
	return time.Time{}, &ParseError{Input: s, Reason: "malformed time of day"}
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
