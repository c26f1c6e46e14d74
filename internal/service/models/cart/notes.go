package cart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The extra-shot count travels inside the free-text notes field as
// "extra shot x<N>". There is no dedicated add-on column, so this string
// convention is part of the persisted contract and must round-trip.
//
// Deprecated: a structured add-ons field should replace this encoding; it is
// kept for compatibility with existing orders.
var extraShotPattern = regexp.MustCompile(`(?i)extra\s*shot\s*x(\d+)`)

// EncodeNotes combines an extra-shot count and free-text notes into the
// persisted notes value. Zero shots and empty notes yield an empty string.
func EncodeNotes(shots int, notes string) string {
	parts := make([]string, 0, 2)
	if shots = clampShots(shots); shots > 0 {
		parts = append(parts, fmt.Sprintf("extra shot x%d", shots))
	}
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		parts = append(parts, trimmed)
	}

	return strings.Join(parts, "; ")
}

// ParseExtraShots extracts the extra-shot count from persisted notes and
// returns the residual free text with the marker and adjoining separators
// stripped.
func ParseExtraShots(notes string) (int, string) {
	match := extraShotPattern.FindStringSubmatch(notes)
	if match == nil {
		return 0, strings.TrimSpace(notes)
	}

	shots, err := strconv.Atoi(match[1])
	if err != nil {
		shots = 0
	}

	rest := strings.Replace(notes, match[0], "", 1)
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, ";")
	rest = strings.TrimSuffix(rest, ";")

	return shots, strings.TrimSpace(rest)
}
