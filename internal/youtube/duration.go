// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import (
	"fmt"
	"time"
	"unicode"
)

// ParseDuration parses the ISO-8601 interval notation the Data API uses for
// video lengths ("PT4M13S", "P1DT2H", "PT0S") into a [time.Duration].
//
// Only the date/time designators the API actually emits are supported:
// weeks, days, hours, minutes, seconds. Fractional components and negative
// intervals are rejected.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("youtube: invalid duration %q", s)
	}

	var (
		total    time.Duration
		value    int64
		hasDigit bool
		inTime   bool
		sawUnit  bool
	)

	for _, r := range s[1:] {
		switch {
		case unicode.IsDigit(r):
			value = value*10 + int64(r-'0')
			hasDigit = true

		case r == 'T':
			if hasDigit {
				return 0, fmt.Errorf("youtube: invalid duration %q", s)
			}
			inTime = true

		default:
			if !hasDigit {
				return 0, fmt.Errorf("youtube: invalid duration %q", s)
			}

			var unit time.Duration
			switch {
			case r == 'W' && !inTime:
				unit = 7 * 24 * time.Hour
			case r == 'D' && !inTime:
				unit = 24 * time.Hour
			case r == 'H' && inTime:
				unit = time.Hour
			case r == 'M' && inTime:
				unit = time.Minute
			case r == 'S' && inTime:
				unit = time.Second
			default:
				return 0, fmt.Errorf("youtube: invalid duration designator %q in %q", r, s)
			}

			total += time.Duration(value) * unit
			value = 0
			hasDigit = false
			sawUnit = true
		}
	}

	// Trailing digits with no designator, or a bare "P"/"PT".
	if hasDigit || !sawUnit {
		return 0, fmt.Errorf("youtube: invalid duration %q", s)
	}

	return total, nil
}
