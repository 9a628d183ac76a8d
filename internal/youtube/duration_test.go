// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tubecache/internal/youtube"
)

/*
TestParseDuration verifies ISO 8601 duration parsing across the designators
the Data API actually emits.
*/
func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"seconds only", "PT45S", 45 * time.Second},
		{"minutes and seconds", "PT4M13S", 4*time.Minute + 13*time.Second},
		{"hours minutes seconds", "PT1H2M3S", time.Hour + 2*time.Minute + 3*time.Second},
		{"days", "P1DT2H", 26 * time.Hour},
		{"weeks", "P1W", 7 * 24 * time.Hour},
		{"zero", "PT0S", 0},
		{"livestream zero", "P0D", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := youtube.ParseDuration(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

/*
TestParseDuration_Invalid verifies that malformed durations are rejected
instead of silently defaulting.
*/
func TestParseDuration_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing prefix", "T1M"},
		{"bare number", "120"},
		{"unit without value", "PTS"},
		{"unknown designator", "PT3X"},
		{"time designator in date part", "P3S"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := youtube.ParseDuration(tc.input)
			assert.Error(t, err)
		})
	}
}
