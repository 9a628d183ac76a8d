// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tubecache/pkg/convert"
)

/*
TestToCount verifies the counter coercion rules used by the normalizer:
absent, malformed, and negative values all default to 0.
*/
func TestToCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"plain_number", "12345", 12345},
		{"zero", "0", 0},
		{"empty_defaults", "", 0},
		{"garbage_defaults", "12a45", 0},
		{"negative_clamped", "-7", 0},
		{"large_counter", "9876543210", 9876543210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, convert.ToCount(tt.input))
		})
	}
}

/*
TestToBool checks the remote API's string-encoded boolean flags.
*/
func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("false"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("maybe"))
}
