// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tagnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tubecache/pkg/tagnorm"
)

/*
TestCanonical verifies casing, trimming, and whitespace collapsing.
*/
func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Machine Learning", "machine learning"},
		{"trim", "  gaming  ", "gaming"},
		{"collapse_whitespace", "let's   play", "let's play"},
		{"already_canonical", "music", "music"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
		{"fullwidth_digits", "ａｂｃ１２３", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tagnorm.Canonical(tt.input))
		})
	}
}

/*
TestCanonicalAll verifies duplicate collapsing and order preservation.

Two tags that are textually equal after normalization must resolve to a
single entry.
*/
func TestCanonicalAll(t *testing.T) {
	input := []string{"Gaming", " gaming ", "Music", "", "MUSIC", "speedrun"}

	result := tagnorm.CanonicalAll(input)

	assert.Equal(t, []string{"gaming", "music", "speedrun"}, result)
}
