// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tubecache/internal/platform/config"
)

/*
TestAllowedOrigins verifies that EXTRA_ORIGINS splits on commas, trims
whitespace, and drops blank entries.
*/
func TestAllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://staging.example.com, https://review.example.com ,,"}

	assert.Equal(t,
		[]string{"https://staging.example.com", "https://review.example.com"},
		cfg.AllowedOrigins())

	cfg.ExtraOrigins = ""
	assert.Empty(t, cfg.AllowedOrigins())
}
