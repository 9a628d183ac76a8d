// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tubecache/internal/platform/apperr"
	"github.com/taibuivan/tubecache/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "channel_id", "UCjdQaSJCYS4o2eG93MvIwqg", false},
		{"empty_string", "channel_id", "", true},
		{"whitespace_only", "channel_id", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_ResourceID checks the remote resource id format rule.
*/
func TestValidator_ResourceID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		isValid bool
	}{
		{"channel_id", "UCjdQaSJCYS4o2eG93MvIwqg", true},
		{"video_id", "dQw4w9WgXcQ", true},
		{"playlist_id", "PLbIc1971kgPCFlvfYMbZ3umbad61v4fIq", true},
		{"path_injection", "../etc/passwd", false},
		{"embedded_space", "UC jdQaSJ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.ResourceID("id", tt.id)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}
