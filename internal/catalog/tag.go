// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// Tag is a shared label. The canonical lower-cased string is the identity;
// two resources carrying the same tag text reference the same row.
type Tag struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TagFilter holds the parameters for a paginated tag search.
type TagFilter struct {
	Query string // Substring search against the canonical name
}

const (
	FieldTag = "tag"
)
