// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tagnorm canonicalizes free-text tag strings before storage.
//
// # Usage
//
// Tags arrive from the remote API in arbitrary casing and spacing
// ("Machine Learning", " machine learning "). The cache stores exactly one
// row per canonical form, so every lookup and insert must go through the
// same normalization.
package tagnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical converts an arbitrary Unicode tag into its canonical stored form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (folds compatibility variants: ﬁ → fi, full-width → ASCII).
// 2. Converts to lowercase.
// 3. Trims surrounding whitespace.
// 4. Collapses internal whitespace runs to a single space.
func Canonical(s string) string {
	// 1. Unicode compatibility normalization
	result := norm.NFKC.String(s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Trim and collapse whitespace
	result = strings.Join(strings.Fields(result), " ")

	return result
}

// CanonicalAll normalizes a list of tags, dropping entries that become empty
// and collapsing duplicates while preserving first-seen order.
func CanonicalAll(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, raw := range tags {
		tag := Canonical(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}
