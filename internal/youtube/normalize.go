// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/tubecache/pkg/convert"
	"github.com/taibuivan/tubecache/pkg/tagnorm"
)

// InvalidItemError marks one raw item that failed normalization.
//
// It carries the offending kind, field group, and raw payload so the
// diagnostic sink can record enough context to reproduce the failure.
// Merely-missing optional data never produces an InvalidItemError.
type InvalidItemError struct {
	// Kind is the resource kind the item was normalized as.
	Kind Kind
	// Group is the field group that failed validation (e.g. "statistics").
	Group string
	// Missing lists the required keys that were absent or null.
	Missing []string
	// Raw is the offending item payload, retained for diagnostics.
	Raw json.RawMessage
}

// Error implements the error interface.
func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("youtube: invalid %s item: group %q missing %v", e.Kind, e.Group, e.Missing)
}

// IsInvalid reports whether err marks a failed normalization.
func IsInvalid(err error) bool {
	_, ok := err.(*InvalidItemError)
	return ok
}

// # Attribute Maps

// groupSpec names one nested field group and the keys that must be present
// and non-null for the group to be valid.
type groupSpec struct {
	name     string
	required []string
}

// attributeMap defines, per kind, which groups are required. An item is valid
// only if every listed group is valid. Optional keys are simply read with
// zero-value fallbacks and need no declaration here.
//
// Counters follow the default-to-0 rule: only the group's presence is
// required, individual like/dislike/comment counts are not.
var attributeMap = map[Kind][]groupSpec{
	KindChannel: {
		{name: "snippet", required: []string{"title", "publishedAt"}},
		{name: "statistics", required: []string{"viewCount", "videoCount", "subscriberCount"}},
	},
	KindPlaylist: {
		{name: "snippet", required: []string{"title", "channelId"}},
		{name: "contentDetails", required: []string{"itemCount"}},
	},
	KindPlaylistItem: {
		{name: "snippet", required: []string{"playlistId", "resourceId"}},
	},
	KindVideo: {
		{name: "snippet", required: []string{"title", "channelId", "publishedAt", "description"}},
		{name: "statistics", required: []string{"viewCount"}},
		{name: "contentDetails", required: []string{"duration"}},
	},
}

// normalizers is the dispatch table selecting the per-kind normalizer.
// Adding a resource kind means adding one entry here plus its attribute map —
// no conditional chains anywhere.
var normalizers = map[Kind]func(id string, raw map[string]any, payload json.RawMessage) (Record, error){
	KindChannel:      normalizeChannel,
	KindPlaylist:     normalizePlaylist,
	KindPlaylistItem: normalizePlaylistItem,
	KindVideo:        normalizeVideo,
}

// Normalize converts one raw item of a known kind into its canonical record.
//
// Normalizing the same payload twice produces identical records; all map
// access is by explicit key, never by iteration order.
func Normalize(kind Kind, payload json.RawMessage) (Record, error) {
	normalizer, ok := normalizers[kind]
	if !ok {
		return nil, fmt.Errorf("youtube: unsupported kind %q", kind)
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &InvalidItemError{Kind: kind, Group: "item", Missing: []string{"(malformed json)"}, Raw: payload}
	}

	id, _ := raw["id"].(string)
	if id == "" {
		return nil, &InvalidItemError{Kind: kind, Group: "item", Missing: []string{"id"}, Raw: payload}
	}

	// Validate every required group before touching the payload.
	for _, spec := range attributeMap[kind] {
		group := getGroup(raw, spec.name)
		var missing []string
		for _, key := range spec.required {
			if group == nil || group[key] == nil {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, &InvalidItemError{Kind: kind, Group: spec.name, Missing: missing, Raw: payload}
		}
	}

	return normalizer(id, raw, payload)
}

// # Per-kind Normalizers

func normalizeChannel(id string, raw map[string]any, payload json.RawMessage) (Record, error) {
	snippet := getGroup(raw, "snippet")
	statistics := getGroup(raw, "statistics")
	contentDetails := getGroup(raw, "contentDetails")

	publishedAt, err := timestamp(snippet, "publishedAt")
	if err != nil {
		return nil, &InvalidItemError{Kind: KindChannel, Group: "snippet", Missing: []string{"publishedAt"}, Raw: payload}
	}

	// The upload playlist id lives one level deeper; it is optional and is
	// resolved lazily by the orchestrator, never here.
	uploads := ""
	if related := getGroup(contentDetails, "relatedPlaylists"); related != nil {
		uploads = str(related, "uploads")
	}

	return &ChannelRecord{
		ResourceID:       id,
		Title:            str(snippet, "title"),
		Description:      str(snippet, "description"),
		CustomURL:        str(snippet, "customUrl"),
		Language:         str(snippet, "defaultLanguage"),
		Country:          str(snippet, "country"),
		PublishedAt:      publishedAt,
		UploadPlaylistID: uploads,
		ViewCount:        count(statistics, "viewCount"),
		CommentCount:     count(statistics, "commentCount"),
		SubscriberCount:  count(statistics, "subscriberCount"),
		VideoCount:       count(statistics, "videoCount"),
		Tags:             tagnorm.CanonicalAll(strList(snippet, "tags")),
	}, nil
}

func normalizePlaylist(id string, raw map[string]any, payload json.RawMessage) (Record, error) {
	snippet := getGroup(raw, "snippet")
	contentDetails := getGroup(raw, "contentDetails")

	// publishedAt is optional for playlists; the zero time means unknown.
	publishedAt, _ := timestamp(snippet, "publishedAt")

	return &PlaylistRecord{
		ResourceID:  id,
		ChannelID:   str(snippet, "channelId"),
		Title:       str(snippet, "title"),
		Description: str(snippet, "description"),
		Language:    str(snippet, "defaultLanguage"),
		PublishedAt: publishedAt,
		ItemCount:   count(contentDetails, "itemCount"),
		Tags:        tagnorm.CanonicalAll(strList(snippet, "tags")),
	}, nil
}

func normalizePlaylistItem(id string, raw map[string]any, payload json.RawMessage) (Record, error) {
	snippet := getGroup(raw, "snippet")

	// The embedded resourceId sub-object determines the referenced resource.
	resource := getGroup(snippet, "resourceId")
	referencedKind := referenceKind(str(resource, "kind"))
	referencedID := str(resource, string(referencedKind)+"Id")
	if referencedKind == "" || referencedID == "" {
		return nil, &InvalidItemError{Kind: KindPlaylistItem, Group: "snippet", Missing: []string{"resourceId"}, Raw: payload}
	}

	publishedAt, _ := timestamp(snippet, "publishedAt")

	return &PlaylistItemRecord{
		ResourceID:     id,
		PlaylistID:     str(snippet, "playlistId"),
		Title:          str(snippet, "title"),
		Description:    str(snippet, "description"),
		Position:       count(snippet, "position"),
		PublishedAt:    publishedAt,
		ReferencedKind: referencedKind,
		ReferencedID:   referencedID,
	}, nil
}

func normalizeVideo(id string, raw map[string]any, payload json.RawMessage) (Record, error) {
	snippet := getGroup(raw, "snippet")
	statistics := getGroup(raw, "statistics")
	contentDetails := getGroup(raw, "contentDetails")
	topicDetails := getGroup(raw, "topicDetails")

	publishedAt, err := timestamp(snippet, "publishedAt")
	if err != nil {
		return nil, &InvalidItemError{Kind: KindVideo, Group: "snippet", Missing: []string{"publishedAt"}, Raw: payload}
	}

	duration, err := ParseDuration(str(contentDetails, "duration"))
	if err != nil {
		return nil, &InvalidItemError{Kind: KindVideo, Group: "contentDetails", Missing: []string{"duration"}, Raw: payload}
	}

	// The canonical tag list is the union of free-text tags and topic
	// identifiers, all lower-cased.
	tags := strList(snippet, "tags")
	tags = append(tags, strList(topicDetails, "topicCategories")...)
	tags = append(tags, strList(topicDetails, "relevantTopicIds")...)

	return &VideoRecord{
		ResourceID:    id,
		ChannelID:     str(snippet, "channelId"),
		Title:         str(snippet, "title"),
		Description:   str(snippet, "description"),
		PublishedAt:   publishedAt,
		Duration:      duration,
		Language:      str(snippet, "defaultLanguage"),
		AudioLanguage: str(snippet, "defaultAudioLanguage"),
		CategoryID:    convert.ToInt(str(snippet, "categoryId")),
		ViewCount:     count(statistics, "viewCount"),
		LikeCount:     count(statistics, "likeCount"),
		DislikeCount:  count(statistics, "dislikeCount"),
		CommentCount:  count(statistics, "commentCount"),
		FavoriteCount: count(statistics, "favoriteCount"),
		Dimension:     str(contentDetails, "dimension"),
		Definition:    str(contentDetails, "definition"),
		Caption:       convert.ToBool(str(contentDetails, "caption")),
		Tags:          tagnorm.CanonicalAll(tags),
	}, nil
}

// # Raw Access Helpers

// getGroup returns the named nested object, or nil when absent or mistyped.
func getGroup(raw map[string]any, name string) map[string]any {
	if raw == nil {
		return nil
	}
	group, _ := raw[name].(map[string]any)
	return group
}

// str returns the string under key, or "" when absent or non-string.
func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// strList returns the list of strings under key, skipping non-string entries.
func strList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	values, ok := m[key].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// count coerces a counter field to a non-negative int64.
//
// The API encodes counters as JSON strings, but the occasional numeric value
// shows up too; present-but-non-numeric and absent both default to 0.
func count(m map[string]any, key string) int64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case string:
		return convert.ToCount(v)
	case float64:
		if v < 0 {
			return 0
		}
		return int64(v)
	default:
		return 0
	}
}

// timestamp parses an RFC 3339 timestamp field.
func timestamp(m map[string]any, key string) (time.Time, error) {
	raw := str(m, key)
	if raw == "" {
		return time.Time{}, fmt.Errorf("youtube: missing timestamp %q", key)
	}
	return time.Parse(time.RFC3339, raw)
}

// referenceKind maps a prefixed resource kind ("youtube#video") onto the
// bare [Kind] tag.
func referenceKind(prefixed string) Kind {
	_, bare, found := strings.Cut(prefixed, "#")
	if !found {
		return Kind("")
	}
	k := Kind(bare)
	if !k.Valid() {
		return Kind("")
	}
	return k
}
