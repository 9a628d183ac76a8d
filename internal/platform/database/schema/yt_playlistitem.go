package schema

// PlaylistItemTable represents the 'yt.playlistitem' table
//
// A playlist item is a join-record with metadata (position, timestamps), not a
// duplicate of the video it references.
type PlaylistItemTable struct {
	Table       string
	ID          string
	PlaylistID  string
	VideoID     string
	Title       string
	Description string
	Position    string
	PublishedAt string
	CreatedAt   string
}

// PlaylistItem is the schema definition for yt.playlistitem
var PlaylistItem = PlaylistItemTable{
	Table:       "yt.playlistitem",
	ID:          "id",
	PlaylistID:  "playlistid",
	VideoID:     "videoid",
	Title:       "title",
	Description: "description",
	Position:    "position",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
}

func (t PlaylistItemTable) Columns() []string {
	return []string{
		t.ID, t.PlaylistID, t.VideoID, t.Title, t.Description,
		t.Position, t.PublishedAt, t.CreatedAt,
	}
}
