package schema

// PlaylistTable represents the 'yt.playlist' table
type PlaylistTable struct {
	Table       string
	ID          string
	ChannelID   string
	Title       string
	Description string
	PublishedAt string
	Language    string
	ItemCount   string
	CreatedAt   string
}

// Playlist is the schema definition for yt.playlist
var Playlist = PlaylistTable{
	Table:       "yt.playlist",
	ID:          "id",
	ChannelID:   "channelid",
	Title:       "title",
	Description: "description",
	PublishedAt: "publishedat",
	Language:    "language",
	ItemCount:   "itemcount",
	CreatedAt:   "createdat",
}

func (t PlaylistTable) Columns() []string {
	return []string{
		t.ID, t.ChannelID, t.Title, t.Description, t.PublishedAt,
		t.Language, t.ItemCount, t.CreatedAt,
	}
}
