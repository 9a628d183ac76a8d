package schema

// PlaylistTagTable represents the 'yt.playlisttag' join table
type PlaylistTagTable struct {
	Table      string
	PlaylistID string
	Tag        string
}

// PlaylistTag is the schema definition for yt.playlisttag
var PlaylistTag = PlaylistTagTable{
	Table:      "yt.playlisttag",
	PlaylistID: "playlistid",
	Tag:        "tag",
}
