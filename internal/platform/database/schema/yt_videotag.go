package schema

// VideoTagTable represents the 'yt.videotag' join table
type VideoTagTable struct {
	Table   string
	VideoID string
	Tag     string
}

// VideoTag is the schema definition for yt.videotag
var VideoTag = VideoTagTable{
	Table:   "yt.videotag",
	VideoID: "videoid",
	Tag:     "tag",
}
