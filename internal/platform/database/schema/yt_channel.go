package schema

// ChannelTable represents the 'yt.channel' table
type ChannelTable struct {
	Table            string
	ID               string
	Title            string
	Description      string
	CustomURL        string
	Language         string
	Country          string
	UploadPlaylistID string
	PublishedAt      string
	VideoCount       string
	ViewCount        string
	CommentCount     string
	SubscriberCount  string
	CreatedAt        string
}

// Channel is the schema definition for yt.channel
var Channel = ChannelTable{
	Table:            "yt.channel",
	ID:               "id",
	Title:            "title",
	Description:      "description",
	CustomURL:        "customurl",
	Language:         "language",
	Country:          "country",
	UploadPlaylistID: "uploadplaylistid",
	PublishedAt:      "publishedat",
	VideoCount:       "videocount",
	ViewCount:        "viewcount",
	CommentCount:     "commentcount",
	SubscriberCount:  "subscribercount",
	CreatedAt:        "createdat",
}

func (t ChannelTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.CustomURL, t.Language, t.Country,
		t.UploadPlaylistID, t.PublishedAt, t.VideoCount, t.ViewCount,
		t.CommentCount, t.SubscriberCount, t.CreatedAt,
	}
}
