package schema

// VideoTable represents the 'yt.video' table
type VideoTable struct {
	Table           string
	ID              string
	ChannelID       string
	Title           string
	Description     string
	PublishedAt     string
	DurationSeconds string
	Language        string
	AudioLanguage   string
	CategoryID      string
	ViewCount       string
	LikeCount       string
	DislikeCount    string
	CommentCount    string
	FavoriteCount   string
	Dimension       string
	Definition      string
	Caption         string
	CreatedAt       string
}

// Video is the schema definition for yt.video
var Video = VideoTable{
	Table:           "yt.video",
	ID:              "id",
	ChannelID:       "channelid",
	Title:           "title",
	Description:     "description",
	PublishedAt:     "publishedat",
	DurationSeconds: "durationseconds",
	Language:        "language",
	AudioLanguage:   "audiolanguage",
	CategoryID:      "categoryid",
	ViewCount:       "viewcount",
	LikeCount:       "likecount",
	DislikeCount:    "dislikecount",
	CommentCount:    "commentcount",
	FavoriteCount:   "favoritecount",
	Dimension:       "dimension",
	Definition:      "definition",
	Caption:         "caption",
	CreatedAt:       "createdat",
}

func (t VideoTable) Columns() []string {
	return []string{
		t.ID, t.ChannelID, t.Title, t.Description, t.PublishedAt,
		t.DurationSeconds, t.Language, t.AudioLanguage, t.CategoryID,
		t.ViewCount, t.LikeCount, t.DislikeCount, t.CommentCount,
		t.FavoriteCount, t.Dimension, t.Definition, t.Caption, t.CreatedAt,
	}
}
