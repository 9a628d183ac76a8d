package schema

// ChannelTagTable represents the 'yt.channeltag' join table
type ChannelTagTable struct {
	Table     string
	ChannelID string
	Tag       string
}

// ChannelTag is the schema definition for yt.channeltag
var ChannelTag = ChannelTagTable{
	Table:     "yt.channeltag",
	ChannelID: "channelid",
	Tag:       "tag",
}
