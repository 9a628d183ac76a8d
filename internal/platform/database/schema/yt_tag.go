package schema

// TagTable represents the 'yt.tag' table
//
// The canonical tag string is the primary key; there is no surrogate id.
type TagTable struct {
	Table     string
	Name      string
	CreatedAt string
}

// Tag is the schema definition for yt.tag
var Tag = TagTable{
	Table:     "yt.tag",
	Name:      "name",
	CreatedAt: "createdat",
}
