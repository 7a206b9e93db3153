package schema

// CorePostTable represents the 'core.post' table.
// Atelier only reads the source and tag columns; the full post record
// belongs to the upload pipeline.
type CorePostTable struct {
	Table     string
	ID        string
	Source    string
	TagString string
	CreatedAt string
	UpdatedAt string
}

// CorePost is the schema definition for core.post
var CorePost = CorePostTable{
	Table:     "core.post",
	ID:        "id",
	Source:    "source",
	TagString: "tagstring",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
