package schema

// CoreWikiPageTable represents the 'core.wikipage' table
type CoreWikiPageTable struct {
	Table     string
	ID        string
	Title     string
	Body      string
	IsLocked  string
	CreatedAt string
	UpdatedAt string
}

// CoreWikiPage is the schema definition for core.wikipage
var CoreWikiPage = CoreWikiPageTable{
	Table:     "core.wikipage",
	ID:        "id",
	Title:     "title",
	Body:      "body",
	IsLocked:  "islocked",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
