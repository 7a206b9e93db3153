package schema

// CoreArtistVersionTable represents the 'core.artistversion' table.
// Rows are append-only; there is no updatedat column on purpose.
type CoreArtistVersionTable struct {
	Table        string
	ID           string
	ArtistID     string
	Name         string
	UpdaterID    string
	URLs         string
	IsActive     string
	IsBanned     string
	OtherNames   string
	GroupName    string
	NotesChanged string
	CreatedAt    string
}

// CoreArtistVersion is the schema definition for core.artistversion
var CoreArtistVersion = CoreArtistVersionTable{
	Table:        "core.artistversion",
	ID:           "id",
	ArtistID:     "artistid",
	Name:         "name",
	UpdaterID:    "updaterid",
	URLs:         "urls",
	IsActive:     "isactive",
	IsBanned:     "isbanned",
	OtherNames:   "othernames",
	GroupName:    "groupname",
	NotesChanged: "noteschanged",
	CreatedAt:    "createdat",
}
