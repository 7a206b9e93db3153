package schema

// CoreArtistURLTable represents the 'core.artisturl' table
type CoreArtistURLTable struct {
	Table         string
	ID            string
	ArtistID      string
	URL           string
	NormalizedURL string
	IsActive      string
	Priority      string
	CreatedAt     string
}

// CoreArtistURL is the schema definition for core.artisturl
var CoreArtistURL = CoreArtistURLTable{
	Table:         "core.artisturl",
	ID:            "id",
	ArtistID:      "artistid",
	URL:           "url",
	NormalizedURL: "normalizedurl",
	IsActive:      "isactive",
	Priority:      "priority",
	CreatedAt:     "createdat",
}
