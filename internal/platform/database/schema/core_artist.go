package schema

// CoreArtistTable represents the 'core.artist' table
type CoreArtistTable struct {
	Table      string
	ID         string
	Name       string
	GroupName  string
	OtherNames string
	IsActive   string
	IsBanned   string
	IsLocked   string
	CreatorID  string
	CreatedAt  string
	UpdatedAt  string
}

// CoreArtist is the schema definition for core.artist
var CoreArtist = CoreArtistTable{
	Table:      "core.artist",
	ID:         "id",
	Name:       "name",
	GroupName:  "groupname",
	OtherNames: "othernames",
	IsActive:   "isactive",
	IsBanned:   "isbanned",
	IsLocked:   "islocked",
	CreatorID:  "creatorid",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t CoreArtistTable) Columns() []string {
	return []string{t.ID, t.Name, t.GroupName, t.OtherNames, t.IsActive, t.IsBanned, t.IsLocked, t.CreatorID, t.CreatedAt, t.UpdatedAt}
}
