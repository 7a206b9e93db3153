package artist

import "time"

// Artist is the canonical attribution record for a creative-work author.
//
// Records are soft-stateful: IsActive=false marks a deleted entry, rows are
// never physically removed. Name is globally unique and always stored in
// its normalized form (lowercase, underscores).
type Artist struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	GroupName  string     `json:"group_name"`
	OtherNames []string   `json:"other_names"`
	IsActive   bool       `json:"is_active"`
	IsBanned   bool       `json:"is_banned"`
	IsLocked   bool       `json:"is_locked"`
	CreatorID  string     `json:"creator_id"`
	URLs       []*URL     `json:"urls"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// pendingNotes holds an unsaved notes write until the save commits.
	// Notes are virtual: the durable store is the artist's wiki page.
	pendingNotes *string

	// urlStringChanged reports whether the last SetURLString call altered
	// the serialized URL set. Consumed by the version ledger, cleared
	// after each save.
	urlStringChanged bool
}

// URL is a provenance link asserted to belong to an artist, used to verify
// authorship of submitted works. Owned exclusively by its artist and
// replaced wholesale when the URL set is rewritten.
type URL struct {
	ID            int       `json:"id"`
	ArtistID      int       `json:"artist_id"`
	URL           string    `json:"url"`
	NormalizedURL string    `json:"normalized_url"`
	IsActive      bool      `json:"is_active"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

// Version is an immutable snapshot of an artist's tracked fields at a point
// in time. Rows are append-only and never mutated or deleted.
type Version struct {
	ID           int       `json:"id"`
	ArtistID     int       `json:"artist_id"`
	Name         string    `json:"name"`
	UpdaterID    string    `json:"updater_id"`
	URLs         []string  `json:"urls"`
	IsActive     bool      `json:"is_active"`
	IsBanned     bool      `json:"is_banned"`
	OtherNames   []string  `json:"other_names"`
	GroupName    string    `json:"group_name"`
	NotesChanged bool      `json:"notes_changed"`
	CreatedAt    time.Time `json:"created_at"`
}

// DomainCount is one row of an artist's source domain histogram.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// Status derives the display status from the active/banned flags.
func (a *Artist) Status() string {
	switch {
	case a.IsBanned && a.IsActive:
		return "Banned"
	case a.IsBanned:
		return "Banned Deleted"
	case a.IsActive:
		return "Active"
	default:
		return "Deleted"
	}
}

// EditableBy reports whether a non-janitor editor may modify this record.
func (a *Artist) EditableBy(isJanitor bool) bool {
	return isJanitor || (!a.IsBanned && a.IsActive)
}

const (
	FieldName       = "name"
	FieldGroupName  = "group_name"
	FieldOtherNames = "other_names"
	FieldURLString  = "url_string"
	FieldBase       = "base"
)
