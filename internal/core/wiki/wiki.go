package wiki

import "time"

// Page is a free-text documentation page keyed by title.
//
// An artist's page shares its title with the artist's canonical name. The
// relation is a soft reference resolved by title lookup, never a foreign
// key: renaming an artist retitles the page rather than repointing an ID.
type Page struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateFields holds the optional fields of a partial page update.
// Nil fields are left untouched.
type UpdateFields struct {
	Title    *string
	Body     *string
	IsLocked *bool
}

const (
	FieldTitle = "title"
	FieldBody  = "body"
)
