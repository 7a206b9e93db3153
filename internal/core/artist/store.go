package artist

import (
	"context"

	"github.com/taibuivan/atelier/internal/core/implication"
	"github.com/taibuivan/atelier/internal/core/modaction"
	"github.com/taibuivan/atelier/internal/core/post"
)

type Repository interface {
	// Get loads an artist with its URL collection.
	Get(context context.Context, id int) (*Artist, error)

	// GetByName returns the artist with the given normalized name, or
	// (nil, nil) when no such artist exists.
	GetByName(context context.Context, name string) (*Artist, error)

	// Create inserts the artist, its URL rows, and the initial version
	// snapshot in one transaction.
	Create(context context.Context, a *Artist, version *Version) error

	// Update rewrites the artist row, replaces its URL collection, and
	// appends the version snapshot (when non-nil) in one transaction.
	Update(context context.Context, a *Artist, version *Version) error

	// FindActiveByURLPrefix returns active artists owning a provenance
	// URL whose normalized form matches the given LIKE pattern.
	FindActiveByURLPrefix(context context.Context, pattern string, limit int) ([]*Artist, error)

	GetVersion(context context.Context, versionID int) (*Version, error)

	// ListVersions returns one page of an artist's version history,
	// oldest first, plus the total row count.
	ListVersions(context context.Context, artistID, limit, offset int) ([]*Version, int, error)

	BanWriter
}

// BanWriter force-writes the banned flag, bypassing the normal save path
// (no validation, no version snapshot).
type BanWriter interface {
	SetBanned(context context.Context, id int, banned bool) error
}

// TxRepos is the transaction-scoped view of every repository the ban and
// unban workflows touch. All writes made through it commit or abort
// together.
type TxRepos struct {
	Artists      BanWriter
	Implications implication.Repository
	Posts        post.Repository
	ModLog       modaction.Recorder
}

// TxRunner runs fn inside one storage transaction.
type TxRunner interface {
	RunInTx(context context.Context, fn func(context context.Context, repos TxRepos) error) error
}

// DomainCache is the read-through cache backing the per-artist source
// domain histogram. A miss returns (nil, nil).
type DomainCache interface {
	GetDomains(context context.Context, artistID int) ([]DomainCount, error)
	SetDomains(context context.Context, artistID int, counts []DomainCount) error
}
