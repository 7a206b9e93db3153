package artist

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/taibuivan/atelier/internal/core/modaction"
	"github.com/taibuivan/atelier/internal/core/post"
	"github.com/taibuivan/atelier/internal/core/source"
	"github.com/taibuivan/atelier/internal/core/wiki"
	"github.com/taibuivan/atelier/internal/platform/apperr"
	"github.com/taibuivan/atelier/internal/platform/constants"
	"github.com/taibuivan/atelier/internal/platform/sec"
	"github.com/taibuivan/atelier/internal/platform/validate"
)

type Service struct {
	repo    Repository
	wikis   wiki.Repository
	posts   post.Repository
	modlog  modaction.Recorder
	domains DomainCache
	tx      TxRunner
	limits  *editLimiter
	logger  *slog.Logger
}

func NewService(repo Repository, wikis wiki.Repository, posts post.Repository, modlog modaction.Recorder, domains DomainCache, tx TxRunner, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		wikis:   wikis,
		posts:   posts,
		modlog:  modlog,
		domains: domains,
		tx:      tx,
		limits:  newEditLimiter(),
		logger:  logger,
	}
}

// CreateInput carries the fields of a new artist entry.
type CreateInput struct {
	Name       string   `json:"name"`
	GroupName  string   `json:"group_name"`
	OtherNames []string `json:"other_names"`
	URLString  string   `json:"url_string"`
	Notes      string   `json:"notes"`

	// SourceURL optionally seeds defaults from a discovered work source,
	// dispatched through the per-site strategy set.
	SourceURL string `json:"source_url"`
}

// UpdateInput carries a partial artist edit. Nil fields are left untouched.
type UpdateInput struct {
	Name       *string   `json:"name"`
	GroupName  *string   `json:"group_name"`
	OtherNames *[]string `json:"other_names"`
	URLString  *string   `json:"url_string"`
	Notes      *string   `json:"notes"`
	IsActive   *bool     `json:"is_active"`
	IsLocked   *bool     `json:"is_locked"`
}

func (service *Service) GetArtist(context context.Context, id int) (*Artist, error) {
	return service.repo.Get(context, id)
}

func (service *Service) ListVersions(context context.Context, artistID, limit, offset int) ([]*Version, int, error) {
	return service.repo.ListVersions(context, artistID, limit, offset)
}

// CreateArtist registers a new artist entry.
//
// When a source URL is supplied (or discoverable), blank fields are seeded
// from the matching site strategy before validation.
func (service *Service) CreateArtist(context context.Context, input CreateInput, actor *sec.AuthClaims) (*Artist, error) {
	if input.SourceURL != "" {
		seed := source.Find(input.SourceURL)
		if input.Name == "" {
			input.Name = seed.Name
		}
		if input.URLString == "" {
			input.URLString = seed.URLString
		}
	}

	a := &Artist{
		Name:       input.Name,
		GroupName:  input.GroupName,
		OtherNames: slices.Clone(input.OtherNames),
		IsActive:   true,
		CreatorID:  actor.UserID,
	}
	a.normalizeNames()

	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name)
	validator.MaxLen(FieldGroupName, a.GroupName, constants.MaxGroupNameLength)
	validator.Custom(FieldBase, !service.limits.allow(actor.UserID), "Edit rate limit exceeded")

	if a.Name != "" {
		existing, err := service.repo.GetByName(context, a.Name)
		if err != nil {
			return nil, err
		}
		validator.Custom(FieldName, existing != nil, "Name is already taken")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	a.SetURLString(input.URLString)

	notesChanged := false
	if input.Notes != "" {
		notes := input.Notes
		a.pendingNotes = &notes
		notesChanged = true
	}

	// A new record always snapshots.
	version := newVersion(a, actor.UserID, notesChanged)

	if err := service.repo.Create(context, a, version); err != nil {
		return nil, err
	}

	service.syncWiki(context, a, "", a.pendingNotes)
	a.clearChangeTracking()

	service.logger.Info("artist_created",
		slog.Int("artist_id", a.ID),
		slog.String("name", a.Name),
	)
	return a, nil
}

// UpdateArtist applies a partial edit through the full save path:
// permission gates, normalization, validation, conditional version
// snapshot, and the post-commit relationship hooks.
func (service *Service) UpdateArtist(context context.Context, id int, input UpdateInput, actor *sec.AuthClaims) (*Artist, error) {
	return service.saveArtist(context, id, input, actor)
}

// trackedFields is the pre-save view of everything the version ledger
// watches, captured before the edit is applied.
type trackedFields struct {
	name       string
	isActive   bool
	isBanned   bool
	isLocked   bool
	otherNames []string
	groupName  string
}

func capture(a *Artist) trackedFields {
	return trackedFields{
		name:       a.Name,
		isActive:   a.IsActive,
		isBanned:   a.IsBanned,
		isLocked:   a.IsLocked,
		otherNames: slices.Clone(a.OtherNames),
		groupName:  a.GroupName,
	}
}

func (service *Service) saveArtist(context context.Context, id int, input UpdateInput, actor *sec.AuthClaims) (*Artist, error) {
	current, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	// Permission gates run before any mutation is applied.
	gate := &validate.Validator{}
	if !actor.IsJanitor() {
		gate.Custom(FieldBase, !current.IsActive, "Artist is inactive")
		gate.Custom(FieldBase, current.IsLocked, "Artist is locked")
	}
	gate.Custom(FieldBase, !service.limits.allow(actor.UserID), "Edit rate limit exceeded")
	if err := gate.Err(); err != nil {
		return nil, err
	}

	prev := capture(current)

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.GroupName != nil {
		current.GroupName = *input.GroupName
	}
	if input.OtherNames != nil {
		current.OtherNames = slices.Clone(*input.OtherNames)
	}
	if input.IsActive != nil && actor.IsJanitor() {
		current.IsActive = *input.IsActive
	}
	if input.IsLocked != nil && actor.IsJanitor() {
		current.IsLocked = *input.IsLocked
	}
	current.normalizeNames()

	validator := &validate.Validator{}
	validator.Required(FieldName, current.Name)
	validator.MaxLen(FieldGroupName, current.GroupName, constants.MaxGroupNameLength)

	if current.Name != prev.name {
		existing, err := service.repo.GetByName(context, current.Name)
		if err != nil {
			return nil, err
		}
		validator.Custom(FieldName, existing != nil && existing.ID != current.ID, "Name is already taken")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.URLString != nil {
		current.SetURLString(*input.URLString)
	}

	notesChanged := service.stageNotes(context, current, input.Notes)

	changed := prev.name != current.Name ||
		current.URLStringChanged() ||
		prev.isActive != current.IsActive ||
		prev.isBanned != current.IsBanned ||
		!slices.Equal(prev.otherNames, current.OtherNames) ||
		prev.groupName != current.GroupName ||
		notesChanged

	var version *Version
	if changed {
		version = newVersion(current, actor.UserID, notesChanged)
	}

	if err := service.repo.Update(context, current, version); err != nil {
		return nil, err
	}

	// Post-commit relationship hooks. These are best-effort: the primary
	// state change has already committed.
	if prev.name != current.Name {
		service.modlog.Record(context, actor.UserID, modaction.KindArtistPageRename, map[string]any{
			"old_name": prev.name,
			"new_name": current.Name,
		})
	}
	if prev.isLocked != current.IsLocked {
		kind := modaction.KindArtistPageUnlock
		if current.IsLocked {
			kind = modaction.KindArtistPageLock
		}
		service.modlog.Record(context, actor.UserID, kind, map[string]any{"artist_id": current.ID})
		service.propagateLocked(context, current)
	}
	service.syncWiki(context, current, prev.name, current.pendingNotes)
	current.clearChangeTracking()

	service.logger.Info("artist_updated", slog.Int("artist_id", current.ID))
	return current, nil
}

// RevertArtist restores an artist's tracked fields from a version snapshot
// and saves through the normal path, producing a fresh snapshot when the
// restored state differs.
func (service *Service) RevertArtist(context context.Context, artistID, versionID int, actor *sec.AuthClaims) (*Artist, error) {
	version, err := service.repo.GetVersion(context, versionID)
	if err != nil {
		return nil, err
	}
	if version.ArtistID != artistID {
		return nil, apperr.RevertMismatch("You cannot revert to a previous version of another artist")
	}

	urlBlock := strings.Join(version.URLs, "\n")
	otherNames := slices.Clone(version.OtherNames)
	input := UpdateInput{
		Name:       &version.Name,
		URLString:  &urlBlock,
		OtherNames: &otherNames,
		GroupName:  &version.GroupName,
	}
	return service.saveArtist(context, artistID, input, actor)
}

func newVersion(a *Artist, updaterID string, notesChanged bool) *Version {
	return &Version{
		ArtistID:     a.ID,
		Name:         a.Name,
		UpdaterID:    updaterID,
		URLs:         a.URLArray(),
		IsActive:     a.IsActive,
		IsBanned:     a.IsBanned,
		OtherNames:   slices.Clone(a.OtherNames),
		GroupName:    a.GroupName,
		NotesChanged: notesChanged,
	}
}

// # Edit Rate Limiting

// editLimiter throttles artist edits per editor using a token bucket.
// Entries are never evicted; the editor population is small and the
// limiters are a few words each.
type editLimiter struct {
	mu      sync.Mutex
	editors map[string]*rate.Limiter
}

func newEditLimiter() *editLimiter {
	return &editLimiter{editors: make(map[string]*rate.Limiter)}
}

func (l *editLimiter) allow(editorID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, found := l.editors[editorID]
	if !found {
		limiter = rate.NewLimiter(rate.Limit(constants.EditRateLimitPerMinute/60.0), constants.EditRateLimitBurst)
		l.editors[editorID] = limiter
	}
	return limiter.Allow()
}
