package artist

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/taibuivan/atelier/internal/core/implication"
	"github.com/taibuivan/atelier/internal/core/post"
	"github.com/taibuivan/atelier/internal/core/wiki"
	"github.com/taibuivan/atelier/internal/platform/sec"
)

// # Shared Test Doubles
//
// In-memory stand-ins for the storage interfaces. Each fake records the
// calls the tests assert on and supports error injection per method.

type fakeRepo struct {
	artists  map[int]*Artist
	versions map[int]*Version
	nextID   int

	// prefixMatches maps a LIKE pattern to the artists it returns.
	prefixMatches map[string][]*Artist
	prefixQueries []string

	createdVersions []*Version
	updateCalls     int
	banWrites       []bool

	getErr    error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		artists:       make(map[int]*Artist),
		versions:      make(map[int]*Version),
		prefixMatches: make(map[string][]*Artist),
		nextID:        1,
	}
}

func (r *fakeRepo) seed(a *Artist) *Artist {
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.artists[a.ID] = a
	return a
}

func (r *fakeRepo) seedVersion(v *Version) *Version {
	if v.ID == 0 {
		v.ID = r.nextID
		r.nextID++
	}
	r.versions[v.ID] = v
	return v
}

// cloneArtist detaches a read from the stored record, the way a row scan
// does. Without it a caller mutating the result would corrupt the "row"
// before the write-back.
func cloneArtist(a *Artist) *Artist {
	copied := *a
	copied.OtherNames = append([]string(nil), a.OtherNames...)
	copied.URLs = make([]*URL, len(a.URLs))
	for i, u := range a.URLs {
		urlCopy := *u
		copied.URLs[i] = &urlCopy
	}
	return &copied
}

func (r *fakeRepo) Get(_ context.Context, id int) (*Artist, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	a, found := r.artists[id]
	if !found {
		return nil, errNotFound
	}
	return cloneArtist(a), nil
}

func (r *fakeRepo) GetByName(_ context.Context, name string) (*Artist, error) {
	for _, a := range r.artists {
		if a.Name == name {
			return cloneArtist(a), nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Create(_ context.Context, a *Artist, version *Version) error {
	r.seed(a)
	if version != nil {
		version.ArtistID = a.ID
		r.createdVersions = append(r.createdVersions, version)
	}
	return nil
}

func (r *fakeRepo) Update(_ context.Context, a *Artist, version *Version) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updateCalls++
	r.artists[a.ID] = a
	if version != nil {
		r.createdVersions = append(r.createdVersions, version)
	}
	return nil
}

func (r *fakeRepo) FindActiveByURLPrefix(_ context.Context, pattern string, limit int) ([]*Artist, error) {
	r.prefixQueries = append(r.prefixQueries, pattern)
	matches := r.prefixMatches[pattern]
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *fakeRepo) GetVersion(_ context.Context, versionID int) (*Version, error) {
	v, found := r.versions[versionID]
	if !found {
		return nil, errNotFound
	}
	return v, nil
}

func (r *fakeRepo) ListVersions(_ context.Context, artistID, limit, offset int) ([]*Version, int, error) {
	var all []*Version
	for _, v := range r.versions {
		if v.ArtistID == artistID {
			all = append(all, v)
		}
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeRepo) SetBanned(_ context.Context, id int, banned bool) error {
	a, found := r.artists[id]
	if !found {
		return errNotFound
	}
	a.IsBanned = banned
	r.banWrites = append(r.banWrites, banned)
	return nil
}

type fakeWikiRepo struct {
	pages  map[string]*wiki.Page
	nextID int

	creates []string
	updates []wiki.UpdateFields

	findErr   error
	updateErr error
}

func newFakeWikiRepo() *fakeWikiRepo {
	return &fakeWikiRepo{pages: make(map[string]*wiki.Page), nextID: 1}
}

func (r *fakeWikiRepo) seed(title, body string) *wiki.Page {
	page := &wiki.Page{ID: r.nextID, Title: title, Body: body}
	r.nextID++
	r.pages[title] = page
	return page
}

func (r *fakeWikiRepo) FindByTitle(_ context.Context, title string) (*wiki.Page, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.pages[title], nil
}

func (r *fakeWikiRepo) Create(_ context.Context, title, body string) (*wiki.Page, error) {
	r.creates = append(r.creates, title)
	return r.seed(title, body), nil
}

func (r *fakeWikiRepo) Update(_ context.Context, id int, fields wiki.UpdateFields) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, fields)
	for title, page := range r.pages {
		if page.ID != id {
			continue
		}
		if fields.Body != nil {
			page.Body = *fields.Body
		}
		if fields.IsLocked != nil {
			page.IsLocked = *fields.IsLocked
		}
		if fields.Title != nil && *fields.Title != title {
			page.Title = *fields.Title
			delete(r.pages, title)
			r.pages[page.Title] = page
		}
		return nil
	}
	return errNotFound
}

type fakePostRepo struct {
	works []*post.Work

	tagWrites map[int]string
	findErr   error
	updateErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{tagWrites: make(map[int]string)}
}

func (r *fakePostRepo) FindByTag(_ context.Context, tag string, limit int) ([]*post.Work, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var matched []*post.Work
	for _, work := range r.works {
		if hasTag(work.TagString, tag) {
			matched = append(matched, work)
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func hasTag(tagString, tag string) bool {
	for _, field := range strings.Fields(tagString) {
		if field == tag {
			return true
		}
	}
	return false
}

func (r *fakePostRepo) UpdateTags(_ context.Context, id int, tagString string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.tagWrites[id] = tagString
	for _, work := range r.works {
		if work.ID == id {
			work.TagString = tagString
		}
	}
	return nil
}

type fakeImplicationRepo struct {
	records map[string]*implication.Record
	nextID  int

	approved []int
	deleted  []int
}

func newFakeImplicationRepo() *fakeImplicationRepo {
	return &fakeImplicationRepo{records: make(map[string]*implication.Record), nextID: 1}
}

func implKey(antecedent, consequent string) string {
	return antecedent + "->" + consequent
}

func (r *fakeImplicationRepo) Find(_ context.Context, antecedent, consequent string) (*implication.Record, error) {
	return r.records[implKey(antecedent, consequent)], nil
}

func (r *fakeImplicationRepo) Create(_ context.Context, antecedent, consequent string) (*implication.Record, error) {
	record := &implication.Record{
		ID:             r.nextID,
		AntecedentName: antecedent,
		ConsequentName: consequent,
		Status:         implication.StatusPending,
	}
	r.nextID++
	r.records[implKey(antecedent, consequent)] = record
	return record, nil
}

func (r *fakeImplicationRepo) Approve(_ context.Context, id int, approverID string) error {
	r.approved = append(r.approved, id)
	for _, record := range r.records {
		if record.ID == id {
			record.Status = implication.StatusActive
			record.ApproverID = &approverID
		}
	}
	return nil
}

func (r *fakeImplicationRepo) Delete(_ context.Context, id int) error {
	r.deleted = append(r.deleted, id)
	for key, record := range r.records {
		if record.ID == id {
			delete(r.records, key)
		}
	}
	return nil
}

type recordedAction struct {
	actorID string
	kind    string
	payload map[string]any
}

type fakeModLog struct {
	actions []recordedAction
}

func (l *fakeModLog) Record(_ context.Context, actorID, kind string, payload map[string]any) {
	l.actions = append(l.actions, recordedAction{actorID: actorID, kind: kind, payload: payload})
}

func (l *fakeModLog) kinds() []string {
	out := make([]string, 0, len(l.actions))
	for _, action := range l.actions {
		out = append(out, action.kind)
	}
	return out
}

type fakeDomainCache struct {
	entries map[int][]DomainCount

	getErr error
	setErr error
	sets   int
}

func newFakeDomainCache() *fakeDomainCache {
	return &fakeDomainCache{entries: make(map[int][]DomainCount)}
}

func (c *fakeDomainCache) GetDomains(_ context.Context, artistID int) ([]DomainCount, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[artistID], nil
}

func (c *fakeDomainCache) SetDomains(_ context.Context, artistID int, counts []DomainCount) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[artistID] = counts
	return nil
}

// fakeTxRunner executes the callback directly against the fixture repos;
// there is no transaction to roll back.
type fakeTxRunner struct {
	repos TxRepos
	runs  int
}

func (r *fakeTxRunner) RunInTx(ctx context.Context, fn func(context.Context, TxRepos) error) error {
	r.runs++
	return fn(ctx, r.repos)
}

var errNotFound = errFake("not found")

type errFake string

func (e errFake) Error() string { return string(e) }

// # Fixture Assembly

type fixture struct {
	service      *Service
	repo         *fakeRepo
	wikis        *fakeWikiRepo
	posts        *fakePostRepo
	implications *fakeImplicationRepo
	modlog       *fakeModLog
	domains      *fakeDomainCache
	tx           *fakeTxRunner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newFakeRepo()
	wikis := newFakeWikiRepo()
	posts := newFakePostRepo()
	implications := newFakeImplicationRepo()
	modlog := &fakeModLog{}
	domains := newFakeDomainCache()
	tx := &fakeTxRunner{repos: TxRepos{
		Artists:      repo,
		Implications: implications,
		Posts:        posts,
		ModLog:       modlog,
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		service:      NewService(repo, wikis, posts, modlog, domains, tx, logger),
		repo:         repo,
		wikis:        wikis,
		posts:        posts,
		implications: implications,
		modlog:       modlog,
		domains:      domains,
		tx:           tx,
	}
}

func janitor() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "11111111-1111-1111-1111-111111111111", Username: "janitor", Role: string(sec.RoleJanitor)}
}

func member() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "22222222-2222-2222-2222-222222222222", Username: "member", Role: string(sec.RoleMember)}
}
