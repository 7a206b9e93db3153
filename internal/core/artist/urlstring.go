package artist

import (
	"net/url"
	"sort"
	"strings"

	"github.com/taibuivan/atelier/internal/platform/constants"
	"github.com/taibuivan/atelier/pkg/slice"
)

// NormalizeURL converts a raw provenance URL into the canonical form used
// for storage and prefix matching: scheme folded to http, host lowercased,
// default ports stripped, fragment dropped, exactly one trailing slash.
//
// Unparseable input falls back to a trailing-slash fix so that a malformed
// stored URL still compares consistently with itself.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return strings.TrimRight(trimmed, "/") + "/"
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	if parsed.Scheme == "https" {
		parsed.Scheme = "http"
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimSuffix(host, ":80")
	host = strings.TrimSuffix(host, ":443")
	parsed.Host = host
	parsed.Fragment = ""

	return strings.TrimRight(parsed.String(), "/") + "/"
}

// ParseURLPrefix splits a URL token into its activation flag and bare URL.
// A leading "-" marks the URL as inactive for matching purposes.
func ParseURLPrefix(token string) (isActive bool, bare string) {
	if rest, found := strings.CutPrefix(token, "-"); found {
		return false, rest
	}
	return true, token
}

// SetURLString replaces the artist's URL collection from a whitespace
// separated block of URL tokens.
//
// Tokens are deduplicated by raw URL (first occurrence wins) and the
// collection is capped at [constants.MaxURLsPerArtist]. Existing rows with
// a matching raw URL are kept so their identity and priority survive a
// rewrite. Sets the changed signal when the serialized set differs.
func (a *Artist) SetURLString(block string) {
	previous := a.URLString()

	byRawURL := make(map[string]*URL, len(a.URLs))
	for _, existing := range a.URLs {
		byRawURL[existing.URL] = existing
	}

	var replacement []*URL
	seen := make(map[string]struct{})

	for _, token := range strings.Fields(block) {
		isActive, bare := ParseURLPrefix(token)
		if bare == "" {
			continue
		}
		if _, duplicate := seen[bare]; duplicate {
			continue
		}
		seen[bare] = struct{}{}

		entry, found := byRawURL[bare]
		if !found {
			entry = &URL{ArtistID: a.ID, URL: bare, NormalizedURL: NormalizeURL(bare)}
		}
		entry.IsActive = isActive
		replacement = append(replacement, entry)

		if len(replacement) == constants.MaxURLsPerArtist {
			break
		}
	}

	a.URLs = replacement
	a.urlStringChanged = previous != a.URLString()
}

// URLArray returns the serialized URL set, sorted. Inactive URLs carry a
// leading "-". This is the form captured by version snapshots.
func (a *Artist) URLArray() []string {
	serialized := slice.Map(a.URLs, func(u *URL) string {
		if u.IsActive {
			return u.URL
		}
		return "-" + u.URL
	})
	sort.Strings(serialized)
	return serialized
}

// URLString returns the serialized URL set joined with newlines.
func (a *Artist) URLString() string {
	return strings.Join(a.URLArray(), "\n")
}

// URLStringChanged reports whether the last SetURLString call altered the
// serialized set. Cleared by clearChangeTracking after a save commits.
func (a *Artist) URLStringChanged() bool {
	return a.urlStringChanged
}

// SortedURLs returns the URL collection in display order: priority
// descending, then raw URL for a stable tie-break.
func (a *Artist) SortedURLs() []*URL {
	ordered := make([]*URL, len(a.URLs))
	copy(ordered, a.URLs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].URL < ordered[j].URL
	})
	return ordered
}

// clearChangeTracking resets the per-save dirty markers.
func (a *Artist) clearChangeTracking() {
	a.urlStringChanged = false
	a.pendingNotes = nil
}
