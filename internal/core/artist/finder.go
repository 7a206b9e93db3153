package artist

import (
	"context"
	"sort"
	"strings"

	"github.com/taibuivan/atelier/internal/platform/constants"
)

// FindArtists resolves an external URL to the artists most likely to have
// produced it.
//
// # Algorithm
//
// The candidate URL is normalized, then matched as a prefix against the
// stored normalized URLs of active artists. When nothing matches, the URL
// is truncated to its parent path segment and the match retried — an
// author's deep gallery path is specific enough to trust, so each retry
// trades specificity for recall. Truncation stops as soon as the remaining
// URL is a bare generic hosting domain (the site denylist): at that point
// any match would be a false positive.
//
// Returns at most [constants.FinderResultCap] distinct artists, ordered by
// name ascending.
func (service *Service) FindArtists(context context.Context, candidateURL string) ([]*Artist, error) {
	remaining := NormalizeURL(candidateURL)

	var matches []*Artist
	for len(matches) == 0 && len(remaining) > constants.FinderMinURLLength {
		probe := strings.TrimRight(remaining, "/") + "/"
		pattern := escapeForLike(probe) + "%"

		found, err := service.repo.FindActiveByURLPrefix(context, pattern, constants.FinderQueryLimit)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)

		remaining = parentPath(remaining)
		if IsDenylistedSite(remaining) {
			break
		}
	}

	return dedupeByName(matches, constants.FinderResultCap), nil
}

// parentPath drops the last non-slash path component and re-appends a
// single trailing slash: "http://a/b/c/" becomes "http://a/b/".
func parentPath(url string) string {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return "/"
	}
	return trimmed[:idx] + "/"
}

// escapeForLike escapes SQL LIKE metacharacters so the URL is matched
// literally as a prefix.
func escapeForLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// dedupeByName keeps the first artist seen for each name, caps the result,
// and orders it by name ascending.
func dedupeByName(artists []*Artist, cap int) []*Artist {
	seen := make(map[string]struct{}, len(artists))
	distinct := make([]*Artist, 0, len(artists))
	for _, a := range artists {
		if _, duplicate := seen[a.Name]; duplicate {
			continue
		}
		seen[a.Name] = struct{}{}
		distinct = append(distinct, a)
		if len(distinct) == cap {
			break
		}
	}

	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Name < distinct[j].Name })
	return distinct
}
