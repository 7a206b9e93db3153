package artist

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/taibuivan/atelier/internal/core/post"
	"github.com/taibuivan/atelier/internal/platform/constants"
)

// directMediaRe matches source lines that point at a media file rather
// than a gallery or profile page. Those carry no attribution signal.
var directMediaRe = regexp.MustCompile(`\.(png|jpeg|jpg|webm|mp4)$`)

// DomainHistogram returns how often each registrable domain appears among
// the sources of the artist's recent works, sorted by count descending.
//
// The histogram is served from a per-artist cache with a fixed TTL.
// Concurrent misses may recompute redundantly; reads are infrequent enough
// that a recompute lock is not worth its complexity.
func (service *Service) DomainHistogram(context context.Context, artistID int) ([]DomainCount, error) {
	cached, err := service.domains.GetDomains(context, artistID)
	if err != nil {
		service.logger.Warn("domain_cache_read_failed",
			slog.Int("artist_id", artistID),
			slog.Any("error", err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	a, err := service.repo.Get(context, artistID)
	if err != nil {
		return nil, err
	}

	works, err := service.posts.FindByTag(context, a.Name, constants.DomainStatsSampleSize)
	if err != nil {
		return nil, err
	}

	counts := countSourceDomains(works)

	if err := service.domains.SetDomains(context, artistID, counts); err != nil {
		service.logger.Warn("domain_cache_write_failed",
			slog.Int("artist_id", artistID),
			slog.Any("error", err),
		)
	}

	return counts, nil
}

// countSourceDomains aggregates registrable domains across work sources.
// Each domain is counted at most once per work regardless of how many of
// that work's source lines point at it.
func countSourceDomains(works []*post.Work) []DomainCount {
	counted := make(map[string]int)

	for _, work := range works {
		seen := make(map[string]struct{})

		for _, line := range strings.Split(work.Source, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || directMediaRe.MatchString(line) {
				continue
			}

			parsed, err := url.Parse(line)
			if err != nil || parsed.Host == "" {
				continue
			}

			domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(parsed.Hostname()))
			if err != nil {
				continue
			}
			seen[domain] = struct{}{}
		}

		for domain := range seen {
			counted[domain]++
		}
	}

	histogram := make([]DomainCount, 0, len(counted))
	for domain, count := range counted {
		histogram = append(histogram, DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].Domain < histogram[j].Domain
	})
	return histogram
}
