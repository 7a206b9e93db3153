// Package source maps a work's source URL to site-specific defaults for a
// new artist entry.
//
// Each supported site is a [Strategy] keyed by host pattern; dispatch picks
// the first strategy whose pattern matches and falls back to a generic one.
// Adding a site means adding a Strategy to the registry, nothing else.
package source

import (
	"net/url"
	"strings"
)

// Seed holds the defaults extracted from a source URL: a best-guess artist
// name and the URL block to pre-fill the provenance registry with.
type Seed struct {
	Name      string
	URLString string
}

// Strategy extracts defaults for one site family.
type Strategy interface {
	// Site names the strategy for logging and diagnostics.
	Site() string
	// Match reports whether this strategy handles the given host.
	Match(host string) bool
	// Seed extracts defaults from a parsed source URL.
	Seed(u *url.URL) Seed
}

// strategies is the dispatch registry, checked in order. The generic
// fallback must stay last.
var strategies = []Strategy{
	pixivStrategy{},
	twitterStrategy{},
	genericStrategy{},
}

// Find parses the raw URL and dispatches it to the matching strategy.
// Unparseable input yields an empty seed.
func Find(rawURL string) Seed {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return Seed{}
	}

	host := strings.ToLower(parsed.Hostname())
	for _, strategy := range strategies {
		if strategy.Match(host) {
			return strategy.Seed(parsed)
		}
	}
	return Seed{}
}

// hostMatches reports whether host equals domain or is one of its
// subdomains.
func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// # Pixiv

type pixivStrategy struct{}

func (pixivStrategy) Site() string { return "pixiv" }

func (pixivStrategy) Match(host string) bool {
	return hostMatches(host, "pixiv.net")
}

func (s pixivStrategy) Seed(u *url.URL) Seed {
	seed := Seed{URLString: u.String()}

	// Stacc URLs carry the account name directly; member pages only
	// carry a numeric id, which is no use as a name.
	if name, found := strings.CutPrefix(u.Path, "/stacc/"); found {
		seed.Name = firstSegment(name)
	}
	return seed
}

// # Twitter

type twitterStrategy struct{}

func (twitterStrategy) Site() string { return "twitter" }

func (twitterStrategy) Match(host string) bool {
	return hostMatches(host, "twitter.com") || hostMatches(host, "x.com")
}

func (s twitterStrategy) Seed(u *url.URL) Seed {
	seed := Seed{URLString: u.String()}

	handle := firstSegment(strings.TrimPrefix(u.Path, "/"))
	handle = strings.TrimPrefix(handle, "@")
	// Reserved, non-profile path roots.
	switch handle {
	case "", "i", "home", "search", "hashtag":
		return seed
	}
	seed.Name = handle
	return seed
}

// # Generic fallback

type genericStrategy struct{}

func (genericStrategy) Site() string { return "generic" }

func (genericStrategy) Match(string) bool { return true }

func (genericStrategy) Seed(u *url.URL) Seed {
	return Seed{URLString: u.String()}
}

func firstSegment(path string) string {
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return path
}
