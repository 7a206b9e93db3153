// Copyright (c) 2026 Atelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Registry Limits: Caps on artist URL and alias collections.
  - Caching: Key prefixes and TTLs for derived data.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "atelier-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute

	// EditRateLimitPerMinute is how many artist edits a single editor may
	// commit per minute before further edits are rejected with a validation error.
	EditRateLimitPerMinute = 10.0

	// EditRateLimitBurst is the burst capacity for the per-editor limiter.
	EditRateLimitBurst = 5
)

// # Registry Limits

const (
	// MaxURLsPerArtist caps the provenance URL collection of one artist.
	MaxURLsPerArtist = 25

	// MaxOtherNames caps the alias collection of one artist.
	MaxOtherNames = 26

	// MaxGroupNameLength is the maximum length of an artist's group name.
	MaxGroupNameLength = 100

	// FinderResultCap is the maximum number of artists a URL lookup returns.
	FinderResultCap = 20

	// FinderQueryLimit is the per-iteration row limit of the URL lookup.
	FinderQueryLimit = 10

	// FinderMinURLLength stops progressive truncation once the remaining
	// URL is too short to carry any signal ("http://a.b" is 10 chars).
	FinderMinURLLength = 10

	// DomainStatsSampleSize is how many recent works are sampled when
	// computing an artist's source domain histogram.
	DomainStatsSampleSize = 100
)

// # Moderation

const (
	// AvoidPostingTag is the consequent tag implied by every banned artist's name.
	AvoidPostingTag = "avoid_posting"
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "atelier.app"

	// ContextKeyUser is the key used to store user claims in the request context.
	ContextKeyUser = "user_claims"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCore   = "core"
	SchemaSystem = "system"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixArtistDomains keys the per-artist source domain histogram.
	RedisPrefixArtistDomains = "artist-domains-"
)

// # Cache TTLs

const (
	// ArtistDomainsTTL bounds the staleness of the domain histogram cache.
	// There is no explicit invalidation on write.
	ArtistDomainsTTL = 24 * time.Hour
)
