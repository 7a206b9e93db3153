package artist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/atelier/internal/platform/constants"
)

// RedisDomainCache keeps the per-artist source domain histogram in Redis
// for [constants.ArtistDomainsTTL] so repeated lookups skip the post scan.
type RedisDomainCache struct {
	client *redis.Client
}

func NewRedisDomainCache(client *redis.Client) *RedisDomainCache {
	return &RedisDomainCache{client: client}
}

func domainKey(artistID int) string {
	return fmt.Sprintf("%s%d", constants.RedisPrefixArtistDomains, artistID)
}

// GetDomains returns the cached histogram, or (nil, nil) on a miss.
func (cache *RedisDomainCache) GetDomains(context context.Context, artistID int) ([]DomainCount, error) {
	raw, err := cache.client.Get(context, domainKey(artistID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("domain cache: get: %w", err)
	}

	var counts []DomainCount
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, fmt.Errorf("domain cache: decode: %w", err)
	}
	return counts, nil
}

func (cache *RedisDomainCache) SetDomains(context context.Context, artistID int, counts []DomainCount) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("domain cache: encode: %w", err)
	}

	if err := cache.client.Set(context, domainKey(artistID), raw, constants.ArtistDomainsTTL).Err(); err != nil {
		return fmt.Errorf("domain cache: set: %w", err)
	}
	return nil
}
