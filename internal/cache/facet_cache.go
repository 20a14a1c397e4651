package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hecho/catalog_api/internal/models"
)

// FacetCache stores computed category facet lists keyed by the normalized
// search term, so the sidebar counts are not recomputed on every page view.
type FacetCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewFacetCache creates a FacetCache with the given entry TTL.
func NewFacetCache(redis *RedisClient, ttl time.Duration) *FacetCache {
	return &FacetCache{redis: redis, ttl: ttl}
}

// key normalizes the search term into a cache key. The empty term (the
// default sidebar) shares one well-known key.
func (c *FacetCache) key(locale, search string) string {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		term = "-"
	}
	return fmt.Sprintf("facets:%s:%s", locale, term)
}

// Get returns the cached facets for a term, or a miss error.
func (c *FacetCache) Get(ctx context.Context, locale, search string) ([]models.CategoryFacet, error) {
	raw, err := c.redis.Get(ctx, c.key(locale, search))
	if err != nil {
		return nil, err
	}
	var facets []models.CategoryFacet
	if err := json.Unmarshal([]byte(raw), &facets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached facets: %w", err)
	}
	return facets, nil
}

// Set stores the facets for a term.
func (c *FacetCache) Set(ctx context.Context, locale, search string, facets []models.CategoryFacet) error {
	raw, err := json.Marshal(facets)
	if err != nil {
		return fmt.Errorf("failed to marshal facets: %w", err)
	}
	return c.redis.Set(ctx, c.key(locale, search), string(raw), c.ttl)
}

// Invalidate drops every cached facet list. Called when products or
// categories change, since any term's counts may have shifted.
func (c *FacetCache) Invalidate(ctx context.Context) error {
	return c.redis.DeleteByPattern(ctx, "facets:*")
}
