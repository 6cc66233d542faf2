// Package cache provides the in-memory mentor catalog cache.
package cache

import (
	"time"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
)

const catalogKey = "mentor_catalog"

// MentorCache caches the mentor catalog so repeated listing and match
// searches do not rebuild it.
type MentorCache struct {
	cache *gocache.Cache
}

// NewMentorCache creates a cache with the given TTL and cleanup interval
func NewMentorCache(ttl, cleanupInterval time.Duration) *MentorCache {
	return &MentorCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the cached catalog, if present
func (c *MentorCache) Get() ([]models.Mentor, bool) {
	v, found := c.cache.Get(catalogKey)
	if !found {
		metrics.CacheMisses.WithLabelValues("mentors").Inc()
		return nil, false
	}

	mentors, ok := v.([]models.Mentor)
	if !ok {
		metrics.CacheMisses.WithLabelValues("mentors").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("mentors").Inc()
	return mentors, true
}

// Set stores the catalog with the default TTL
func (c *MentorCache) Set(mentors []models.Mentor) {
	c.cache.Set(catalogKey, mentors, gocache.DefaultExpiration)
}

// Invalidate drops the cached catalog
func (c *MentorCache) Invalidate() {
	c.cache.Delete(catalogKey)
}
