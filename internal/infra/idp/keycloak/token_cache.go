package keycloak

import (
	"sync"
	"time"
)

// tokenCache caches the admin access token until shortly before it expires.
// The margin keeps a safety window so a token is never used in its final
// moments.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	margin    time.Duration
	now       func() time.Time
}

func newTokenCache(margin time.Duration) *tokenCache {
	if margin <= 0 {
		margin = 10 * time.Second
	}

	return &tokenCache{
		margin: margin,
		now:    time.Now,
	}
}

// get returns the cached token or fetches a fresh one. fetch returns the
// token and its lifetime.
func (c *tokenCache) get(fetch func() (string, time.Duration, error)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, ttl, err := fetch()
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = c.now().Add(ttl - c.margin)

	return token, nil
}

// invalidate drops the cached token so the next get fetches a fresh one.
func (c *tokenCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}
