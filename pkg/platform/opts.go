package platform

import (
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Opt is a function that configures a Client instance.
type Opt func(*Client)

// WithHTTPClient sets a custom HTTP client for the platform client.
func WithHTTPClient(httpClient *http.Client) Opt {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used by the platform client.
func WithLogger(logger *zerolog.Logger) Opt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLookupCacheTTL overrides how long project/dataset lookups are cached.
func WithLookupCacheTTL(ttl time.Duration) Opt {
	return func(c *Client) {
		c.lookup = cache.New(ttl, 2*ttl)
	}
}
