package ghin

import (
	"fmt"
	"net/http"
	"time"
)

// WithHTTPClient sets a custom HTTP client for the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport.httpClient = client
	}
}

// WithTimeout sets the per-request timeout on the transport's HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.transport.httpClient != nil {
			c.transport.httpClient.Timeout = d
		}
	}
}

// WithCache replaces the cache beneath the transport. It overrides
// Config.Cache and the in-memory default.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.transport.cache = cache
	}
}

// WithoutCache disables response caching entirely.
func WithoutCache() Option {
	return func(c *Client) {
		c.transport.cache = nil
	}
}

// WithCacheTTL sets how long cached responses stay fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.transport.cacheTTL = ttl
	}
}

// WithCacheKeyFunc sets a custom cache key function.
func WithCacheKeyFunc(fn func(*http.Request) string) Option {
	return func(c *Client) {
		c.transport.cacheKeyFunc = fn
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.transport.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.transport.metrics = collector
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.transport.logger = logger
	}
}

// WithDebug enables debug logging, defaulting the logger when none is set.
func WithDebug() Option {
	return func(c *Client) {
		if c.transport.debug == nil {
			c.transport.debug = DefaultDebugConfig()
		}
		c.transport.debug.Enabled = true
		if c.transport.logger == nil {
			c.transport.logger = NewDefaultLogger()
		}
	}
}

// WithDebugConfig sets a custom debug configuration.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.transport.debug = config
	}
}

// WithRequestIDGenerator sets the function generating per-request IDs for
// debug logging.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.transport.debug == nil {
			c.transport.debug = DefaultDebugConfig()
		}
		c.transport.debug.RequestIDGen = gen
	}
}

// WithMiddleware appends middleware to the outbound call chain.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.transport.middleware = append(c.transport.middleware, middleware...)
	}
}

// validateOptions checks invariants the options can break. Options are
// applied after the Config has already validated, so this covers only the
// transport's own knobs.
func (c *Client) validateOptions() error {
	var problems []string

	t := c.transport
	if t.httpClient == nil {
		problems = append(problems, "HTTP client cannot be nil")
	}
	if t.cache != nil && t.cacheTTL <= 0 {
		problems = append(problems, "cache TTL must be positive when caching is enabled")
	}
	if t.cacheKeyFunc == nil {
		problems = append(problems, "cache key function cannot be nil")
	}
	for i, m := range t.middleware {
		if m == nil {
			problems = append(problems, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}
	if t.debug != nil && t.debug.Enabled {
		if t.debug.RequestIDGen == nil {
			problems = append(problems, "request ID generator must be set when debug is enabled")
		}
		if t.logger == nil {
			problems = append(problems, "logger must be set when debug is enabled")
		}
	}

	if len(problems) > 0 {
		return newConfigError("client option validation failed", fmt.Errorf("validation errors: %v", problems))
	}

	return nil
}
