package ghin

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production GHIN API endpoint.
const DefaultBaseURL = "https://api2.ghin.com/api/v1"

// sourceTag identifies this client to the service. The service expects it
// on score lookups and batch course-handicap requests.
const sourceTag = "GHINcom"

// Config carries the connection and auth parameters for the GHIN service
// plus an optional cache implementation. It is validated before use and
// immutable once the client is constructed.
type Config struct {
	// BaseURL overrides the service endpoint. Defaults to DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`

	// Token is the bearer token presented on every request.
	Token string `validate:"required"`

	// Timeout bounds each outbound call. Defaults to 30s.
	Timeout time.Duration `validate:"gte=0"`

	// Cache is consulted by the transport beneath the HTTP call. When nil
	// an in-memory cache is constructed.
	Cache Cache
}

// validate is the package-wide schema validator. validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

func (cfg *Config) applyDefaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Cache == nil {
		cfg.Cache = NewInMemoryCache()
	}
}

// Validate reports whether the configuration conforms to its schema.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return newConfigError("configuration validation failed", err)
	}
	return nil
}
