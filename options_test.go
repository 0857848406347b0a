package ghin

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 3 * time.Second}
	client := newTestClient(t, "", WithHTTPClient(custom))

	if client.transport.httpClient != custom {
		t.Error("Expected custom HTTP client to be installed")
	}
}

func TestWithTimeout(t *testing.T) {
	client := newTestClient(t, "", WithTimeout(7*time.Second))

	if client.transport.httpClient.Timeout != 7*time.Second {
		t.Errorf("Expected timeout 7s, got %v", client.transport.httpClient.Timeout)
	}
}

func TestWithCacheTTL(t *testing.T) {
	client := newTestClient(t, "", WithCacheTTL(time.Minute))

	if client.transport.cacheTTL != time.Minute {
		t.Errorf("Expected cache TTL 1m, got %v", client.transport.cacheTTL)
	}
}

func TestWithoutCache(t *testing.T) {
	client := newTestClient(t, "", WithoutCache())

	if client.transport.cache != nil {
		t.Error("Expected caching to be disabled")
	}
}

func TestWithDebugDefaultsLogger(t *testing.T) {
	client := newTestClient(t, "", WithDebug())

	if client.transport.debug == nil || !client.transport.debug.Enabled {
		t.Fatal("Expected debug to be enabled")
	}
	if client.transport.logger == nil {
		t.Error("Expected WithDebug to default the logger")
	}
	if client.transport.debug.RequestIDGen == nil {
		t.Error("Expected a request ID generator")
	}
	if id := client.transport.debug.RequestIDGen(); id == "" {
		t.Error("Expected non-empty generated request IDs")
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"nil HTTP client", []Option{WithHTTPClient(nil)}},
		{"non-positive cache TTL", []Option{WithCacheTTL(0)}},
		{"nil cache key func", []Option{WithCacheKeyFunc(nil)}},
		{"nil middleware", []Option{WithMiddleware(nil)}},
		{"debug without request IDs", []Option{
			WithDebugConfig(&DebugConfig{Enabled: true}),
			WithLogger(NewDefaultLogger()),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(Config{Token: testToken}, tt.opts...)
			if err == nil {
				t.Fatal("Expected construction error, got nil")
			}
			if !IsValidation(err) {
				t.Errorf("Expected a configuration error, got %v", err)
			}
		})
	}
}
