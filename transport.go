package ghin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// entity is the logical resource name that selects the request shape and
// response schema on the transport.
type entity string

const (
	entityGolfer          entity = "golfer"
	entityGolfersSearch   entity = "golfers_search"
	entityScores          entity = "scores"
	entityCourseHandicaps entity = "course_handicaps"
)

var entityPaths = map[entity]string{
	entityGolfer:          "/golfers.json",
	entityGolfersSearch:   "/golfers/search.json",
	entityScores:          "/scores.json",
	entityCourseHandicaps: "/course_handicaps.json",
}

// requestOptions describe one outbound call: query parameters for reads,
// a JSON body for the batch write-style request.
type requestOptions struct {
	method string
	params url.Values
	body   any
}

// transport performs the network call beneath the facade: it builds the
// HTTP request, consults the cache, and validates/parses the response
// against the entity's schema. Every operation of the facade maps to
// exactly one transport call.
type transport struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	middleware   []Middleware
	cache        Cache
	cacheTTL     time.Duration
	cacheKeyFunc func(*http.Request) string
	metrics      *MetricsCollector
	logger       Logger
	debug        *DebugConfig
}

func (t *transport) do(ctx context.Context, ent entity, opts requestOptions, out any) error {
	start := time.Now()

	path, ok := entityPaths[ent]
	if !ok {
		return newValidationError(fmt.Sprintf("unknown entity %q", ent), nil)
	}

	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	reqURL := t.baseURL + path
	if len(opts.params) > 0 {
		reqURL += "?" + opts.params.Encode()
	}

	var bodyReader io.Reader
	if opts.body != nil {
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return newValidationError("request body serialization failed", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return newValidationError("request construction failed", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Accept", "application/json")
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var requestID string
	if t.debug != nil && t.debug.Enabled && t.debug.RequestIDGen != nil {
		requestID = t.debug.RequestIDGen()
	}
	if t.debugLogRequests() {
		t.logger.Debug("starting request",
			"requestID", requestID, "method", method, "entity", ent, "url", reqURL)
	}

	t.metrics.RecordRequestStart(method, string(ent))
	defer t.metrics.RecordRequestEnd(method, string(ent))

	cacheEnabled := t.cache != nil && method == http.MethodGet

	var cacheKey string
	if cacheEnabled {
		cacheKey = t.cacheKeyFunc(req)
		if entry, found := t.cache.Get(cacheKey); found {
			if t.debugLogCache() {
				t.logger.Debug("cache hit", "requestID", requestID, "cacheKey", cacheKey)
			}
			t.metrics.RecordCacheHit(method, string(ent))
			t.metrics.RecordRequest(method, string(ent), entry.StatusCode, time.Since(start))

			return t.decodeAndValidate(ent, requestID, method, reqURL, entry.Body, out)
		}
		t.metrics.RecordCacheMiss(method, string(ent))
		if t.debugLogCache() {
			t.logger.Debug("cache miss", "requestID", requestID, "cacheKey", cacheKey)
		}
	}

	resp, err := t.roundTrip(req)
	if err != nil {
		t.metrics.RecordError(ErrorTypeNetwork, method, string(ent))
		t.metrics.RecordRequest(method, string(ent), 0, time.Since(start))
		return t.newTransportError(ErrorTypeNetwork, "network request failed", err, requestID, method, reqURL, ent, 0)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.metrics.RecordError(ErrorTypeNetwork, method, string(ent))
		t.metrics.RecordRequest(method, string(ent), resp.StatusCode, time.Since(start))
		return t.newTransportError(ErrorTypeNetwork, "reading response body failed", err, requestID, method, reqURL, ent, resp.StatusCode)
	}

	t.metrics.RecordRequest(method, string(ent), resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 500 {
		t.metrics.RecordError(ErrorTypeServer, method, string(ent))
		return t.newTransportError(ErrorTypeServer, "service returned a server error", nil, requestID, method, reqURL, ent, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		t.metrics.RecordError(ErrorTypeClient, method, string(ent))
		return t.newTransportError(ErrorTypeClient, "service rejected the request", nil, requestID, method, reqURL, ent, resp.StatusCode)
	}

	if err := t.decodeAndValidate(ent, requestID, method, reqURL, body, out); err != nil {
		t.metrics.RecordError(ErrorTypeResponse, method, string(ent))
		return err
	}

	if cacheEnabled {
		entry := &CacheEntry{
			Body:       body,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
		}
		t.cache.Set(cacheKey, entry, t.cacheTTL)

		if inMemoryCache, ok := t.cache.(*InMemoryCache); ok {
			t.metrics.RecordCacheSize("default", inMemoryCache.Len())
		}
		if t.debugLogCache() {
			t.logger.Debug("response cached",
				"requestID", requestID, "cacheKey", cacheKey, "ttl", t.cacheTTL)
		}
	}

	return nil
}

// decodeAndValidate parses the response body into out and checks it
// against the entity's schema. An invalid shape is rejected, never passed
// through.
func (t *transport) decodeAndValidate(ent entity, requestID, method, reqURL string, body []byte, out any) error {
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return t.newTransportError(ErrorTypeResponse, "response parsing failed", err, requestID, method, reqURL, ent, 0)
	}
	if err := validate.Struct(out); err != nil {
		return t.newTransportError(ErrorTypeResponse, "response schema validation failed", err, requestID, method, reqURL, ent, 0)
	}

	return nil
}

func (t *transport) roundTrip(req *http.Request) (*http.Response, error) {
	if len(t.middleware) == 0 {
		return t.httpClient.Do(req)
	}

	current := RoundTripperFunc(t.httpClient.Do)

	for i := len(t.middleware) - 1; i >= 0; i-- {
		middleware := t.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}

func (t *transport) newTransportError(errorType, message string, cause error, requestID, method, reqURL string, ent entity, statusCode int) *ClientError {
	return &ClientError{
		Type:       errorType,
		Message:    message,
		Cause:      cause,
		RequestID:  requestID,
		Method:     method,
		URL:        reqURL,
		Entity:     string(ent),
		StatusCode: statusCode,
		Timestamp:  time.Now(),
	}
}

func (t *transport) debugLogRequests() bool {
	return t.debug != nil && t.debug.Enabled && t.debug.LogRequests && t.logger != nil
}

func (t *transport) debugLogCache() bool {
	return t.debug != nil && t.debug.Enabled && t.debug.LogCache && t.logger != nil
}
