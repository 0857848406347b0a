// Package ghin provides a typed client for the GHIN (Golf Handicap and
// Information Network) lookup service:
//
//   - Handicap operations: single-golfer handicap lookup, batch course
//     handicap computation
//   - Golfer operations: search, zero-or-one lookup, score history
//   - Request validation before any network access, response schema
//     validation on receipt
//   - Pluggable response cache beneath the HTTP call (in-memory default,
//     Redis-backed implementation included)
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – a validated Config plus functional options
//     configure everything
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via user supplied middleware & pluggable cache / metrics
//
// Typical usage:
//
//	client, err := ghin.NewClient(ghin.Config{Token: token},
//	    ghin.WithCacheTTL(10*time.Minute),
//	    ghin.WithMetrics(),
//	)
//	if err != nil {
//	    // configuration did not validate
//	}
//	golfer, err := client.Handicaps.GetOne(ctx, 1234567)
//
// The client issues one outbound call per operation and never retries;
// resilience layers belong in a middleware or a custom *http.Client.
package ghin
