package ghin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HandicapOperations groups handicap lookups.
type HandicapOperations interface {
	// GetOne fetches a single golfer's handicap record.
	GetOne(ctx context.Context, ghinNumber int) (*Golfer, error)

	// GetCoursePlayerHandicaps computes course handicaps for a batch of
	// golfers in a single call. One malformed entry rejects the whole
	// batch before any network access.
	GetCoursePlayerHandicaps(ctx context.Context, requests []CourseHandicapRequest) (*CoursePlayerHandicapsResponse, error)
}

// GolferOperations groups golfer lookups.
type GolferOperations interface {
	// Search returns the golfers matching the request. The fixed default
	// parameter set (from_ghin, per_page 25, page 1, full_name ascending)
	// is always applied; request fields only add to it.
	Search(ctx context.Context, req GolferSearchRequest) ([]Golfer, error)

	// GetOne returns the first active golfer with the given ghin number,
	// or (nil, nil) when there is no match. Absence is not an error.
	GetOne(ctx context.Context, ghinNumber int) (*Golfer, error)

	// GetScores fetches a golfer's score history. A nil request collapses
	// to an empty one.
	GetScores(ctx context.Context, ghinNumber int, req *ScoresRequest) (*ScoresResponse, error)
}

// Client is the entry point to the GHIN service. Construct it with
// NewClient; a zero Client is not usable. Safe for concurrent use.
type Client struct {
	// Handicaps exposes handicap operations.
	Handicaps HandicapOperations
	// Golfers exposes golfer operations.
	Golfers GolferOperations

	transport *transport
}

// NewClient validates cfg, applies options and returns a ready client.
// A configuration that does not conform to its schema yields a
// ClientError of type Config and no client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	c := &Client{
		transport: &transport{
			baseURL:      cfg.BaseURL,
			token:        cfg.Token,
			httpClient:   &http.Client{Timeout: cfg.Timeout},
			cache:        cfg.Cache,
			cacheTTL:     5 * time.Minute,
			cacheKeyFunc: DefaultCacheKeyFunc,
			debug:        DefaultDebugConfig(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validateOptions(); err != nil {
		return nil, err
	}

	c.Handicaps = &handicapService{transport: c.transport}
	c.Golfers = &golferService{transport: c.transport}

	return c, nil
}

type handicapService struct {
	transport *transport
}

func (s *handicapService) GetOne(ctx context.Context, ghinNumber int) (*Golfer, error) {
	if ghinNumber <= 0 {
		return nil, newValidationError(fmt.Sprintf("ghin number must be positive, got %d", ghinNumber), nil)
	}

	params := url.Values{}
	params.Set("golfer_id", strconv.Itoa(ghinNumber))

	var resp HandicapResponse
	if err := s.transport.do(ctx, entityGolfer, requestOptions{params: params}, &resp); err != nil {
		return nil, err
	}

	return &resp.Golfer, nil
}

func (s *handicapService) GetCoursePlayerHandicaps(ctx context.Context, requests []CourseHandicapRequest) (*CoursePlayerHandicapsResponse, error) {
	if len(requests) == 0 {
		return nil, newValidationError("course handicap batch must not be empty", nil)
	}

	wire := make([]wireCourseHandicapRequest, 0, len(requests))
	for i, req := range requests {
		if err := validate.Struct(req); err != nil {
			return nil, newValidationError(fmt.Sprintf("course handicap request %d is invalid", i), err)
		}
		wire = append(wire, wireCourseHandicapRequest{
			GolferID:   req.GhinNumber,
			CourseID:   req.CourseID,
			TeeSetID:   req.TeeSetID,
			TeeSetSide: req.TeeSetSide,
		})
	}

	body := wireCourseHandicapsBody{
		CourseHandicaps: wire,
		Source:          sourceTag,
	}

	var resp CoursePlayerHandicapsResponse
	err := s.transport.do(ctx, entityCourseHandicaps, requestOptions{
		method: http.MethodPost,
		body:   body,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

type golferService struct {
	transport *transport
}

// searchDefaults is the fixed parameter set applied to every search.
func searchDefaults() url.Values {
	params := url.Values{}
	params.Set("from_ghin", "true")
	params.Set("per_page", "25")
	params.Set("sorting_criteria", "full_name")
	params.Set("order", "asc")
	params.Set("page", "1")
	return params
}

func (s *golferService) Search(ctx context.Context, req GolferSearchRequest) ([]Golfer, error) {
	if err := validate.Struct(req); err != nil {
		return nil, newValidationError("golfer search request is invalid", err)
	}

	params := searchDefaults()
	for name, values := range encodeParams(req) {
		for _, v := range values {
			params.Add(name, v)
		}
	}

	var resp GolferSearchResponse
	if err := s.transport.do(ctx, entityGolfersSearch, requestOptions{params: params}, &resp); err != nil {
		return nil, err
	}

	return resp.Golfers, nil
}

func (s *golferService) GetOne(ctx context.Context, ghinNumber int) (*Golfer, error) {
	if ghinNumber <= 0 {
		return nil, newValidationError(fmt.Sprintf("ghin number must be positive, got %d", ghinNumber), nil)
	}

	status := "Active"
	golfers, err := s.Search(ctx, GolferSearchRequest{
		GhinNumber: &ghinNumber,
		Status:     &status,
	})
	if err != nil {
		return nil, err
	}
	if len(golfers) == 0 {
		return nil, nil
	}

	return &golfers[0], nil
}

func (s *golferService) GetScores(ctx context.Context, ghinNumber int, req *ScoresRequest) (*ScoresResponse, error) {
	if ghinNumber <= 0 {
		return nil, newValidationError(fmt.Sprintf("ghin number must be positive, got %d", ghinNumber), nil)
	}
	if req == nil {
		req = &ScoresRequest{}
	}
	if err := validate.Struct(req); err != nil {
		return nil, newValidationError("scores request is invalid", err)
	}

	params := encodeParams(req)
	params.Set("golfer_id", strconv.Itoa(ghinNumber))
	params.Set("source", sourceTag)

	var resp ScoresResponse
	if err := s.transport.do(ctx, entityScores, requestOptions{params: params}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
