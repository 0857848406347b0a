package ghin

import (
	"net/http"
	"time"
)

// Golfer is a single golfer record as returned by the GHIN service.
// Handicap values arrive as strings ("12.4", "+1.2", "NH") and are kept
// that way; the service owns their formatting.
type Golfer struct {
	GhinNumber        int    `json:"ghin_number" validate:"required,gt=0"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	PlayerName        string `json:"player_name"`
	Gender            string `json:"gender"`
	Email             string `json:"email"`
	Status            string `json:"status"`
	HandicapIndex     string `json:"handicap_index"`
	LowHI             string `json:"low_hi"`
	RevDate           string `json:"rev_date"`
	Association       string `json:"association_name"`
	ClubName          string `json:"club_name"`
	State             string `json:"state"`
	Country           string `json:"country"`
	SoftCap           string `json:"soft_cap"`
	HardCap           string `json:"hard_cap"`
	HasDigitalProfile bool   `json:"has_digital_profile"`
}

// Score is a single posted score for a golfer.
type Score struct {
	ID                  int     `json:"id"`
	GolferID            int     `json:"golfer_id"`
	Status              string  `json:"status"`
	ScoreType           string  `json:"score_type"`
	DatePlayed          string  `json:"played_at"`
	DatePosted          string  `json:"posted_at"`
	CourseID            int     `json:"course_id"`
	CourseName          string  `json:"course_name"`
	TeeName             string  `json:"tee_name"`
	CourseRating        float64 `json:"course_rating"`
	SlopeRating         float64 `json:"slope_rating"`
	NumberOfHoles       int     `json:"number_of_holes"`
	NumberOfPlayedHoles int     `json:"number_of_played_holes"`
	AdjustedGrossScore  int     `json:"adjusted_gross_score"`
	Differential        float64 `json:"differential"`
	IsManual            bool    `json:"is_manual"`
	UsedInRevision      bool    `json:"used"`
}

// CourseHandicap is one golfer's computed course handicap for a tee set.
type CourseHandicap struct {
	GolferID       int    `json:"golfer_id"`
	CourseID       int    `json:"course_id"`
	TeeSetID       int    `json:"tee_set_id"`
	TeeSetSide     string `json:"tee_set_side"`
	CourseHandicap int    `json:"course_handicap"`
	HandicapIndex  string `json:"handicap_index"`
}

// GolferSearchRequest narrows a golfer search. All fields are optional;
// a GhinNumber adds a golfer_id parameter on top of the fixed default
// parameter set, it never replaces it.
type GolferSearchRequest struct {
	GhinNumber *int    `param:"golfer_id" validate:"omitempty,gt=0"`
	Status     *string `param:"status" validate:"omitempty,oneof=Active Inactive Archived"`
	LastName   *string `param:"last_name"`
	FirstName  *string `param:"first_name"`
	State      *string `param:"state"`
	Country    *string `param:"country"`
}

// ScoresRequest narrows a score history lookup. All fields are optional;
// see the package encoding rules for how each field type reaches the wire.
type ScoresRequest struct {
	Status         *string    `param:"status" validate:"omitempty,oneof=Validated UnderReview Invalid"`
	ScoreTypes     []string   `param:"score_types" validate:"omitempty,dive,oneof=H A T C E P"`
	FromDatePlayed *time.Time `param:"from_date_played"`
	ToDatePlayed   *time.Time `param:"to_date_played"`
	CourseID       *int       `param:"course_id" validate:"omitempty,gt=0"`
	Limit          *int       `param:"limit" validate:"omitempty,gt=0"`
	Offset         *int       `param:"offset" validate:"omitempty,gte=0"`
}

// CourseHandicapRequest asks for one golfer's course handicap. GhinNumber
// is renamed to golfer_id on the wire.
type CourseHandicapRequest struct {
	GhinNumber int    `json:"-" validate:"required,gt=0"`
	CourseID   int    `json:"course_id" validate:"required,gt=0"`
	TeeSetID   int    `json:"tee_set_id" validate:"omitempty,gt=0"`
	TeeSetSide string `json:"tee_set_side" validate:"omitempty,oneof=All18 F9 B9"`
}

// wireCourseHandicapRequest is the outbound shape of one batch entry.
type wireCourseHandicapRequest struct {
	GolferID   int    `json:"golfer_id"`
	CourseID   int    `json:"course_id"`
	TeeSetID   int    `json:"tee_set_id,omitempty"`
	TeeSetSide string `json:"tee_set_side,omitempty"`
}

// wireCourseHandicapsBody is the envelope for the batch request. Source is
// the constant client-source tag the service expects.
type wireCourseHandicapsBody struct {
	CourseHandicaps []wireCourseHandicapRequest `json:"course_handicaps"`
	Source          string                      `json:"source"`
}

// HandicapResponse wraps a single golfer's handicap record.
type HandicapResponse struct {
	Golfer Golfer `json:"golfer" validate:"required"`
}

// GolferSearchResponse is the search envelope. Callers of Search receive
// only the Golfers slice.
type GolferSearchResponse struct {
	Golfers []Golfer `json:"golfers" validate:"dive"`
}

// ScoresResponse is a golfer's validated score history.
type ScoresResponse struct {
	Scores []Score `json:"scores"`
}

// CoursePlayerHandicapsResponse is the batch course-handicap envelope.
// Unlike search and handicap lookups it is returned whole, not unwrapped.
type CoursePlayerHandicapsResponse struct {
	CourseHandicaps []CourseHandicap `json:"course_handicaps" validate:"dive"`
}

// Middleware wraps the outbound HTTP call for cross-cutting concerns.
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper is the HTTP transport interface seen by middleware.
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc adapts a function to RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option configures a Client beyond its Config.
type Option func(*Client)
