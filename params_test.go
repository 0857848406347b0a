package ghin

import (
	"testing"
	"time"
)

type encodeFixture struct {
	Name     *string    `param:"name"`
	Count    *int       `param:"count"`
	Active   *bool      `param:"active"`
	Tags     []string   `param:"tags"`
	Day      *time.Time `param:"day"`
	Ignored  string     // no tag, never encoded
	Excluded string     `param:"-"`
}

func TestEncodeParamsSkipsNilFields(t *testing.T) {
	params := encodeParams(&encodeFixture{})

	if len(params) != 0 {
		t.Errorf("Expected no parameters for an empty record, got %v", params)
	}
}

func TestEncodeParamsScalars(t *testing.T) {
	name := "smith"
	count := 3
	active := true
	params := encodeParams(&encodeFixture{Name: &name, Count: &count, Active: &active})

	if got := params.Get("name"); got != "smith" {
		t.Errorf("Expected name=smith, got %q", got)
	}
	if got := params.Get("count"); got != "3" {
		t.Errorf("Expected count=3, got %q", got)
	}
	if got := params.Get("active"); got != "true" {
		t.Errorf("Expected active=true, got %q", got)
	}
}

func TestEncodeParamsRepeatsSequencesInOrder(t *testing.T) {
	params := encodeParams(&encodeFixture{Tags: []string{"c", "a", "b"}})

	got := params["tags"]
	if len(got) != 3 || got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Errorf("Expected tags=[c a b] preserving order, got %v", got)
	}
}

func TestEncodeParamsTruncatesDates(t *testing.T) {
	// 23:59:59 must truncate to the same calendar day, never round up.
	day := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	params := encodeParams(&encodeFixture{Day: &day})

	if got := params.Get("day"); got != "2023-12-31" {
		t.Errorf("Expected day=2023-12-31, got %q", got)
	}
}

func TestEncodeParamsSkipsUntaggedFields(t *testing.T) {
	params := encodeParams(&encodeFixture{Ignored: "x", Excluded: "y"})

	if len(params) != 0 {
		t.Errorf("Expected untagged and excluded fields to be skipped, got %v", params)
	}
}

func TestEncodeParamsToleratesNonStructs(t *testing.T) {
	if got := encodeParams(nil); len(got) != 0 {
		t.Errorf("Expected empty values for nil input, got %v", got)
	}
	if got := encodeParams("not a struct"); len(got) != 0 {
		t.Errorf("Expected empty values for non-struct input, got %v", got)
	}
	var fixture *encodeFixture
	if got := encodeParams(fixture); len(got) != 0 {
		t.Errorf("Expected empty values for nil struct pointer, got %v", got)
	}
}
