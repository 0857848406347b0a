package ghin

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// dateLayout is the calendar-date wire format. Times are truncated to the
// day, never rounded; no time-of-day or zone reaches the wire.
const dateLayout = "2006-01-02"

// encodeParams flattens a request record into query parameters following
// the package encoding rules:
//
//   - nil pointer fields are skipped entirely (absence, not empty string)
//   - slice fields become one repeated parameter per element, in order
//   - time.Time fields are encoded as YYYY-MM-DD
//   - every other scalar uses its natural string representation
//
// Parameter names come from the `param` struct tag; untagged fields are
// skipped.
func encodeParams(req any) url.Values {
	params := url.Values{}
	if req == nil {
		return params
	}

	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return params
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return params
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("param")
		if name == "" || name == "-" {
			continue
		}

		field := v.Field(i)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		switch field.Kind() {
		case reflect.Slice, reflect.Array:
			for j := 0; j < field.Len(); j++ {
				params.Add(name, scalarString(field.Index(j)))
			}
		default:
			params.Add(name, scalarString(field))
		}
	}

	return params
}

func scalarString(v reflect.Value) string {
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(dateLayout)
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
