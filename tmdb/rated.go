package tmdb

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// RatedValue is either "not rated" or a rating. The API encodes the former as
// false and the latter as {"value": 7.5}.
type RatedValue struct {
	rated bool
	value float64
}

// NotRated returns the unrated state
func NotRated() RatedValue {
	return RatedValue{}
}

// Rated returns a rating of v
func Rated(v float64) RatedValue {
	return RatedValue{rated: true, value: v}
}

// IsRated reports whether a rating is present.
func (r RatedValue) IsRated() bool {
	return r.rated
}

// Value returns the rating and whether one is present.
func (r RatedValue) Value() (float64, bool) {
	return r.value, r.rated
}

// String implements fmt.Stringer
func (r RatedValue) String() string {
	if !r.rated {
		return "not rated"
	}
	return formatFloat(r.value)
}

// UnmarshalJSON accepts false, null, or an object with a value field.
func (r *RatedValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "false", "null", "":
		*r = NotRated()
		return nil
	case "true":
		*r = Rated(0)
		return nil
	}

	var obj struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid rated value %s: %w", data, err)
	}
	if obj.Value == nil {
		*r = NotRated()
		return nil
	}

	*r = Rated(*obj.Value)
	return nil
}

// MarshalJSON writes the same shapes UnmarshalJSON accepts.
func (r RatedValue) MarshalJSON() ([]byte, error) {
	if !r.rated {
		return []byte("false"), nil
	}
	return json.Marshal(struct {
		Value float64 `json:"value"`
	}{Value: r.value})
}
