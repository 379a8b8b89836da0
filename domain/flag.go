package domain

import (
	"math"

	json "github.com/goccy/go-json"
)

// Flag is a boolean form field that accepts any JSON value and keeps its
// truthiness: false, 0, NaN, "" and null are false, everything else is true.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(t)
	case float64:
		*f = Flag(t != 0 && !math.IsNaN(t))
	case string:
		*f = Flag(t != "")
	default:
		*f = true
	}
	return nil
}

// Bool returns false for a missing flag.
func (f *Flag) Bool() bool {
	return f != nil && bool(*f)
}
