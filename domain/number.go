package domain

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Number is a numeric form field that also accepts numeric strings and
// booleans. Values that cannot be read as a number decode to NaN so the
// range checks reject them.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*n = 0
	case float64:
		*n = Number(t)
	case bool:
		if t {
			*n = 1
		} else {
			*n = 0
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = Number(math.NaN())
			return nil
		}
		*n = Number(f)
	default:
		*n = Number(math.NaN())
	}
	return nil
}
