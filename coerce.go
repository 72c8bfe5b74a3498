package rollup

import (
	"strconv"
	"strings"

	"github.com/tallyfmt/rollup/tree"
)

// SetValue is the loosely typed front-end to Set for callers holding
// values of unknown numeric kind. Go numeric types and numeric strings
// are accepted; anything else fails with ErrInvalidValue rather than
// silently coercing to zero.
func (a *Accumulator) SetValue(key string, value any, opts ...SetOption) error {
	f, err := coerce(key, value)
	if err != nil {
		return err
	}
	return a.Set(key, f, opts...)
}

func coerce(path string, value any) (float64, error) {
	switch x := value.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &tree.ValueError{Path: path, Value: value}
		}
		return f, nil
	default:
		return 0, &tree.ValueError{Path: path, Value: value}
	}
}
