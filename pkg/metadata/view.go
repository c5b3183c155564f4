package metadata

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/matzehuels/guiscale/pkg/errors"
)

// View is a read-only hierarchical mapping from string keys to values.
// Values are strings, integers or nested views. Every lookup returns false
// when the key is absent or holds a value of another kind.
type View interface {
	// SubView returns the nested view stored under key.
	SubView(key string) (View, bool)
	// StringValue returns the string stored under key.
	StringValue(key string) (string, bool)
	// IntegerValue returns the integer stored under key.
	IntegerValue(key string) (int, bool)
}

// MapView implements View over a decoded map[string]any.
// The zero value is an empty view.
type MapView struct {
	values map[string]any
}

// NewMapView returns a view over m. The map is not copied and must not be
// modified while the view is in use.
func NewMapView(m map[string]any) MapView {
	return MapView{values: m}
}

// SubView returns the nested view stored under key. Both map[string]any and
// map[any]any (with string keys) are accepted.
func (v MapView) SubView(key string) (View, bool) {
	raw, ok := v.values[key]
	if !ok {
		return nil, false
	}
	m, ok := asStringMap(raw)
	if !ok {
		return nil, false
	}
	return MapView{values: m}, true
}

// StringValue returns the string stored under key.
func (v MapView) StringValue(key string) (string, bool) {
	s, ok := v.values[key].(string)
	return s, ok
}

// IntegerValue returns the integer stored under key. Go integer kinds,
// json.Number and integral floats are accepted; anything that does not fit
// in an int is absent.
func (v MapView) IntegerValue(key string) (int, bool) {
	raw, ok := v.values[key]
	if !ok {
		return 0, false
	}
	return coerceInt(raw)
}

// Keys returns the keys present in the view, in no particular order.
func (v MapView) Keys() []string {
	keys := make([]string, 0, len(v.values))
	for k := range v.values {
		keys = append(keys, k)
	}
	return keys
}

// Section descends a dotted path of sub-views, e.g. "gui" or "plugins.gui".
// An empty path returns view itself. The first missing segment is reported
// as a MISSING_SECTION error.
func Section(view View, path string) (View, error) {
	if err := errors.ValidateSectionPath(path); err != nil {
		return nil, err
	}
	if path == "" {
		return view, nil
	}
	cur := view
	for _, part := range strings.Split(path, ".") {
		next, ok := cur.SubView(part)
		if !ok {
			return nil, errors.MissingSection(part)
		}
		cur = next
	}
	return cur, nil
}

func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int64ToInt(t)
	case uint:
		return uint64ToInt(uint64(t))
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return uint64ToInt(uint64(t))
	case uint64:
		return uint64ToInt(t)
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int64ToInt(i)
		}
		if f, err := t.Float64(); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func int64ToInt(i int64) (int, bool) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func uint64ToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func asStringMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}
