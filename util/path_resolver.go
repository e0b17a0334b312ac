package util

import (
	"strings"

	"github.com/oliveagle/jsonpath"
)

// ResolvePath walks a dotted path against nested map data. The boolean
// distinguishes absent from a present nil value: a missing segment or a
// non-map intermediate yields ok=false, a stored nil yields (nil, true).
func ResolvePath(data map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	value, err := jsonpath.JsonPathLookup(data, "$."+path)
	if err != nil {
		return nil, false
	}
	return value, true
}
