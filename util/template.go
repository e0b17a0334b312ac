package util

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// RenderTemplate substitutes {{dotted.path}} placeholders with values looked
// up in data. A placeholder whose path is absent stays verbatim in the output
// so a rendered message never silently drops information.
func RenderTemplate(template string, data map[string]any) string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return template
	}
	out := template
	for _, match := range matches {
		value, ok := ResolvePath(data, match[1])
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, match[0], fmt.Sprintf("%v", value))
	}
	return out
}

// ResolveParams renders every string found in an action's parameter map
// against the event data, recursing into nested maps and lists. Non-string
// values pass through untouched.
func ResolveParams(data map[string]any, params map[string]any) map[string]any {
	output := make(map[string]any, len(params))
	for k, v := range params {
		output[k] = resolveValue(data, v)
	}
	return output
}

func resolveValue(data map[string]any, v any) any {
	switch val := v.(type) {
	case string:
		return RenderTemplate(val, data)
	case map[string]any:
		return ResolveParams(data, val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(data, item)
		}
		return out
	default:
		return v
	}
}
