package model

const EventTypeKey = "event_type"

// Event is the payload handed to ProcessEvent. It must carry an event_type
// field; everything else is domain data consumed by condition evaluation and
// template substitution.
type Event map[string]any

func (e Event) Type() string {
	t, _ := e[EventTypeKey].(string)
	return t
}

// Copy returns a value copy of the event, deep enough that nested maps and
// lists are not shared with the original. History entries keep such copies so
// later callers cannot rewrite recorded events.
func (e Event) Copy() Event {
	if e == nil {
		return nil
	}
	return Event(copyMap(e))
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
