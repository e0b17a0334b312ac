package engine

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/util"
)

// Matches reports whether a trigger fires for an event. The trigger type must
// equal the event's type exactly; every condition pair must then hold.
func Matches(trigger model.Trigger, event model.Event) bool {
	if trigger.Type != event.Type() {
		return false
	}
	for key, expected := range trigger.Conditions {
		if !conditionHolds(key, expected, event) {
			return false
		}
	}
	return true
}

// Condition semantics, in priority order: a key ending in _min requires
// actual >= expected, _max requires actual <= expected, the key "threshold"
// requires actual < expected; otherwise a string expectation compares the
// string forms case-insensitively, a numeric one compares numerically, and
// anything else compares structurally. A condition whose key resolves to an
// absent path never matches.
func conditionHolds(key string, expected any, event model.Event) bool {
	actual, present := util.ResolvePath(event, key)
	if !present {
		return false
	}
	switch {
	case strings.HasSuffix(key, "_min"):
		return compareNumbers(actual, expected, func(a, b float64) bool { return a >= b })
	case strings.HasSuffix(key, "_max"):
		return compareNumbers(actual, expected, func(a, b float64) bool { return a <= b })
	case key == "threshold":
		return compareNumbers(actual, expected, func(a, b float64) bool { return a < b })
	}
	if exp, ok := expected.(string); ok {
		return strings.EqualFold(fmt.Sprintf("%v", actual), exp)
	}
	if expNum, ok := util.ToNumber(expected); ok {
		actNum, ok := util.ToNumber(actual)
		return ok && actNum == expNum
	}
	return reflect.DeepEqual(actual, expected)
}

func compareNumbers(actual, expected any, cmp func(a, b float64) bool) bool {
	a, ok := util.ToNumber(actual)
	if !ok {
		return false
	}
	b, ok := util.ToNumber(expected)
	if !ok {
		return false
	}
	return cmp(a, b)
}
