package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/util"
)

// Action is one entry of the dispatcher's registry. Execute receives the
// rule's parameters with template placeholders already resolved, plus the
// full event for handlers that read context fields directly. It returns a
// human-readable message on success; any returned error is converted by the
// dispatcher into a failed ActionResult and never propagates further.
type Action interface {
	GetType() model.ActionType
	Execute(ctx context.Context, params map[string]any, event model.Event) (string, error)
}

type baseAction struct {
	actType model.ActionType
}

func (ba baseAction) GetType() model.ActionType {
	return ba.actType
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing parameter %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string", key)
	}
	return s, nil
}

func optionalStringParam(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

func numberParam(params map[string]any, key string) (float64, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing parameter %s", key)
	}
	n, ok := util.ToNumber(v)
	if !ok {
		return 0, fmt.Errorf("parameter %s must be a number", key)
	}
	return n, nil
}
