package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/util"
)

var _ Action = new(statusAction)

type statusAction struct {
	baseAction
	updater gateway.StatusUpdater
}

func NewStatusAction(updater gateway.StatusUpdater) *statusAction {
	return &statusAction{
		baseAction: baseAction{actType: model.ACTION_UPDATE_STATUS},
		updater:    updater,
	}
}

// The entity whose status changes is identified by the event, not the rule:
// entity_id is read from the event payload at dispatch time.
func (a *statusAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	newStatus, err := stringParam(params, "new_status")
	if err != nil {
		return "", err
	}
	v, ok := util.ResolvePath(event, "entity_id")
	if !ok {
		return "", fmt.Errorf("event carries no entity_id")
	}
	entityId := fmt.Sprintf("%v", v)
	if err := a.updater.UpdateStatus(ctx, entityId, newStatus); err != nil {
		return "", err
	}
	return fmt.Sprintf("status of %s updated to %s", entityId, newStatus), nil
}
