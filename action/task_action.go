package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
)

var _ Action = new(taskAction)

type taskAction struct {
	baseAction
	tasks gateway.TaskCreator
}

func NewTaskAction(tasks gateway.TaskCreator) *taskAction {
	return &taskAction{
		baseAction: baseAction{actType: model.ACTION_CREATE_TASK},
		tasks:      tasks,
	}
}

func (a *taskAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	title, err := stringParam(params, "title")
	if err != nil {
		return "", err
	}
	task := gateway.Task{
		Title:       title,
		Description: optionalStringParam(params, "description"),
	}
	if err := a.tasks.CreateTask(ctx, task); err != nil {
		return "", err
	}
	return fmt.Sprintf("task created: %s", title), nil
}
