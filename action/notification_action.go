package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
)

var _ Action = new(notificationAction)

type notificationAction struct {
	baseAction
	sender gateway.NotificationSender
}

func NewNotificationAction(sender gateway.NotificationSender) *notificationAction {
	return &notificationAction{
		baseAction: baseAction{actType: model.ACTION_SEND_NOTIFICATION},
		sender:     sender,
	}
}

func (a *notificationAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	title, err := stringParam(params, "title")
	if err != nil {
		return "", err
	}
	message, err := stringParam(params, "message")
	if err != nil {
		return "", err
	}
	n := gateway.Notification{
		Title:   title,
		Message: message,
		Type:    optionalStringParam(params, "type"),
		Data:    event,
	}
	if err := a.sender.SendNotification(ctx, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("notification sent: %s", title), nil
}
