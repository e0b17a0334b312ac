package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
)

var _ Action = new(whatsappAction)

type whatsappAction struct {
	baseAction
	sender gateway.WhatsAppSender
}

func NewWhatsAppAction(sender gateway.WhatsAppSender) *whatsappAction {
	return &whatsappAction{
		baseAction: baseAction{actType: model.ACTION_SEND_WHATSAPP},
		sender:     sender,
	}
}

func (a *whatsappAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	phone, err := stringParam(params, "customer_phone")
	if err != nil {
		return "", err
	}
	message, err := stringParam(params, "template")
	if err != nil {
		return "", err
	}
	if err := a.sender.SendMessage(ctx, phone, message); err != nil {
		return "", err
	}
	return fmt.Sprintf("whatsapp message sent to %s", phone), nil
}
