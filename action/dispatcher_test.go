package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
	"github.com/stretchr/testify/require"
)

type stubAction struct {
	baseAction
	message string
	err     error
	block   bool
	panics  bool
	calls   *[]model.ActionType
}

func (a *stubAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	if a.calls != nil {
		*a.calls = append(*a.calls, a.actType)
	}
	if a.panics {
		panic("boom")
	}
	if a.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return a.message, a.err
}

func ruleWith(actions ...model.ActionSpec) *model.Rule {
	return &model.Rule{ID: "rule-1", Name: "test rule", Actions: actions}
}

func TestDispatcherIsolatesFailures(t *testing.T) {
	var calls []model.ActionType
	d := NewDispatcher(0)
	d.Register(&stubAction{baseAction: baseAction{actType: "failing"}, err: errors.New("collaborator unavailable"), calls: &calls})
	d.Register(&stubAction{baseAction: baseAction{actType: "working"}, message: "done", calls: &calls})

	results := d.Run(context.Background(), ruleWith(
		model.ActionSpec{Type: "failing"},
		model.ActionSpec{Type: "working"},
	), model.Event{"event_type": "new_order"})

	require.Len(t, results, 2)
	require.False(t, results[0].Success)
	require.Equal(t, "collaborator unavailable", results[0].Message)
	require.True(t, results[1].Success)
	require.Equal(t, "done", results[1].Message)
	require.Equal(t, []model.ActionType{"failing", "working"}, calls)
}

func TestDispatcherUnknownActionType(t *testing.T) {
	d := NewDispatcher(0)
	d.Register(&stubAction{baseAction: baseAction{actType: "working"}, message: "done"})

	results := d.Run(context.Background(), ruleWith(
		model.ActionSpec{Type: "teleport"},
		model.ActionSpec{Type: "working"},
	), model.Event{"event_type": "new_order"})

	require.Len(t, results, 2)
	require.False(t, results[0].Success)
	require.Equal(t, "Unknown action type: teleport", results[0].Message)
	require.True(t, results[1].Success)
}

func TestDispatcherTimesOutSlowActions(t *testing.T) {
	d := NewDispatcher(50 * time.Millisecond)
	d.Register(&stubAction{baseAction: baseAction{actType: "slow"}, block: true})
	d.Register(&stubAction{baseAction: baseAction{actType: "working"}, message: "done"})

	results := d.Run(context.Background(), ruleWith(
		model.ActionSpec{Type: "slow"},
		model.ActionSpec{Type: "working"},
	), model.Event{"event_type": "new_order"})

	require.Len(t, results, 2)
	require.False(t, results[0].Success)
	require.Contains(t, results[0].Message, "timed out")
	require.True(t, results[1].Success)
}

func TestDispatcherRecoversFromPanics(t *testing.T) {
	d := NewDispatcher(0)
	d.Register(&stubAction{baseAction: baseAction{actType: "panicky"}, panics: true})

	results := d.Run(context.Background(), ruleWith(model.ActionSpec{Type: "panicky"}), model.Event{"event_type": "new_order"})

	require.Len(t, results, 1)
	require.False(t, results[0].Success)
	require.Contains(t, results[0].Message, "panicked")
}

type captureGateway struct {
	notifications []gateway.Notification
	messages      []string
	phones        []string
	orders        []gateway.PurchaseOrder
}

func (c *captureGateway) SendNotification(ctx context.Context, n gateway.Notification) error {
	c.notifications = append(c.notifications, n)
	return nil
}

func (c *captureGateway) SendMessage(ctx context.Context, phone string, message string) error {
	c.phones = append(c.phones, phone)
	c.messages = append(c.messages, message)
	return nil
}

func (c *captureGateway) CreatePurchaseOrder(ctx context.Context, order gateway.PurchaseOrder) error {
	c.orders = append(c.orders, order)
	return nil
}

func TestDispatcherResolvesTemplateParameters(t *testing.T) {
	capture := &captureGateway{}
	gateways := gateway.NewLogGateways()
	gateways.Notifications = capture
	gateways.WhatsApp = capture
	d := NewDefaultDispatcher(gateways, 0)

	event := model.Event{
		"event_type": "new_order",
		"order":      map[string]any{"id": "ord_42"},
		"customer":   map[string]any{"phone": "+549112233"},
	}
	results := d.Run(context.Background(), ruleWith(
		model.ActionSpec{Type: model.ACTION_SEND_NOTIFICATION, Parameters: map[string]any{
			"title":   "Order {{order.id}}",
			"message": "placed by {{customer.phone}}",
		}},
		model.ActionSpec{Type: model.ACTION_SEND_WHATSAPP, Parameters: map[string]any{
			"customer_phone": "{{customer.phone}}",
			"template":       "order {{order.id}} confirmed",
		}},
	), event)

	require.Len(t, results, 2)
	require.True(t, results[0].Success)
	require.True(t, results[1].Success)

	require.Len(t, capture.notifications, 1)
	require.Equal(t, "Order ord_42", capture.notifications[0].Title)
	require.Equal(t, "placed by +549112233", capture.notifications[0].Message)

	require.Equal(t, []string{"+549112233"}, capture.phones)
	require.Equal(t, []string{"order ord_42 confirmed"}, capture.messages)
}

func TestDispatcherReportsInvalidParameters(t *testing.T) {
	d := NewDefaultDispatcher(gateway.NewLogGateways(), 0)

	results := d.Run(context.Background(), ruleWith(
		model.ActionSpec{Type: model.ACTION_REORDER_INVENTORY, Parameters: map[string]any{
			"material_id": "flour_001",
			"quantity":    "lots",
			"supplier_id": "s1",
		}},
	), model.Event{"event_type": "inventory_low"})

	require.Len(t, results, 1)
	require.False(t, results[0].Success)
	require.Contains(t, results[0].Message, "quantity")
}
