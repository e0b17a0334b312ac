package action

import (
	"context"
	"fmt"
	"time"

	"github.com/bakerhub/automation/analytics"
	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/util"
	"go.uber.org/zap"
)

const DefaultActionTimeout = 10 * time.Second

// Dispatcher executes a rule's action list in order against an event.
// Failures are contained per action: a missing handler, invalid parameters,
// a collaborator error, a panic or a timeout each become a failed
// ActionResult and never abort the remaining actions or reach the caller.
type Dispatcher struct {
	registry map[model.ActionType]Action
	timeout  time.Duration
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultActionTimeout
	}
	return &Dispatcher{
		registry: make(map[model.ActionType]Action),
		timeout:  timeout,
	}
}

// NewDefaultDispatcher wires the builtin actions against the given gateways.
func NewDefaultDispatcher(gw gateway.Gateways, timeout time.Duration) *Dispatcher {
	d := NewDispatcher(timeout)
	d.Register(NewNotificationAction(gw.Notifications))
	d.Register(NewReorderAction(gw.Procurement))
	d.Register(NewStatusAction(gw.Status))
	d.Register(NewWhatsAppAction(gw.WhatsApp))
	d.Register(NewTaskAction(gw.Tasks))
	return d
}

func (d *Dispatcher) Register(a Action) {
	d.registry[a.GetType()] = a
}

// Run returns one ActionResult per action spec, in list order.
func (d *Dispatcher) Run(ctx context.Context, r *model.Rule, event model.Event) []model.ActionResult {
	results := make([]model.ActionResult, 0, len(r.Actions))
	for _, spec := range r.Actions {
		result := d.runOne(ctx, spec, event)
		if result.Success {
			analytics.RecordActionSuccess(r.ID, r.Name, string(spec.Type), result.Message)
		} else {
			logger.Error("action failed", zap.String("rule", r.Name), zap.String("action", string(spec.Type)), zap.String("reason", result.Message))
			analytics.RecordActionFailure(r.ID, r.Name, string(spec.Type), result.Message)
		}
		results = append(results, result)
	}
	return results
}

type outcome struct {
	message string
	err     error
}

func (d *Dispatcher) runOne(ctx context.Context, spec model.ActionSpec, event model.Event) model.ActionResult {
	handler, ok := d.registry[spec.Type]
	if !ok {
		return failure(spec.Type, fmt.Sprintf("Unknown action type: %s", spec.Type))
	}
	params := util.ResolveParams(event, spec.Parameters)

	actx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("action panicked: %v", r)}
			}
		}()
		message, err := handler.Execute(actx, params, event)
		ch <- outcome{message: message, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			return failure(spec.Type, out.err.Error())
		}
		return success(spec.Type, out.message)
	case <-actx.Done():
		return failure(spec.Type, fmt.Sprintf("action %s timed out after %s", spec.Type, d.timeout))
	}
}

func success(actType model.ActionType, message string) model.ActionResult {
	return model.ActionResult{
		ActionType: actType,
		Success:    true,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

func failure(actType model.ActionType, message string) model.ActionResult {
	return model.ActionResult{
		ActionType: actType,
		Success:    false,
		Message:    message,
		Timestamp:  time.Now(),
	}
}
