package engine

import (
	"context"
	"errors"
	"time"

	"github.com/bakerhub/automation/action"
	"github.com/bakerhub/automation/history"
	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/rule"
	"go.uber.org/zap"
)

var ErrMissingEventType = errors.New("event has no event_type")

// WorkflowEngine matches events against the enabled rules and dispatches the
// configured actions, recording every firing.
type WorkflowEngine struct {
	store      rule.Store
	dispatcher *action.Dispatcher
	history    *history.ExecutionHistory
}

func NewWorkflowEngine(store rule.Store, dispatcher *action.Dispatcher, hist *history.ExecutionHistory) *WorkflowEngine {
	return &WorkflowEngine{
		store:      store,
		dispatcher: dispatcher,
		history:    hist,
	}
}

// ProcessEvent evaluates the enabled rules in registration order and runs the
// actions of every rule that matches. Per-rule and per-action problems are
// reported inside the returned report, never as an error; the only error is
// the caller contract violation of an event without an event_type.
func (e *WorkflowEngine) ProcessEvent(ctx context.Context, event model.Event) (*model.ExecutionReport, error) {
	if event.Type() == "" {
		return nil, ErrMissingEventType
	}
	report := &model.ExecutionReport{
		Success:       true,
		ExecutedRules: []model.RuleExecution{},
	}
	for _, r := range e.store.ListEnabled() {
		if !Matches(r.Trigger, event) {
			continue
		}
		logger.Info("rule matched", zap.String("rule", r.Name), zap.String("ruleId", r.ID), zap.String("eventType", event.Type()))
		results := e.dispatcher.Run(ctx, r, event)
		if err := e.store.RecordExecution(r.ID); err != nil {
			logger.Error("error recording execution", zap.String("ruleId", r.ID), zap.Error(err))
		}
		e.history.Append(model.ExecutionRecord{
			RuleID:        r.ID,
			Event:         event.Copy(),
			ActionResults: results,
			Timestamp:     time.Now(),
		})
		success := true
		for _, res := range results {
			if !res.Success {
				success = false
				break
			}
		}
		report.ExecutedRules = append(report.ExecutedRules, model.RuleExecution{
			RuleID:        r.ID,
			RuleName:      r.Name,
			ActionResults: results,
			Success:       success,
		})
	}
	report.TotalExecuted = len(report.ExecutedRules)
	return report, nil
}

func (e *WorkflowEngine) History() *history.ExecutionHistory {
	return e.history
}
