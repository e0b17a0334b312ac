package model

import "time"

// ActionResult is the outcome of a single dispatched action.
type ActionResult struct {
	ActionType ActionType `json:"action_type"`
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Timestamp  time.Time  `json:"timestamp"`
}

// RuleExecution is one rule's outcome inside a ProcessEvent report. Success
// is the AND over all action results.
type RuleExecution struct {
	RuleID        string         `json:"rule_id"`
	RuleName      string         `json:"rule_name"`
	ActionResults []ActionResult `json:"action_results"`
	Success       bool           `json:"success"`
}

// ExecutionReport is the aggregated result of processing one event.
type ExecutionReport struct {
	Success       bool            `json:"success"`
	ExecutedRules []RuleExecution `json:"executed_rules"`
	TotalExecuted int             `json:"total_executed"`
}

// ExecutionRecord is one append-only history entry, written once per rule
// that fired for an event.
type ExecutionRecord struct {
	RuleID        string         `json:"rule_id"`
	Event         Event          `json:"event"`
	ActionResults []ActionResult `json:"action_results"`
	Timestamp     time.Time      `json:"timestamp"`
}
