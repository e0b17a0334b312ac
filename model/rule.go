package model

import "time"

type TriggerType string

const TRIGGER_INVENTORY_LOW TriggerType = "inventory_low"
const TRIGGER_NEW_ORDER TriggerType = "new_order"
const TRIGGER_PAYMENT_RECEIVED TriggerType = "payment_received"
const TRIGGER_PRODUCTION_COMPLETE TriggerType = "production_complete"
const TRIGGER_SCHEDULE TriggerType = "schedule"

type ActionType string

const ACTION_SEND_NOTIFICATION ActionType = "send_notification"
const ACTION_REORDER_INVENTORY ActionType = "reorder_inventory"
const ACTION_UPDATE_STATUS ActionType = "update_status"
const ACTION_SEND_WHATSAPP ActionType = "send_whatsapp"
const ACTION_CREATE_TASK ActionType = "create_task"

// Trigger decides whether a rule fires for an event. Type must equal the
// event's event_type; Conditions are conjunctive key/expected pairs.
type Trigger struct {
	Type       string         `json:"type"`
	Conditions map[string]any `json:"conditions"`
}

// ActionSpec is one entry of a rule's ordered action list. String parameter
// values may embed {{dotted.path}} placeholders resolved against the event.
type ActionSpec struct {
	Type       ActionType     `json:"type"`
	Parameters map[string]any `json:"parameters"`
}

// RuleSpec is the caller-supplied part of a rule, accepted as-is at
// registration. Malformed triggers or actions surface later as per-action
// failures, never as a rejected registration.
type RuleSpec struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Trigger     Trigger      `json:"trigger"`
	Actions     []ActionSpec `json:"actions"`
	Enabled     bool         `json:"enabled"`
}

// Rule is a registered automation rule. Identity and execution counters are
// owned by the store; the engine updates counters after each firing.
type Rule struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	Trigger        Trigger      `json:"trigger"`
	Actions        []ActionSpec `json:"actions"`
	Enabled        bool         `json:"enabled"`
	CreatedAt      time.Time    `json:"created_at"`
	ExecutionCount int          `json:"execution_count"`
	LastExecuted   *time.Time   `json:"last_executed,omitempty"`
}
