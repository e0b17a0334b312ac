package engine

import (
	"testing"

	"github.com/bakerhub/automation/model"
	"github.com/stretchr/testify/require"
)

func TestMatchesTriggerType(t *testing.T) {
	trigger := model.Trigger{Type: "inventory_low"}

	require.True(t, Matches(trigger, model.Event{"event_type": "inventory_low"}))
	require.False(t, Matches(trigger, model.Event{"event_type": "new_order"}))
	require.False(t, Matches(trigger, model.Event{"event_type": "Inventory_Low"}))
	require.False(t, Matches(trigger, model.Event{}))
}

func TestMatchesConditions(t *testing.T) {
	tests := []struct {
		name       string
		conditions map[string]any
		event      model.Event
		want       bool
	}{
		{
			"min suffix at boundary",
			map[string]any{"stock_min": 10},
			model.Event{"event_type": "inventory_low", "stock_min": 10},
			true,
		},
		{
			"min suffix above",
			map[string]any{"stock_min": 10},
			model.Event{"event_type": "inventory_low", "stock_min": 11},
			true,
		},
		{
			"min suffix below",
			map[string]any{"stock_min": 10},
			model.Event{"event_type": "inventory_low", "stock_min": 9},
			false,
		},
		{
			"max suffix below",
			map[string]any{"amount_max": 100.0},
			model.Event{"event_type": "inventory_low", "amount_max": 99.5},
			true,
		},
		{
			"max suffix above",
			map[string]any{"amount_max": 100.0},
			model.Event{"event_type": "inventory_low", "amount_max": 100.5},
			false,
		},
		{
			"threshold matches below",
			map[string]any{"threshold": 10},
			model.Event{"event_type": "inventory_low", "threshold": 5},
			true,
		},
		{
			"threshold fails at equal",
			map[string]any{"threshold": 10},
			model.Event{"event_type": "inventory_low", "threshold": 10},
			false,
		},
		{
			"threshold absent never matches",
			map[string]any{"threshold": 10},
			model.Event{"event_type": "inventory_low", "material_id": "flour_001"},
			false,
		},
		{
			"string comparison is case insensitive",
			map[string]any{"payment_status": "paid"},
			model.Event{"event_type": "inventory_low", "payment_status": "PAID"},
			true,
		},
		{
			"string comparison mismatch",
			map[string]any{"payment_status": "paid"},
			model.Event{"event_type": "inventory_low", "payment_status": "pending"},
			false,
		},
		{
			"numeric equality across types",
			map[string]any{"quantity": 50},
			model.Event{"event_type": "inventory_low", "quantity": 50.0},
			true,
		},
		{
			"numeric inequality",
			map[string]any{"quantity": 50},
			model.Event{"event_type": "inventory_low", "quantity": 49},
			false,
		},
		{
			"nested condition path",
			map[string]any{"customer.tier": "gold"},
			model.Event{"event_type": "inventory_low", "customer": map[string]any{"tier": "gold"}},
			true,
		},
		{
			"absent path never matches",
			map[string]any{"material_id": "flour_001"},
			model.Event{"event_type": "inventory_low"},
			false,
		},
		{
			"structural equality",
			map[string]any{"urgent": true},
			model.Event{"event_type": "inventory_low", "urgent": true},
			true,
		},
		{
			"conditions are conjunctive",
			map[string]any{"material_id": "flour_001", "stock_min": 10},
			model.Event{"event_type": "inventory_low", "material_id": "flour_001", "stock_min": 5},
			false,
		},
		{
			"all conditions hold",
			map[string]any{"material_id": "flour_001", "stock_max": 10},
			model.Event{"event_type": "inventory_low", "material_id": "flour_001", "stock_max": 5},
			true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trigger := model.Trigger{Type: "inventory_low", Conditions: tc.conditions}
			require.Equal(t, tc.want, Matches(trigger, tc.event))
		})
	}
}
