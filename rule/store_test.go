package rule

import (
	"testing"

	"github.com/bakerhub/automation/model"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T, store *InMemoryStore){
		"register assigns fresh ids":            testRegister,
		"list enabled keeps registration order": testListEnabled,
		"record execution counts every firing":  testRecordExecution,
		"update keeps identity and stats":       testUpdate,
		"delete removes the rule":               testDelete,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t, NewInMemoryStore())
		})
	}
}

func spec(name string, enabled bool) model.RuleSpec {
	return model.RuleSpec{
		Name:    name,
		Trigger: model.Trigger{Type: "inventory_low", Conditions: map[string]any{"material_id": "flour_001"}},
		Actions: []model.ActionSpec{
			{Type: model.ACTION_SEND_NOTIFICATION, Parameters: map[string]any{"title": "t", "message": "m"}},
		},
		Enabled: enabled,
	}
}

func testRegister(t *testing.T, store *InMemoryStore) {
	first, err := store.Register(spec("first", true))
	require.NoError(t, err)
	second, err := store.Register(spec("second", true))
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	require.Zero(t, first.ExecutionCount)
	require.Nil(t, first.LastExecuted)
	require.False(t, first.CreatedAt.IsZero())

	got, err := store.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "first", got.Name)

	_, err = store.Get("nope")
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func testListEnabled(t *testing.T, store *InMemoryStore) {
	a, _ := store.Register(spec("a", true))
	store.Register(spec("b", false))
	c, _ := store.Register(spec("c", true))

	enabled := store.ListEnabled()
	require.Len(t, enabled, 2)
	require.Equal(t, a.ID, enabled[0].ID)
	require.Equal(t, c.ID, enabled[1].ID)

	require.Len(t, store.List(), 3)
}

func testRecordExecution(t *testing.T, store *InMemoryStore) {
	r, _ := store.Register(spec("counted", true))

	require.NoError(t, store.RecordExecution(r.ID))
	require.NoError(t, store.RecordExecution(r.ID))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.ExecutionCount)
	require.NotNil(t, got.LastExecuted)

	require.ErrorIs(t, store.RecordExecution("nope"), ErrRuleNotFound)
}

func testUpdate(t *testing.T, store *InMemoryStore) {
	r, _ := store.Register(spec("before", true))
	require.NoError(t, store.RecordExecution(r.ID))

	updated, err := store.Update(r.ID, spec("after", false))
	require.NoError(t, err)
	require.Equal(t, r.ID, updated.ID)
	require.Equal(t, "after", updated.Name)
	require.False(t, updated.Enabled)
	require.Equal(t, 1, updated.ExecutionCount)
	require.Equal(t, r.CreatedAt, updated.CreatedAt)

	_, err = store.Update("nope", spec("x", true))
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func testDelete(t *testing.T, store *InMemoryStore) {
	r, _ := store.Register(spec("doomed", true))
	keep, _ := store.Register(spec("kept", true))

	require.NoError(t, store.Delete(r.ID))
	require.ErrorIs(t, store.Delete(r.ID), ErrRuleNotFound)

	rules := store.List()
	require.Len(t, rules, 1)
	require.Equal(t, keep.ID, rules[0].ID)
}
