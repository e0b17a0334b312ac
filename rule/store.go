package rule

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bakerhub/automation/model"
	"github.com/google/uuid"
)

var ErrRuleNotFound = errors.New("rule not found")

// Store owns the ordered collection of registered rules. Registration order
// is the tie-break for evaluation and history ordering when several rules
// fire from one event.
type Store interface {
	Register(spec model.RuleSpec) (*model.Rule, error)
	Get(id string) (*model.Rule, error)
	List() []*model.Rule
	ListEnabled() []*model.Rule
	Update(id string, spec model.RuleSpec) (*model.Rule, error)
	Delete(id string) error
	RecordExecution(id string) error
}

type InMemoryStore struct {
	mu    sync.RWMutex
	rules []*model.Rule
	index map[string]*model.Rule
}

var _ Store = new(InMemoryStore)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		index: make(map[string]*model.Rule),
	}
}

// Register assigns a fresh id, stamps creation time and appends the rule.
// The spec is accepted as-is: malformed triggers or actions surface later as
// per-action failures, never as a rejected registration.
func (s *InMemoryStore) Register(spec model.RuleSpec) (*model.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &model.Rule{
		ID:          uuid.NewString(),
		Name:        spec.Name,
		Description: spec.Description,
		Trigger:     spec.Trigger,
		Actions:     spec.Actions,
		Enabled:     spec.Enabled,
		CreatedAt:   time.Now(),
	}
	s.rules = append(s.rules, r)
	s.index[r.ID] = r
	return copyRule(r), nil
}

func (s *InMemoryStore) Get(id string) (*model.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	return copyRule(r), nil
}

func (s *InMemoryStore) List() []*model.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Rule, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, copyRule(r))
	}
	return out
}

// ListEnabled returns enabled rules in registration order.
func (s *InMemoryStore) ListEnabled() []*model.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.Enabled {
			out = append(out, copyRule(r))
		}
	}
	return out
}

// Update overwrites the caller-supplied fields of an existing rule, keeping
// its id, creation time and execution statistics.
func (s *InMemoryStore) Update(id string, spec model.RuleSpec) (*model.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	r.Name = spec.Name
	r.Description = spec.Description
	r.Trigger = spec.Trigger
	r.Actions = spec.Actions
	r.Enabled = spec.Enabled
	return copyRule(r), nil
}

func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	delete(s.index, id)
	for i, r := range s.rules {
		if r.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			break
		}
	}
	return nil
}

// RecordExecution increments the execution counter and stamps last_executed.
// Each firing counts; calling twice double-counts.
func (s *InMemoryStore) RecordExecution(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	now := time.Now()
	r.ExecutionCount++
	r.LastExecuted = &now
	return nil
}

func copyRule(r *model.Rule) *model.Rule {
	cp := *r
	cp.Actions = append([]model.ActionSpec(nil), r.Actions...)
	if r.LastExecuted != nil {
		t := *r.LastExecuted
		cp.LastExecuted = &t
	}
	return &cp
}
