package history

import (
	"sync"

	"github.com/bakerhub/automation/model"
)

// ExecutionHistory is an append-only, unbounded log of rule firings. Entries
// may interleave across concurrent events but are never overwritten.
type ExecutionHistory struct {
	mu      sync.RWMutex
	records []model.ExecutionRecord
}

func NewExecutionHistory() *ExecutionHistory {
	return &ExecutionHistory{}
}

func (h *ExecutionHistory) Append(record model.ExecutionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
}

func (h *ExecutionHistory) All() []model.ExecutionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]model.ExecutionRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *ExecutionHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
