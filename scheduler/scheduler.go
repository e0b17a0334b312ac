package scheduler

import (
	"strings"
	"sync"
	"time"

	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/util"
)

// Scheduler periodically injects schedule events into the engine's event
// queue so rules with a schedule trigger fire without an external caller.
type Scheduler struct {
	tw   *util.TickWorker
	sink chan<- model.Event
}

func New(interval time.Duration, sink chan<- model.Event, wg *sync.WaitGroup) *Scheduler {
	s := &Scheduler{sink: sink}
	s.tw = util.NewTickWorker("schedule-trigger", interval, s.emit, wg)
	return s
}

func (s *Scheduler) Start() {
	s.tw.Start()
}

func (s *Scheduler) Stop() {
	s.tw.Stop()
}

func (s *Scheduler) emit() {
	now := time.Now()
	event := model.Event{
		model.EventTypeKey: string(model.TRIGGER_SCHEDULE),
		"scheduled_at":     now.Format(time.RFC3339),
		"hour":             now.Hour(),
		"minute":           now.Minute(),
		"weekday":          strings.ToLower(now.Weekday().String()),
	}
	select {
	case s.sink <- event:
	default:
		logger.Warn("schedule event dropped, event queue is full")
	}
}
