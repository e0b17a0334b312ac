package util

import (
	"sync"

	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"go.uber.org/zap"
)

// EventWorker drains a buffered channel of events and hands each one to the
// configured handler. It decouples event producers, like the scheduler, from
// synchronous engine processing.
type EventWorker struct {
	name      string
	stop      chan struct{}
	wg        *sync.WaitGroup
	handler   func(model.Event) error
	eventChan chan model.Event
}

func NewEventWorker(name string, wg *sync.WaitGroup, handler func(model.Event) error, capacity int) *EventWorker {
	return &EventWorker{
		name:      name,
		stop:      make(chan struct{}),
		wg:        wg,
		handler:   handler,
		eventChan: make(chan model.Event, capacity),
	}
}

func (w *EventWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event := <-w.eventChan:
				if err := w.handler(event); err != nil {
					logger.Error("error handling event in worker", zap.String("worker", w.name), zap.String("eventType", event.Type()), zap.Error(err))
				}
			case <-w.stop:
				logger.Info("stopping event worker", zap.String("worker", w.name))
				return
			}
		}
	}()
}

func (w *EventWorker) Sender() chan<- model.Event {
	return w.eventChan
}

func (w *EventWorker) Stop() {
	w.stop <- struct{}{}
}
