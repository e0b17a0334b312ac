package util

import (
	"sync"
	"time"

	"github.com/bakerhub/automation/logger"
	"go.uber.org/zap"
)

// TickWorker runs fn on a fixed interval until stopped.
type TickWorker struct {
	name         string
	tickInterval time.Duration
	stop         chan struct{}
	wg           *sync.WaitGroup
	fn           func()
	running      bool
}

func NewTickWorker(name string, interval time.Duration, fn func(), wg *sync.WaitGroup) *TickWorker {
	return &TickWorker{
		name:         name,
		tickInterval: interval,
		stop:         make(chan struct{}),
		wg:           wg,
		fn:           fn,
	}
}

func (tw *TickWorker) Start() {
	if tw.running {
		return
	}
	ticker := time.NewTicker(tw.tickInterval)
	tw.wg.Add(1)
	go func() {
		defer tw.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				tw.fn()
			case <-tw.stop:
				logger.Info("stopping tick worker", zap.String("worker", tw.name))
				tw.running = false
				return
			}
		}
	}()
	tw.running = true
	logger.Info("tick worker started", zap.String("worker", tw.name), zap.Duration("interval", tw.tickInterval))
}

func (tw *TickWorker) Stop() {
	if !tw.running {
		return
	}
	tw.stop <- struct{}{}
}

func (tw *TickWorker) IsRunning() bool {
	return tw.running
}
