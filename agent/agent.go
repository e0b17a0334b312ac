package agent

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bakerhub/automation/action"
	"github.com/bakerhub/automation/analytics"
	"github.com/bakerhub/automation/config"
	"github.com/bakerhub/automation/engine"
	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/history"
	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/rest"
	"github.com/bakerhub/automation/rule"
	"github.com/bakerhub/automation/scheduler"
	"github.com/bakerhub/automation/util"
	"go.uber.org/zap"
)

// Agent wires the automation engine's components and controls their
// lifecycle.
type Agent struct {
	Config       config.Config
	store        rule.Store
	dispatcher   *action.Dispatcher
	history      *history.ExecutionHistory
	engine       *engine.WorkflowEngine
	eventWorker  *util.EventWorker
	scheduler    *scheduler.Scheduler
	httpServer   *rest.Server
	shutdown     bool
	shutdownLock sync.Mutex
	wg           sync.WaitGroup
}

func New(cfg config.Config) (*Agent, error) {
	a := &Agent{
		Config: cfg,
	}
	setup := []func() error{
		a.setupAnalytics,
		a.setupEngine,
		a.setupEventWorker,
		a.setupScheduler,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupAnalytics() error {
	return analytics.InitDataCollector(a.Config.AnalyticsConfig)
}

func (a *Agent) setupEngine() error {
	gatewayTimeout := time.Duration(a.Config.Gateway.TimeoutSeconds) * time.Second
	if gatewayTimeout <= 0 {
		gatewayTimeout = 5 * time.Second
	}
	gateways := gateway.NewLogGateways()
	if a.Config.Gateway.NotificationURL != "" {
		gateways.Notifications = gateway.NewHTTPNotificationSender(a.Config.Gateway.NotificationURL, gatewayTimeout)
	}
	if a.Config.Gateway.WhatsAppURL != "" {
		gateways.WhatsApp = gateway.NewHTTPWhatsAppSender(a.Config.Gateway.WhatsAppURL, gatewayTimeout)
	}
	a.store = rule.NewInMemoryStore()
	a.dispatcher = action.NewDefaultDispatcher(gateways, time.Duration(a.Config.ActionTimeoutSeconds)*time.Second)
	a.history = history.NewExecutionHistory()
	a.engine = engine.NewWorkflowEngine(a.store, a.dispatcher, a.history)
	return nil
}

func (a *Agent) setupEventWorker() error {
	capacity := a.Config.EventQueueCapacity
	if capacity <= 0 {
		capacity = 256
	}
	a.eventWorker = util.NewEventWorker("event-worker", &a.wg, func(event model.Event) error {
		report, err := a.engine.ProcessEvent(context.Background(), event)
		if err != nil {
			return err
		}
		if report.TotalExecuted > 0 {
			logger.Info("processed queued event", zap.String("eventType", event.Type()), zap.Int("rulesExecuted", report.TotalExecuted))
		}
		return nil
	}, capacity)
	return nil
}

func (a *Agent) setupScheduler() error {
	if !a.Config.Scheduler.Enabled {
		return nil
	}
	interval := time.Duration(a.Config.Scheduler.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	a.scheduler = scheduler.New(interval, a.eventWorker.Sender(), &a.wg)
	return nil
}

func (a *Agent) setupHttpServer() error {
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.store, a.engine)
	if err != nil {
		return err
	}
	return nil
}

func (a *Agent) Start() error {
	a.eventWorker.Start()
	if a.scheduler != nil {
		a.scheduler.Start()
	}
	go func() {
		if err := a.httpServer.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", zap.Error(err))
		}
	}()
	return nil
}

func (a *Agent) Shutdown() error {
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	a.shutdown = true
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	a.eventWorker.Stop()
	if err := a.httpServer.Stop(); err != nil {
		return err
	}
	a.wg.Wait()
	logger.Sync()
	return nil
}
