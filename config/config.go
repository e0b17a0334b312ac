package config

import "github.com/bakerhub/automation/analytics"

type Config struct {
	HttpPort             int
	ActionTimeoutSeconds int
	EventQueueCapacity   int
	Scheduler            SchedulerConfig
	Gateway              GatewayConfig
	AnalyticsConfig      analytics.DataCollectorConfig
}

// SchedulerConfig controls the periodic schedule-event feed. When disabled,
// rules with a schedule trigger only fire for externally submitted events.
type SchedulerConfig struct {
	Enabled         bool
	IntervalSeconds int
}

// GatewayConfig points the notification and whatsapp actions at their
// services. An empty URL falls back to the logging gateway.
type GatewayConfig struct {
	NotificationURL string
	WhatsAppURL     string
	TimeoutSeconds  int
}
