package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bakerhub/automation/agent"
	"github.com/bakerhub/automation/analytics"
	"github.com/bakerhub/automation/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cli struct {
	cfg config.Config
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("config-file", "", "Path to config file.")
	cmd.Flags().Int("http-port", 8080, "http port for rest endpoints")
	cmd.Flags().Int("action-timeout", 10, "per-action execution timeout in seconds")
	cmd.Flags().Int("event-queue-capacity", 256, "capacity of the async event queue")
	cmd.Flags().Bool("schedule-enabled", false, "periodically emit schedule events")
	cmd.Flags().Int("schedule-interval", 60, "interval between schedule events in seconds")
	cmd.Flags().String("notification-url", "", "notification service endpoint, logs locally when empty")
	cmd.Flags().String("whatsapp-url", "", "whatsapp gateway endpoint, logs locally when empty")
	cmd.Flags().Int("gateway-timeout", 5, "gateway http timeout in seconds")
	cmd.Flags().String("audit-file", "", "file receiving per-action audit records, disabled when empty")
	return viper.BindPFlags(cmd.Flags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	viper.SetConfigFile(configFile)

	if err = viper.ReadInConfig(); err != nil {
		// it's ok if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	c.cfg.HttpPort = viper.GetInt("http-port")
	c.cfg.ActionTimeoutSeconds = viper.GetInt("action-timeout")
	c.cfg.EventQueueCapacity = viper.GetInt("event-queue-capacity")
	c.cfg.Scheduler.Enabled = viper.GetBool("schedule-enabled")
	c.cfg.Scheduler.IntervalSeconds = viper.GetInt("schedule-interval")
	c.cfg.Gateway.NotificationURL = viper.GetString("notification-url")
	c.cfg.Gateway.WhatsAppURL = viper.GetString("whatsapp-url")
	c.cfg.Gateway.TimeoutSeconds = viper.GetInt("gateway-timeout")
	if auditFile := viper.GetString("audit-file"); auditFile != "" {
		c.cfg.AnalyticsConfig = analytics.DataCollectorConfig{
			FileName:      auditFile,
			CollectorType: analytics.LOG_FILE_DATA_COLLECTOR,
		}
	}
	return nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	a, err := agent.New(c.cfg)
	if err != nil {
		return err
	}
	if err := a.Start(); err != nil {
		return err
	}
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	return a.Shutdown()
}

func main() {
	c := &cli{}

	cmd := &cobra.Command{
		Use:     "automation",
		PreRunE: c.setupConfig,
		RunE:    c.run,
	}

	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
