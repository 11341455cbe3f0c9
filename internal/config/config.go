package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Scheduler driver names accepted in SCHEDULER_DRIVER.
const (
	DriverTimer = "timer"
	DriverCron  = "cron"
)

type Config struct {
	SlackBotToken   string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	DatabasePath    string `envconfig:"DATABASE_PATH" default:"./notify.db"`
	Port            string `envconfig:"PORT" default:"3000"`
	SchedulerDriver string `envconfig:"SCHEDULER_DRIVER" default:"timer"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.SchedulerDriver != DriverTimer && cfg.SchedulerDriver != DriverCron {
		return nil, fmt.Errorf("unknown scheduler driver %q", cfg.SchedulerDriver)
	}

	return &cfg, nil
}
