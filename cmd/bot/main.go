package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-notify-bot/internal/config"
	"github.com/diegoclair/slack-notify-bot/internal/database"
	"github.com/diegoclair/slack-notify-bot/internal/domain/service"
	"github.com/diegoclair/slack-notify-bot/internal/handlers"
	"github.com/diegoclair/slack-notify-bot/internal/logger"
	"github.com/diegoclair/slack-notify-bot/internal/notifier"
	"github.com/diegoclair/slack-notify-bot/internal/scheduler"
	"github.com/diegoclair/slack-notify-bot/migrator/sqlite"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log = logger.New(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	slackClient := slack.New(cfg.SlackBotToken)
	dm := database.NewInstance(db)

	services := service.NewInstance(dm, slackClient, log)
	sender := notifier.New(slackClient, log)

	var driver scheduler.Driver
	if cfg.SchedulerDriver == config.DriverCron {
		cronDriver := scheduler.NewCronDriver()
		defer cronDriver.Close()
		driver = cronDriver
	} else {
		driver = scheduler.NewTimerDriver()
	}
	log.Info().Str("driver", cfg.SchedulerDriver).Msg("scheduler driver selected")

	sched := scheduler.New(services.Users, sender, driver, log)
	services.Users.AttachScheduler(sched)

	sched.Start()
	defer sched.Stop()

	mux := http.NewServeMux()
	handlers.New(sched, log).Routes(mux)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
