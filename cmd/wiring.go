package cmd

import (
	"context"
	"fmt"

	"github.com/Eursukkul/eventclub/config"
	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/notification"
	"github.com/Eursukkul/eventclub/internal/repository"
	"github.com/Eursukkul/eventclub/internal/scheduler"
	"github.com/Eursukkul/eventclub/internal/seed"
	"github.com/Eursukkul/eventclub/internal/server"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/Eursukkul/eventclub/pkg/database"
	"github.com/Eursukkul/eventclub/pkg/rabbitmq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return database.NewSQLiteDB(cfg.SQLitePath)
	default:
		return database.NewPostgresDB(cfg.DSN())
	}
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newDispatcher(cfg *config.Config, logger *zap.Logger) (*notification.Dispatcher, error) {
	renderer, err := notification.NewRenderer(cfg.AppURL, cfg.FeeLine, cfg.ReminderDelay)
	if err != nil {
		return nil, err
	}

	var notifier notification.Notifier
	if cfg.SMTPEnabled() {
		notifier, err = notification.NewSMTPNotifier(notification.SMTPOptions{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Timeout:  cfg.SMTP.Timeout,
		})
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("SMTP_HOST not set, notifications are logged only")
		notifier = notification.NewLogNotifier(logger)
	}
	return notification.NewDispatcher(notifier, renderer, logger), nil
}

// app is everything serve needs; close releases it in reverse order.
type app struct {
	db         *gorm.DB
	publisher  *rabbitmq.Publisher
	dispatcher *notification.Dispatcher
	services   server.Services
}

func (a *app) close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.db != nil {
		closeDB(a.db)
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db

	if err := database.Migrate(db); err != nil {
		a.close()
		return nil, err
	}

	clk := clock.Real()
	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, db, clk.Now(), logger); err != nil {
			a.close()
			return nil, err
		}
	}

	// Publisher stays a nil interface when disabled so services skip it.
	var publisher service.EventPublisher
	if cfg.RabbitEnabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, logger)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		a.publisher = p
		publisher = p
	}

	dispatcher, err := newDispatcher(cfg, logger)
	if err != nil {
		a.close()
		return nil, err
	}
	a.dispatcher = dispatcher

	var sched scheduler.Scheduler
	switch cfg.SchedulerBackend {
	case config.SchedulerRabbitMQ:
		sched = scheduler.NewAMQP(a.publisher, clk)
	default:
		sched = scheduler.NewTimer(clk, dispatcher.SendReminder, logger)
	}

	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)

	a.services = server.Services{
		Events: service.NewEventService(eventRepo, publisher, logger),
		Registrations: service.NewRegistrationService(service.RegistrationServiceDeps{
			Registrations:     regRepo,
			Events:            eventRepo,
			Notifier:          dispatcher,
			Scheduler:         sched,
			Publisher:         publisher,
			Clock:             clk,
			Logger:            logger,
			ReminderDelay:     cfg.ReminderDelay,
			StrictTransitions: cfg.StrictTransitions,
		}),
		Announcements: service.NewAnnouncementService(annRepo, eventRepo, clk, publisher, logger),
	}
	return a, nil
}
