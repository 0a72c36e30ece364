package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	temporallog "go.temporal.io/sdk/log"

	"aprova.app/config"
	"aprova.app/platform"
	"aprova.app/platform/business/aicache"
	"aprova.app/platform/business/assistant"
	"aprova.app/platform/business/notification"
	"aprova.app/platform/business/usage"
	"aprova.app/platform/completion"
	"aprova.app/platform/domain"
	"aprova.app/platform/repository"
	"aprova.app/platform/store"
	"aprova.app/platform/webhook"
)

// app holds the wired dependencies of a single command invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	temporal client.Client

	notifications notification.Business
	assistant     assistant.Business
	usage         usage.Business
	service       *platform.Service
}

// newApp loads configuration, opens the store and builds the business
// layer. The Temporal client is dialled only when withTemporal is set.
func newApp(ctx context.Context, opts *rootOptions, withTemporal bool) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := newLogger(os.Stderr, level, cfg.Log.Format)

	pool, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, pool: pool}

	if withTemporal {
		a.temporal, err = client.Dial(client.Options{
			HostPort:  cfg.Temporal.HostPort,
			Namespace: cfg.Temporal.Namespace,
			Logger:    temporallog.NewStructuredLogger(logger),
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("dial temporal: %w", err)
		}
	}

	if err := a.wire(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire() error {
	location, err := a.cfg.Usage.Location()
	if err != nil {
		return err
	}

	repo := repository.NewRepository(a.pool)
	stateMachine := domain.NewNotificationStateMachine(a.pool, repo.Notifications, a.logger)
	sender := webhook.NewHTTPSender(a.cfg.Webhook, a.logger)
	completer := completion.NewClient(a.cfg.AI, completion.WithLogger(a.logger))

	a.notifications = notification.NewNotificationBusiness(repo.Notifications, repo.Settings, repo.Tenants, stateMachine, sender, a.logger)
	a.usage = usage.NewUsageBusiness(repo.Usage, location, a.logger)
	cache := aicache.NewAICacheBusiness(repo.AICache, a.cfg.AI.CacheTTL, a.logger)
	a.assistant = assistant.NewAssistantBusiness(repo.Assistant, repo.Tenants, a.usage, cache, completer, a.cfg.AI, a.logger)

	a.service = platform.NewService(a.notifications, a.assistant, a.usage, a.temporal, platform.ServiceConfig{
		TaskQueue:      a.cfg.Temporal.TaskQueue,
		DrainBatchSize: a.cfg.Webhook.DrainBatchSize,
		Ping:           a.pool.Ping,
	}, a.logger)
	return nil
}

func (a *app) Close() {
	if a.temporal != nil {
		a.temporal.Close()
	}
	a.pool.Close()
}
