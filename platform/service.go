// Package platform exposes the notification, AI assistant and usage
// operations over HTTP.
package platform

import (
	"context"
	"log/slog"
	"time"

	"go.temporal.io/sdk/client"

	"aprova.app/platform/business/assistant"
	"aprova.app/platform/business/notification"
	"aprova.app/platform/business/usage"
)

type ServiceConfig struct {
	TaskQueue      string
	DrainBatchSize int32
	// Ping reports store health on /healthz when set
	Ping func(ctx context.Context) error
	// BackgroundTimeout bounds work started after a response, 5s when zero
	BackgroundTimeout time.Duration
}

type Service struct {
	notifications notification.Business
	assistant     assistant.Business
	usage         usage.Business
	temporal      client.Client
	config        ServiceConfig
	logger        *slog.Logger
	background    backgroundFunc
}

func NewService(
	notifications notification.Business,
	assistantBusiness assistant.Business,
	usageBusiness usage.Business,
	temporalClient client.Client,
	cfg ServiceConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		notifications: notifications,
		assistant:     assistantBusiness,
		usage:         usageBusiness,
		temporal:      temporalClient,
		config:        cfg,
		logger:        logger,
	}
	s.background = s.inBackground
	return s
}
