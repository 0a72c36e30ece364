package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aprova.app/platform/domain"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
	"aprova.app/platform/repository/settings"
	"aprova.app/platform/repository/tenants"
	"aprova.app/platform/webhook"
)

const (
	DefaultListLimit  = 20
	MaxListLimit      = 100
	DefaultDrainLimit = 20
)

type Business interface {
	RecordEvent(ctx context.Context, input *model.EventInput) (*model.Notification, *model.DispatchResult, error)
	SendInternalNotification(ctx context.Context, n *model.InternalNotification) (*model.Notification, *model.DispatchResult, error)

	Dispatch(ctx context.Context, id uuid.UUID) (*model.DispatchResult, error)
	ListQueued(ctx context.Context, limit int32) ([]uuid.UUID, error)
	DrainQueue(ctx context.Context, limit int32) (*model.DrainResult, error)

	GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]*model.Notification, int64, error)

	ConfigureWebhook(ctx context.Context, category model.Category, agencyID *uuid.UUID, url string) error
}

// business records notification events and delivers them to webhooks
type business struct {
	repo         notifications.Querier
	settingsRepo settings.Querier
	tenantRepo   tenants.Querier
	stateMachine domain.StateMachine
	sender       webhook.Sender
	now          func() time.Time
	logger       *slog.Logger
}

// NewNotificationBusiness creates the notification writer and dispatcher
func NewNotificationBusiness(
	repo notifications.Querier,
	settingsRepo settings.Querier,
	tenantRepo tenants.Querier,
	stateMachine domain.StateMachine,
	sender webhook.Sender,
	logger *slog.Logger,
) Business {
	if logger == nil {
		logger = slog.Default()
	}
	return &business{
		repo:         repo,
		settingsRepo: settingsRepo,
		tenantRepo:   tenantRepo,
		stateMachine: stateMachine,
		sender:       sender,
		now:          time.Now,
		logger:       logger,
	}
}
