package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"aprova.app/platform/repository/aicache"
	"aprova.app/platform/repository/assistant"
	"aprova.app/platform/repository/notifications"
	"aprova.app/platform/repository/settings"
	"aprova.app/platform/repository/tenants"
	"aprova.app/platform/repository/usage"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Notifications *notifications.Queries
	Settings      settings.Querier
	Tenants       tenants.Querier
	AICache       aicache.Querier
	Usage         usage.Querier
	Assistant     assistant.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Notifications: notifications.New(db),
		Settings:      settings.New(db),
		Tenants:       tenants.New(db),
		AICache:       aicache.New(db),
		Usage:         usage.New(db),
		Assistant:     assistant.New(db),
	}
}
