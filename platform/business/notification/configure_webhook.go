package notification

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/settings"
)

// ConfigureWebhook stores the destination for category, for one agency when
// agencyID is set and system wide otherwise. An empty URL clears it.
func (b *business) ConfigureWebhook(ctx context.Context, category model.Category, agencyID *uuid.UUID, rawURL string) error {
	switch category {
	case model.CategoryClient, model.CategoryInternal, model.CategoryTwoFactor:
	default:
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown notification category"}
	}

	value := strings.TrimSpace(rawURL)
	if value != "" {
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &errs.Error{Code: errs.InvalidArgument, Message: "webhook url must be an absolute http(s) URL"}
		}
	}

	key := category.WebhookSettingKey()
	var err error
	if agencyID != nil {
		err = b.settingsRepo.UpsertAgencySetting(ctx, settings.UpsertAgencySettingParams{
			AgencyID: *agencyID,
			Key:      key,
			Value:    value,
		})
	} else {
		err = b.settingsRepo.UpsertSystemSetting(ctx, settings.UpsertSystemSettingParams{
			Key:   key,
			Value: value,
		})
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return &errs.Error{Code: errs.NotFound, Message: "agency not found"}
		}
		b.logger.Error("failed to store webhook setting", "key", key, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to store webhook configuration"}
	}

	b.logger.Info("webhook configured", "category", category, "agency_id", agencyID, "cleared", value == "")
	return nil
}
