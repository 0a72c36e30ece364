package notification

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/settings"
)

var errWebhookNotConfigured = &errs.Error{Code: errs.FailedPrecondition, Message: "webhook not configured"}

// webhookURL resolves the destination for category: the agency setting
// first, then the system setting. Empty values count as absent.
func (b *business) webhookURL(ctx context.Context, category model.Category, agencyID *uuid.UUID) (string, error) {
	key := category.WebhookSettingKey()

	if agencyID != nil {
		value, err := b.settingsRepo.GetAgencySetting(ctx, settings.GetAgencySettingParams{
			AgencyID: *agencyID,
			Key:      key,
		})
		switch {
		case err == nil:
			if url := strings.TrimSpace(value); url != "" {
				return url, nil
			}
		case errors.Is(err, pgx.ErrNoRows):
		default:
			b.logger.Error("failed to read agency webhook setting", "agency_id", *agencyID, "key", key, "error", err)
			return "", &errs.Error{Code: errs.Internal, Message: "failed to read webhook configuration"}
		}
	}

	value, err := b.settingsRepo.GetSystemSetting(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		b.logger.Error("failed to read system webhook setting", "key", key, "error", err)
		return "", &errs.Error{Code: errs.Internal, Message: "failed to read webhook configuration"}
	}
	return strings.TrimSpace(value), nil
}
