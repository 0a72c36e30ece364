package platform

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

type ConfigureWebhookRequest struct {
	Category model.Category `json:"-" validate:"required,oneof=client internal two_factor"`
	AgencyID *uuid.UUID     `json:"agency_id"`
	// URL is empty to clear the destination
	URL string `json:"url" validate:"omitempty,url,max=2048"`
}

type ConfigureWebhookResponse struct {
	Category   model.Category `json:"category"`
	SettingKey string         `json:"setting_key"`
	AgencyID   *uuid.UUID     `json:"agency_id,omitempty"`
	URL        string         `json:"url"`
}

func (s *Service) ConfigureWebhook(ctx context.Context, req *ConfigureWebhookRequest) (*ConfigureWebhookResponse, error) {
	if err := s.notifications.ConfigureWebhook(ctx, req.Category, req.AgencyID, req.URL); err != nil {
		s.logger.Error("failed to configure webhook", "category", req.Category, "error", err)
		return nil, err
	}

	return &ConfigureWebhookResponse{
		Category:   req.Category,
		SettingKey: req.Category.WebhookSettingKey(),
		AgencyID:   req.AgencyID,
		URL:        req.URL,
	}, nil
}

func (r *ConfigureWebhookRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
