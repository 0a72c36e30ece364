package platform

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

type ClientProfileRequest struct {
	ClientID   uuid.UUID  `json:"client_id"`
	UserID     *uuid.UUID `json:"user_id"`
	BriefingID *uuid.UUID `json:"briefing_id"`
}

type ClientProfileResponse struct {
	*model.GenerationResult[*model.ClientProfile]
}

// GenerateClientProfile builds the client's AI profile from a briefing.
func (s *Service) GenerateClientProfile(ctx context.Context, req *ClientProfileRequest) (*ClientProfileResponse, error) {
	result, err := s.assistant.GenerateClientProfile(ctx, &model.ClientProfileRequest{
		ClientID:   req.ClientID,
		UserID:     req.UserID,
		BriefingID: req.BriefingID,
	})
	if err != nil {
		s.logger.Error("failed to generate client profile", "client_id", req.ClientID, "error", err)
		return nil, err
	}
	return &ClientProfileResponse{result}, nil
}

func (r *ClientProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.ClientID == uuid.Nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "client_id is required"}
	}
	return nil
}

type MonthlyPlanRequest struct {
	ClientID uuid.UUID        `json:"client_id"`
	UserID   *uuid.UUID       `json:"user_id"`
	Period   model.PlanPeriod `json:"period" validate:"omitempty,oneof=month fortnight week"`
	Month    string           `json:"month" validate:"required,datetime=2006-01"`
}

type MonthlyPlanResponse struct {
	*model.GenerationResult[*model.MonthlyPlan]
}

// GenerateMonthlyPlan drafts a period's posts for a client.
func (s *Service) GenerateMonthlyPlan(ctx context.Context, req *MonthlyPlanRequest) (*MonthlyPlanResponse, error) {
	if req.Period == "" {
		req.Period = model.PlanPeriodMonth
	}

	result, err := s.assistant.GenerateMonthlyPlan(ctx, &model.MonthlyPlanRequest{
		ClientID: req.ClientID,
		UserID:   req.UserID,
		Period:   req.Period,
		Month:    req.Month,
	})
	if err != nil {
		s.logger.Error("failed to generate monthly plan", "client_id", req.ClientID, "month", req.Month, "error", err)
		return nil, err
	}
	return &MonthlyPlanResponse{result}, nil
}

func (r *MonthlyPlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.ClientID == uuid.Nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "client_id is required"}
	}
	return nil
}

type UsageResponse struct {
	ClientID uuid.UUID          `json:"client_id"`
	Usage    *model.UsageStatus `json:"usage"`
}

// UsageStatus reports the client's AI allowance for the current month.
func (s *Service) UsageStatus(ctx context.Context, clientID uuid.UUID) (*UsageResponse, error) {
	status, err := s.usage.Status(ctx, clientID)
	if err != nil {
		s.logger.Error("failed to load usage status", "client_id", clientID, "error", err)
		return nil, err
	}
	return &UsageResponse{ClientID: clientID, Usage: status}, nil
}
