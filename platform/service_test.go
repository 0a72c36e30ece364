package platform

import (
	"context"
	"testing"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"aprova.app/platform/mocks/business/assistant_business"
	"aprova.app/platform/mocks/business/notification_business"
	"aprova.app/platform/mocks/business/usage_business"
)

type testDeps struct {
	notifications *notification_business.MockBusiness
	assistant     *assistant_business.MockBusiness
	usage         *usage_business.MockBusiness
	temporal      *mocks.Client
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &testDeps{
		notifications: notification_business.NewMockBusiness(ctrl),
		assistant:     assistant_business.NewMockBusiness(ctrl),
		usage:         usage_business.NewMockBusiness(ctrl),
		temporal:      mocks.NewClient(t),
	}
	s := NewService(deps.notifications, deps.assistant, deps.usage, deps.temporal, ServiceConfig{
		TaskQueue:      "aprova-notifications",
		DrainBatchSize: 20,
	}, nil)
	return s, deps
}

// runInline makes background work run on the calling goroutine.
func runInline(s *Service) {
	s.background = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
}
