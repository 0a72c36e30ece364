package notification

import (
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"aprova.app/platform/mocks/domain/state_machine"
	"aprova.app/platform/mocks/repository/notification_repo"
	"aprova.app/platform/mocks/repository/settings_repo"
	"aprova.app/platform/mocks/repository/tenant_repo"
	"aprova.app/platform/mocks/webhook/webhook_sender"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	repo         *notification_repo.MockQuerier
	settingsRepo *settings_repo.MockQuerier
	tenantRepo   *tenant_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
	sender       *webhook_sender.MockSender
}

func newTestBusiness(t *testing.T) (*business, *testDeps, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		repo:         notification_repo.NewMockQuerier(ctrl),
		settingsRepo: settings_repo.NewMockQuerier(ctrl),
		tenantRepo:   tenant_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
		sender:       webhook_sender.NewMockSender(ctrl),
	}
	b := &business{
		repo:         deps.repo,
		settingsRepo: deps.settingsRepo,
		tenantRepo:   deps.tenantRepo,
		stateMachine: deps.stateMachine,
		sender:       deps.sender,
		now:          func() time.Time { return fixedNow },
		logger:       slog.Default(),
	}
	return b, deps, ctrl
}
