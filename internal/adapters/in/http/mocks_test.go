package http_test

import (
	"context"
	"net/http"

	"logistics/internal/adapters/out/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockLoginUserHandler struct{ mock.Mock }

func (m *MockLoginUserHandler) Handle(
	ctx context.Context,
	cmd commands.LoginUserCommand,
) (commands.LoginUserResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.LoginUserResult), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRegisterDeliveryHandler struct{ mock.Mock }

func (m *MockRegisterDeliveryHandler) Handle(ctx context.Context, cmd commands.RegisterDeliveryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMarkNotificationReadHandler struct{ mock.Mock }

func (m *MockMarkNotificationReadHandler) Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockListMyNotificationsHandler struct{ mock.Mock }

func (m *MockListMyNotificationsHandler) Handle(
	ctx context.Context,
	query queries.ListMyNotificationsQuery,
) ([]queries.NotificationView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.NotificationView), args.Error(1)
}

// stubVerifier accepts exactly one token.
type stubVerifier struct {
	token     string
	principal auth.Principal
}

func (v stubVerifier) Verify(token string) (auth.Principal, error) {
	if token != v.token {
		return auth.Principal{}, errs.NewUnauthorizedError("invalid or expired token")
	}
	return v.principal, nil
}

// recordingHub answers 204 instead of upgrading and remembers who connected.
type recordingHub struct {
	userIDs []string
}

func (h *recordingHub) Serve(w http.ResponseWriter, _ *http.Request, userID string) error {
	h.userIDs = append(h.userIDs, userID)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
