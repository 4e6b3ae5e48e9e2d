package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	mockUC "fleet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushTokenHandler(t *testing.T) (*PushTokenHandler, *mockUC.MockPushTokenUsecase) {
	pushTokenUC := mockUC.NewMockPushTokenUsecase(t)
	h := &PushTokenHandler{
		pushTokenUC: pushTokenUC,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, pushTokenUC
}

func TestPushTokenHandler_RegisterPushToken(t *testing.T) {
	h, pushTokenUC := newTestPushTokenHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/users/push-token", `{"fcm_token":"fcm-abc"}`)
	authenticate(c, userID, "customer")

	pushTokenUC.EXPECT().RegisterPushToken(mock.Anything, userID, "fcm-abc").Return(nil)

	require.NoError(t, h.RegisterPushToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushTokenHandler_RegisterPushToken_MissingToken(t *testing.T) {
	h, _ := newTestPushTokenHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/users/push-token", `{}`)
	authenticate(c, uuid.New(), "customer")

	require.NoError(t, h.RegisterPushToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
