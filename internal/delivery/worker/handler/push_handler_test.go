package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockPushTokenRepository, *mockSvc.MockPushSender) {
	pushTokenRepo := mockRepo.NewMockPushTokenRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)

	h := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		pushSender:     pushSender,
		pushTokenRepo:  pushTokenRepo,
	}

	return h, pushTokenRepo, pushSender
}

func pushRequest(t *testing.T, event *service.DeliveryPushEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = event.DeliveryID
	msg.Subscription = "projects/local/subscriptions/delivery-push-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testPushEvent(userID uuid.UUID) *service.DeliveryPushEvent {
	return &service.DeliveryPushEvent{
		DeliveryID: uuid.New().String(),
		OrderID:    uuid.New().String(),
		UserID:     userID.String(),
		Title:      "Delivery Status Update",
		Body:       "Your delivery is now In Transit!",
		Data:       map[string]string{"status": "in_transit"},
	}
}

func TestPushHandler_HandlePush_SendsToCurrentToken(t *testing.T) {
	h, pushTokenRepo, pushSender := newTestPushHandler(t)
	userID := uuid.New()
	event := testPushEvent(userID)

	c, rec := pushRequest(t, event)

	pushTokenRepo.EXPECT().FindTokenByUser(mock.Anything, userID).
		Return(&entity.UserPushToken{UserID: userID, FCMToken: "current-token"}, nil)
	pushSender.EXPECT().
		SendNotification(mock.Anything, "current-token", event.Title, event.Body, event.Data).
		Return(nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The user unregistered after the event was queued; the message is acked so
// Pub/Sub stops redelivering it.
func TestPushHandler_HandlePush_MissingTokenIsAcked(t *testing.T) {
	h, pushTokenRepo, _ := newTestPushHandler(t)
	userID := uuid.New()

	c, rec := pushRequest(t, testPushEvent(userID))

	pushTokenRepo.EXPECT().FindTokenByUser(mock.Anything, userID).
		Return(nil, repository.ErrPushTokenNotFound)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RepositoryErrorTriggersRetry(t *testing.T) {
	h, pushTokenRepo, _ := newTestPushHandler(t)
	userID := uuid.New()

	c, rec := pushRequest(t, testPushEvent(userID))

	pushTokenRepo.EXPECT().FindTokenByUser(mock.Anything, userID).
		Return(nil, errors.New("db down"))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_SendErrorTriggersRetry(t *testing.T) {
	h, pushTokenRepo, pushSender := newTestPushHandler(t)
	userID := uuid.New()

	c, rec := pushRequest(t, testPushEvent(userID))

	pushTokenRepo.EXPECT().FindTokenByUser(mock.Anything, userID).
		Return(&entity.UserPushToken{UserID: userID, FCMToken: "current-token"}, nil)
	pushSender.EXPECT().
		SendNotification(mock.Anything, "current-token", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBodyIsRejected(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"not base64!!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidUserIDIsAcked(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	event := testPushEvent(uuid.New())
	event.UserID = "not-a-uuid"
	c, rec := pushRequest(t, event)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
