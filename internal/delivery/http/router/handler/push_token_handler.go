package handler

import (
	"log/slog"
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushTokenHandlerParams holds dependencies for PushTokenHandler, injected by Fx.
type PushTokenHandlerParams struct {
	fx.In

	PushTokenUC usecase.PushTokenUsecase
	Logger      *slog.Logger
}

// PushTokenHandler holds dependencies for push token handlers.
type PushTokenHandler struct {
	pushTokenUC usecase.PushTokenUsecase
	logger      *slog.Logger
}

// NewPushTokenHandler is the constructor for PushTokenHandler.
func NewPushTokenHandler(params PushTokenHandlerParams) *PushTokenHandler {
	return &PushTokenHandler{
		pushTokenUC: params.PushTokenUC,
		logger:      params.Logger,
	}
}

// RegisterPushTokenRequest represents the request body for registering an FCM token.
type RegisterPushTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterPushToken stores the caller's FCM token, replacing any previous one.
func (h *PushTokenHandler) RegisterPushToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterPushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.pushTokenUC.RegisterPushToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token registered successfully"})
}
