// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/entity"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery lifecycle handlers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// CreateDeliveryRequest represents the request body for opening a delivery.
type CreateDeliveryRequest struct {
	OrderID         string `json:"order_id" validate:"required,uuid"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateLocationRequest represents the request body for a location report.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// CreateDelivery handles opening a delivery for an order.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	delivery, err := h.deliveryUC.CreateDelivery(c.Request().Context(), &usecase.CreateDeliveryInput{
		OrderID:         orderID,
		DeliveryAddress: req.DeliveryAddress,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		RequestedBy:     userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, delivery)
}

// ListDeliveries handles listing the deliveries visible to the caller.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	role, err := resolveRole(c)
	if err != nil {
		return err
	}

	deliveries, err := h.deliveryUC.ListDeliveries(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveries)
}

// GetDelivery handles retrieving a single delivery, scoped to the caller.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	role, err := resolveRole(c)
	if err != nil {
		return err
	}

	delivery, err := h.deliveryUC.GetDelivery(c.Request().Context(), deliveryID, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

// UpdateStatus handles applying a status change to a delivery.
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	delivery, err := h.deliveryUC.UpdateStatus(c.Request().Context(), &usecase.UpdateStatusInput{
		DeliveryID: deliveryID,
		Status:     req.Status,
		UpdatedBy:  &userID,
		Roles:      callerRoles(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

// UpdateLocation handles a real-time location report from the assigned agent.
func (h *DeliveryHandler) UpdateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	delivery, err := h.deliveryUC.UpdateLocation(c.Request().Context(), &usecase.UpdateLocationInput{
		DeliveryID: deliveryID,
		AgentID:    userID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

// EstimateCost computes and persists the delivery cost.
func (h *DeliveryHandler) EstimateCost(c echo.Context) error {
	userID, role, err := callerIdentity(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	delivery, err := h.deliveryUC.EstimateCost(c.Request().Context(), deliveryID, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

// TrackDelivery returns the live tracking snapshot for a delivery.
func (h *DeliveryHandler) TrackDelivery(c echo.Context) error {
	userID, role, err := callerIdentity(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	info, err := h.deliveryUC.TrackDelivery(c.Request().Context(), deliveryID, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// GetStatusHistory returns the delivery's status history, oldest first.
func (h *DeliveryHandler) GetStatusHistory(c echo.Context) error {
	userID, role, err := callerIdentity(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	history, err := h.deliveryUC.GetStatusHistory(c.Request().Context(), deliveryID, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// GetTrackingQRCode renders a PNG QR code linking to the delivery's live
// tracking channel.
func (h *DeliveryHandler) GetTrackingQRCode(c echo.Context) error {
	userID, role, err := callerIdentity(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	png, err := h.deliveryUC.GetTrackingQRCode(c.Request().Context(), deliveryID, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the user ID set by the auth middleware. The error path
// is unreachable behind Authenticate; it surfaces through the global error
// handler if a route is ever wired without it.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return userID, nil
}

// callerRoles returns every valid role the token grants the caller.
func callerRoles(c echo.Context) entity.Roles {
	rolesVal, _ := c.Get("roles").([]string)

	return entity.RolesFromStrings(rolesVal)
}

// callerIdentity gathers the caller's user ID and acting role, shared by the
// scoped detail endpoints.
func callerIdentity(c echo.Context) (uuid.UUID, entity.Role, error) {
	userID, err := getUserID(c)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := resolveRole(c)
	if err != nil {
		return uuid.Nil, "", err
	}

	return userID, role, nil
}

// resolveRole picks the role the caller acts under. An explicit ?role= query
// parameter is honored only when the token actually carries that role;
// otherwise the first valid token role is used.
func resolveRole(c echo.Context) (entity.Role, error) {
	rolesVal, _ := c.Get("roles").([]string)
	roles := entity.RolesFromStrings(rolesVal)
	if len(roles) == 0 {
		return "", echo.NewHTTPError(http.StatusForbidden, "No valid role in token")
	}

	if requested := c.QueryParam("role"); requested != "" {
		role := entity.Role(requested)
		if !role.IsValid() || !roles.Contains(role) {
			return "", echo.NewHTTPError(http.StatusForbidden, "Requested role is not granted to this user")
		}

		return role, nil
	}

	return roles[0], nil
}
