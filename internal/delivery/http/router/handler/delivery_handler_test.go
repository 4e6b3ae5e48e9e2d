package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet/internal/delivery/http/validator"
	"fleet/internal/domain/entity"
	mockUC "fleet/internal/mocks/usecase"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeliveryHandler(t *testing.T) (*DeliveryHandler, *mockUC.MockDeliveryUsecase) {
	deliveryUC := mockUC.NewMockDeliveryUsecase(t)
	h := &DeliveryHandler{
		deliveryUC: deliveryUC,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, deliveryUC
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uuid.UUID, roles ...string) {
	c.Set("userID", userID)
	c.Set("roles", roles)
}

func TestDeliveryHandler_CreateDelivery(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	orderID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/deliveries",
		`{"order_id":"`+orderID.String()+`","delivery_address":"100 Main St","pickup_location":"25.0330, 121.5654"}`)
	authenticate(c, userID, "customer")

	deliveryUC.EXPECT().CreateDelivery(mock.Anything, mock.MatchedBy(func(input *usecase.CreateDeliveryInput) bool {
		return input.OrderID == orderID &&
			input.DeliveryAddress == "100 Main St" &&
			input.PickupLocation == "25.0330, 121.5654" &&
			input.RequestedBy == userID
	})).Return(&entity.Delivery{ID: uuid.New(), OrderID: orderID, Status: entity.DeliveryStatusPending}, nil)

	require.NoError(t, h.CreateDelivery(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestDeliveryHandler_CreateDelivery_MissingAddress(t *testing.T) {
	h, _ := newTestDeliveryHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/deliveries",
		`{"order_id":"`+uuid.New().String()+`"}`)
	authenticate(c, uuid.New(), "customer")

	// Validation fails before the usecase is touched.
	require.NoError(t, h.CreateDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDeliveryHandler_CreateDelivery_Unauthenticated(t *testing.T) {
	h, _ := newTestDeliveryHandler(t)

	c, _ := newTestContext(t, http.MethodPost, "/deliveries", `{}`)

	err := h.CreateDelivery(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestDeliveryHandler_ListDeliveries_DefaultsToFirstTokenRole(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/deliveries", "")
	authenticate(c, userID, "delivery_agent", "customer")

	deliveryUC.EXPECT().ListDeliveries(mock.Anything, userID, entity.RoleDeliveryAgent).
		Return([]*entity.Delivery{}, nil)

	require.NoError(t, h.ListDeliveries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryHandler_ListDeliveries_ExplicitRoleMustBeGranted(t *testing.T) {
	h, _ := newTestDeliveryHandler(t)

	c, _ := newTestContext(t, http.MethodGet, "/deliveries?role=owner", "")
	authenticate(c, uuid.New(), "customer")

	err := h.ListDeliveries(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestDeliveryHandler_GetDelivery(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "customer")

	deliveryUC.EXPECT().GetDelivery(mock.Anything, deliveryID, userID, entity.RoleCustomer).
		Return(&entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusAssigned}, nil)

	require.NoError(t, h.GetDelivery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryHandler_GetDelivery_InvalidID(t *testing.T) {
	h, _ := newTestDeliveryHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	authenticate(c, uuid.New(), "customer")

	require.NoError(t, h.GetDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestDeliveryHandler_UpdateStatus_RecordsActingUser(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/update-status",
		`{"status":"in_transit"}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "delivery_agent")

	deliveryUC.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateStatusInput) bool {
		return input.DeliveryID == deliveryID &&
			input.Status == "in_transit" &&
			input.UpdatedBy != nil && *input.UpdatedBy == userID &&
			input.Roles.Contains(entity.RoleDeliveryAgent)
	})).Return(&entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusInTransit}, nil)

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryHandler_UpdateLocation(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/update-location",
		`{"latitude":25.04,"longitude":121.56}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "delivery_agent")

	deliveryUC.EXPECT().UpdateLocation(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateLocationInput) bool {
		return input.DeliveryID == deliveryID &&
			input.AgentID == userID &&
			input.Latitude != nil && *input.Latitude == 25.04 &&
			input.Longitude != nil && *input.Longitude == 121.56
	})).Return(&entity.Delivery{ID: deliveryID, CurrentLocation: "25.040000, 121.560000"}, nil)

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryHandler_UpdateLocation_MissingCoordinates(t *testing.T) {
	h, _ := newTestDeliveryHandler(t)
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/update-location",
		`{"latitude":25.04}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, uuid.New(), "delivery_agent")

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryHandler_TrackDelivery(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/track", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "customer")

	deliveryUC.EXPECT().TrackDelivery(mock.Anything, deliveryID, userID, entity.RoleCustomer).
		Return(&usecase.TrackingInfo{Status: "in_transit", CurrentLocation: "25.040000, 121.560000", ETA: "5 min"}, nil)

	require.NoError(t, h.TrackDelivery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eta":"5 min"`)
}

func TestDeliveryHandler_EstimateCost_ScopedToCaller(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()
	cost := 75.0

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/estimate-cost", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "owner")

	deliveryUC.EXPECT().EstimateCost(mock.Anything, deliveryID, userID, entity.RoleOwner).
		Return(&entity.Delivery{ID: deliveryID, Cost: &cost}, nil)

	require.NoError(t, h.EstimateCost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cost":75`)
}

func TestDeliveryHandler_GetStatusHistory_ScopedToCaller(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/history", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "customer")

	deliveryUC.EXPECT().GetStatusHistory(mock.Anything, deliveryID, userID, entity.RoleCustomer).
		Return([]*entity.DeliveryStatusUpdate{{DeliveryID: deliveryID, Status: entity.DeliveryStatusPending}}, nil)

	require.NoError(t, h.GetStatusHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending"`)
}

func TestDeliveryHandler_GetTrackingQRCode_ServesPNG(t *testing.T) {
	h, deliveryUC := newTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/tracking-qr", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, userID, "customer")

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	deliveryUC.EXPECT().GetTrackingQRCode(mock.Anything, deliveryID, userID, entity.RoleCustomer).Return(png, nil)

	require.NoError(t, h.GetTrackingQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
