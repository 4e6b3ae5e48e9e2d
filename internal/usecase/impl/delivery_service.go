package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"fleet/config"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/errors"
	"fleet/internal/usecase"
	"fleet/internal/util"

	"github.com/google/uuid"
)

type deliveryService struct {
	deliveryRepo      repository.DeliveryRepository
	orderRepo         repository.OrderRepository
	agentLocationRepo repository.AgentLocationRepository
	locator           usecase.AgentLocator
	estimator         service.DistanceEstimator
	dispatcher        usecase.NotificationDispatcher
	broadcaster       service.Broadcaster
	qrcodeSvc         service.QRCodeService
	pricing           *config.DeliveryConfig
	logger            *slog.Logger
}

// NewDeliveryService creates a new delivery lifecycle service instance
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	orderRepo repository.OrderRepository,
	agentLocationRepo repository.AgentLocationRepository,
	locator usecase.AgentLocator,
	estimator service.DistanceEstimator,
	dispatcher usecase.NotificationDispatcher,
	broadcaster service.Broadcaster,
	qrcodeSvc service.QRCodeService,
	pricing *config.DeliveryConfig,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	if pricing == nil {
		pricing = config.DefaultDeliveryConfig()
	}

	return &deliveryService{
		deliveryRepo:      deliveryRepo,
		orderRepo:         orderRepo,
		agentLocationRepo: agentLocationRepo,
		locator:           locator,
		estimator:         estimator,
		dispatcher:        dispatcher,
		broadcaster:       broadcaster,
		qrcodeSvc:         qrcodeSvc,
		pricing:           pricing,
		logger:            logger,
	}
}

// CreateDelivery opens a delivery for an order and attempts to assign the
// nearest available agent. Assignment is best-effort: with no agents online
// the delivery stays pending and a later manual status change picks it up.
func (s *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch order")
	}

	now := time.Now()
	delivery := &entity.Delivery{
		ID:              uuid.New(),
		OrderID:         order.ID,
		DeliveryAddress: input.DeliveryAddress,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		Status:          entity.DeliveryStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.deliveryRepo.CreateDelivery(ctx, delivery); err != nil {
		if errors.Is(err, repository.ErrDuplicateDelivery) {
			return nil, domainerrors.ErrDuplicateDelivery
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to create delivery")
	}

	s.appendHistory(ctx, delivery, nil)

	s.tryAssignAgent(ctx, delivery)

	s.dispatcher.DispatchStatusChanged(ctx, delivery, order.CustomerID)
	s.broadcastStatus(ctx, delivery)

	return delivery, nil
}

// tryAssignAgent assigns the nearest active agent when the pickup location is
// geocoded. Any failure leaves the delivery pending.
func (s *deliveryService) tryAssignAgent(ctx context.Context, delivery *entity.Delivery) {
	pickup, ok := s.parseCoordinate(delivery.PickupLocation)
	if !ok {
		s.logger.Debug("pickup location not geocoded, skipping agent assignment",
			slog.String("delivery_id", delivery.ID.String()),
		)

		return
	}

	agent, err := s.locator.FindNearestAgent(ctx, pickup)
	if err != nil {
		s.logger.Warn("agent lookup failed, delivery stays pending",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}
	if agent == nil {
		s.logger.Info("no active agents available, delivery stays pending",
			slog.String("delivery_id", delivery.ID.String()),
		)

		return
	}

	agentID := agent.AgentID
	delivery.AgentID = &agentID
	delivery.Status = entity.DeliveryStatusAssigned

	if err := s.deliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		s.logger.Warn("failed to persist agent assignment, delivery stays pending",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("error", err.Error()),
		)
		delivery.AgentID = nil
		delivery.Status = entity.DeliveryStatusPending

		return
	}

	s.appendHistory(ctx, delivery, nil)
}

// ListDeliveries lists the deliveries visible to a user in a given role.
func (s *deliveryService) ListDeliveries(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Delivery, error) {
	deliveries, err := s.deliveryRepo.ListDeliveriesForUser(ctx, userID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return deliveries, nil
}

// GetDelivery retrieves one delivery, scoped to what the user may see. A
// delivery outside the user's scope reads as not found rather than forbidden.
func (s *deliveryService) GetDelivery(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*entity.Delivery, error) {
	return s.findDeliveryScoped(ctx, deliveryID, userID, role)
}

// UpdateStatus applies a status change. Any valid status value is accepted
// from any current state, terminal states included; the caller owns the
// semantics of unusual sequences. A user actor must own the delivery: the
// assigned agent, or the owner of the order's restaurant. The history append
// is part of the transition; notification and broadcast are best-effort.
func (s *deliveryService) UpdateStatus(ctx context.Context, input *usecase.UpdateStatusInput) (*entity.Delivery, error) {
	status := entity.DeliveryStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(input.Status)
	}

	delivery, order, err := s.findDeliveryWithOrder(ctx, input.DeliveryID)
	if err != nil {
		return nil, err
	}

	if input.UpdatedBy != nil && !mayMutate(delivery, order, *input.UpdatedBy, input.Roles) {
		return nil, domainerrors.ErrForbidden
	}

	delivery.Status = status
	if status == entity.DeliveryStatusDelivered && delivery.DeliveredAt == nil {
		now := time.Now()
		delivery.DeliveredAt = &now
	}

	if err := s.deliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to update delivery status")
	}

	if err := s.recordStatusUpdate(ctx, delivery, input.UpdatedBy); err != nil {
		return nil, err
	}

	s.dispatcher.DispatchStatusChanged(ctx, delivery, order.CustomerID)
	s.broadcastStatus(ctx, delivery)

	return delivery, nil
}

// UpdateLocation records a real-time location report and broadcasts it. Only
// the assigned agent may report.
func (s *deliveryService) UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) (*entity.Delivery, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrInvalidLocation
	}

	delivery, err := s.findDelivery(ctx, input.DeliveryID)
	if err != nil {
		return nil, err
	}

	if delivery.AgentID == nil || *delivery.AgentID != input.AgentID {
		return nil, domainerrors.ErrForbidden
	}

	location := util.FormatLatLng(*input.Latitude, *input.Longitude)
	if err := s.deliveryRepo.UpdateCurrentLocation(ctx, delivery.ID, location); err != nil {
		return nil, errors.Wrap(err, "failed to update current location")
	}
	delivery.CurrentLocation = location

	// Keep the agent's standing location current for future assignments.
	agentLocation := &entity.AgentLocation{
		AgentID:   input.AgentID,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		UpdatedAt: time.Now(),
	}
	if err := s.agentLocationRepo.UpsertLocation(ctx, agentLocation); err != nil {
		s.logger.Warn("failed to refresh agent location",
			slog.String("agent_id", input.AgentID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.broadcastLocation(ctx, delivery)

	return delivery, nil
}

// EstimateCost computes and persists the delivery cost from the geodesic
// pickup-to-dropoff distance: base fee plus a per-kilometer rate.
func (s *deliveryService) EstimateCost(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*entity.Delivery, error) {
	delivery, err := s.findDeliveryScoped(ctx, deliveryID, userID, role)
	if err != nil {
		return nil, err
	}

	pickup, ok := s.parseCoordinate(delivery.PickupLocation)
	if !ok {
		return nil, domainerrors.ErrMissingRouteLocations
	}
	dropoff, ok := s.parseCoordinate(delivery.DropoffLocation)
	if !ok {
		return nil, domainerrors.ErrMissingRouteLocations
	}

	distanceKm := s.estimator.DistanceKm(pickup, dropoff)
	cost := math.Round((s.pricing.BaseFee+s.pricing.RatePerKm*distanceKm)*100) / 100
	delivery.Cost = &cost

	if err := s.deliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to persist cost estimate")
	}

	return delivery, nil
}

// TrackDelivery returns the live tracking snapshot for a delivery.
func (s *deliveryService) TrackDelivery(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*usecase.TrackingInfo, error) {
	delivery, err := s.findDeliveryScoped(ctx, deliveryID, userID, role)
	if err != nil {
		return nil, err
	}

	info := &usecase.TrackingInfo{
		Status:          delivery.Status.String(),
		CurrentLocation: delivery.CurrentLocation,
	}

	info.ETA = s.estimateETA(ctx, delivery)

	return info, nil
}

// estimateETA derives an ETA from the courier's current position and the
// dropoff point, assuming the configured average speed. Before the first
// location report on the delivery, the assigned agent's standing location
// stands in.
func (s *deliveryService) estimateETA(ctx context.Context, delivery *entity.Delivery) string {
	if delivery.Status == entity.DeliveryStatusDelivered {
		return "delivered"
	}

	current, ok := s.parseCoordinate(delivery.CurrentLocation)
	if !ok {
		current, ok = s.agentStandingLocation(ctx, delivery)
	}
	if !ok {
		return "unavailable"
	}
	dropoff, ok := s.parseCoordinate(delivery.DropoffLocation)
	if !ok {
		return "unavailable"
	}
	if s.pricing.AgentSpeedKmh <= 0 {
		return "unavailable"
	}

	distanceKm := s.estimator.DistanceKm(current, dropoff)
	eta := time.Duration(distanceKm / s.pricing.AgentSpeedKmh * float64(time.Hour))

	return util.FormatDuration(eta)
}

// agentStandingLocation resolves the assigned agent's last reported location.
func (s *deliveryService) agentStandingLocation(ctx context.Context, delivery *entity.Delivery) (service.Coordinate, bool) {
	if delivery.AgentID == nil {
		return service.Coordinate{}, false
	}

	agentLocation, err := s.agentLocationRepo.FindByAgent(ctx, *delivery.AgentID)
	if err != nil {
		if !errors.Is(err, repository.ErrAgentLocationNotFound) {
			s.logger.Warn("failed to resolve agent location for ETA",
				slog.String("agent_id", delivery.AgentID.String()),
				slog.String("error", err.Error()),
			)
		}

		return service.Coordinate{}, false
	}

	return service.Coordinate{Lat: agentLocation.Latitude, Lng: agentLocation.Longitude}, true
}

// GetStatusHistory returns the delivery's status history, oldest first.
func (s *deliveryService) GetStatusHistory(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) ([]*entity.DeliveryStatusUpdate, error) {
	if _, err := s.findDeliveryScoped(ctx, deliveryID, userID, role); err != nil {
		return nil, err
	}

	updates, err := s.deliveryRepo.ListStatusUpdates(ctx, deliveryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list status history")
	}

	return updates, nil
}

// GetTrackingQRCode renders a PNG QR code linking to the delivery's live
// tracking channel.
func (s *deliveryService) GetTrackingQRCode(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) ([]byte, error) {
	delivery, err := s.findDeliveryScoped(ctx, deliveryID, userID, role)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateTrackingQRCode(delivery.OrderID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// --- helpers ---

func (s *deliveryService) findDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch delivery")
	}

	return delivery, nil
}

func (s *deliveryService) findDeliveryWithOrder(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, *entity.Order, error) {
	delivery, err := s.findDelivery(ctx, deliveryID)
	if err != nil {
		return nil, nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch order for delivery")
	}

	return delivery, order, nil
}

// findDeliveryScoped loads a delivery only if the user may see it under the
// given role. A delivery outside the user's scope reads as not found rather
// than forbidden.
func (s *deliveryService) findDeliveryScoped(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*entity.Delivery, error) {
	delivery, order, err := s.findDeliveryWithOrder(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if !visibleTo(delivery, order, userID, role) {
		return nil, domainerrors.ErrDeliveryNotFound
	}

	return delivery, nil
}

func visibleTo(delivery *entity.Delivery, order *entity.Order, userID uuid.UUID, role entity.Role) bool {
	switch role {
	case entity.RoleCustomer:
		return order.CustomerID == userID
	case entity.RoleDeliveryAgent:
		return delivery.AgentID != nil && *delivery.AgentID == userID
	case entity.RoleOwner:
		return order.OwnerID == userID
	default:
		return false
	}
}

// mayMutate reports whether the actor owns the delivery under any of their
// granted roles. A customer role never grants mutation.
func mayMutate(delivery *entity.Delivery, order *entity.Order, actor uuid.UUID, roles entity.Roles) bool {
	for _, role := range roles {
		switch role {
		case entity.RoleDeliveryAgent, entity.RoleOwner:
			if visibleTo(delivery, order, actor, role) {
				return true
			}
		}
	}

	return false
}

// recordStatusUpdate appends the delivery's current status to the append-only
// history. A transition without its history row is not accepted.
func (s *deliveryService) recordStatusUpdate(ctx context.Context, delivery *entity.Delivery, updatedBy *uuid.UUID) error {
	update := &entity.DeliveryStatusUpdate{
		ID:         uuid.New(),
		DeliveryID: delivery.ID,
		Status:     delivery.Status,
		UpdatedAt:  time.Now(),
		UpdatedBy:  updatedBy,
	}

	if err := s.deliveryRepo.AppendStatusUpdate(ctx, update); err != nil {
		return errors.Wrap(err, "failed to append status history entry")
	}

	return nil
}

// appendHistory is the best-effort variant used for the creation-time system
// entries, where the delivery row itself is the source of truth.
func (s *deliveryService) appendHistory(ctx context.Context, delivery *entity.Delivery, updatedBy *uuid.UUID) {
	if err := s.recordStatusUpdate(ctx, delivery, updatedBy); err != nil {
		s.logger.Warn("failed to append status history entry",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("status", delivery.Status.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *deliveryService) parseCoordinate(location string) (service.Coordinate, bool) {
	if location == "" {
		return service.Coordinate{}, false
	}

	lat, lng, err := util.ParseLatLng(location)
	if err != nil {
		return service.Coordinate{}, false
	}

	return service.Coordinate{Lat: lat, Lng: lng}, true
}

func (s *deliveryService) broadcastStatus(ctx context.Context, delivery *entity.Delivery) {
	payload := map[string]any{
		"type":        "status",
		"delivery_id": delivery.ID.String(),
		"status":      delivery.Status.String(),
		"updated_at":  time.Now().UTC().Format(time.RFC3339),
	}
	s.broadcast(ctx, delivery, payload)
}

func (s *deliveryService) broadcastLocation(ctx context.Context, delivery *entity.Delivery) {
	payload := map[string]any{
		"type":             "location",
		"delivery_id":      delivery.ID.String(),
		"status":           delivery.Status.String(),
		"current_location": delivery.CurrentLocation,
		"updated_at":       time.Now().UTC().Format(time.RFC3339),
	}
	s.broadcast(ctx, delivery, payload)
}

func (s *deliveryService) broadcast(ctx context.Context, delivery *entity.Delivery, payload map[string]any) {
	topic := constants.TrackingTopicPrefix + delivery.OrderID.String()
	if err := s.broadcaster.Publish(ctx, topic, payload); err != nil {
		s.logger.Warn("failed to broadcast tracking update",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
	}
}
