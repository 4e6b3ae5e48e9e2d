// Package tracking implements the in-process live tracking channel. Each order
// gets its own topic; subscribers joining a topic receive only updates
// published after they joined. There is no replay and no persistence.
package tracking

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"fleet/config"
	"fleet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSubscriberBuffer = 16

// Subscription is a single subscriber's view of a topic. Messages arrive on C
// as JSON-encoded payloads. Close must be called exactly once when done.
type Subscription struct {
	topic string
	ch    chan []byte
	hub   *Hub
	once  sync.Once
}

// C returns the receive channel for this subscription.
func (s *Subscription) C() <-chan []byte {
	return s.ch
}

// Close removes the subscription from its topic and closes the channel.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.topic, s)
	})
}

// Hub is an in-memory fan-out broker keyed by topic. A slow subscriber whose
// buffer is full has the message dropped; it never blocks the publisher or
// other subscribers on the same topic.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*Subscription]struct{}
	bufSize int
	logger  *slog.Logger
}

// HubParams holds dependencies for the tracking hub, injected by Fx
type HubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates a tracking hub with the configured per-subscriber buffer size.
func NewHub(params HubParams) *Hub {
	bufSize := defaultSubscriberBuffer
	if params.Config.Tracking != nil && params.Config.Tracking.SubscriberBuffer > 0 {
		bufSize = params.Config.Tracking.SubscriberBuffer
	}

	return &Hub{
		topics:  make(map[string]map[*Subscription]struct{}),
		bufSize: bufSize,
		logger:  params.Logger,
	}
}

// Subscribe registers a new subscriber on a topic. The topic is created on
// first use and removed when its last subscriber leaves.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan []byte, h.bufSize),
		hub:   h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

func (h *Hub) unsubscribe(topic string, sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.topics, topic)
	}
}

// SubscriberCount returns the number of active subscribers on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[topic])
}

// Publish encodes the payload as JSON and delivers it to every current
// subscriber of the topic. Publishing to a topic with no subscribers is a
// no-op.
func (h *Hub) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for sub := range h.topics[topic] {
		select {
		case sub.ch <- data:
		default:
			dropped++
		}
	}

	if dropped > 0 {
		h.logger.Warn("dropped tracking updates for slow subscribers",
			slog.String("topic", topic),
			slog.Int("dropped", dropped),
		)
	}

	return nil
}

var _ service.Broadcaster = (*Hub)(nil)

// Module provides the tracking hub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub),
	fx.Provide(func(h *Hub) service.Broadcaster { return h }),
)
