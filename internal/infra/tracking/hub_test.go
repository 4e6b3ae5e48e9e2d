package tracking

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"fleet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufSize int) *Hub {
	return NewHub(HubParams{
		Config: &config.Config{
			Tracking: &config.TrackingConfig{SubscriberBuffer: bufSize},
		},
		Logger: slog.Default(),
	})
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := newTestHub(4)
	subA := hub.Subscribe("delivery_order-1")
	subB := hub.Subscribe("delivery_order-1")
	defer subA.Close()
	defer subB.Close()

	err := hub.Publish(context.Background(), "delivery_order-1", map[string]string{"status": "assigned"})
	require.NoError(t, err)

	for _, sub := range []*Subscription{subA, subB} {
		msg := <-sub.C()

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(msg, &decoded))
		assert.Equal(t, "assigned", decoded["status"])
	}
}

func TestHub_TopicIsolation(t *testing.T) {
	hub := newTestHub(4)
	sub := hub.Subscribe("delivery_order-1")
	defer sub.Close()

	err := hub.Publish(context.Background(), "delivery_order-2", map[string]string{"status": "in_transit"})
	require.NoError(t, err)

	select {
	case msg := <-sub.C():
		t.Fatalf("received message from another topic: %s", msg)
	default:
	}
}

func TestHub_NoReplayForLateSubscriber(t *testing.T) {
	hub := newTestHub(4)

	err := hub.Publish(context.Background(), "delivery_order-1", map[string]string{"status": "assigned"})
	require.NoError(t, err)

	sub := hub.Subscribe("delivery_order-1")
	defer sub.Close()

	select {
	case msg := <-sub.C():
		t.Fatalf("late subscriber replayed old message: %s", msg)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	hub := newTestHub(1)
	slow := hub.Subscribe("delivery_order-1")
	fast := hub.Subscribe("delivery_order-1")
	defer slow.Close()
	defer fast.Close()

	// Fill the slow subscriber's buffer, then publish again. The second
	// message is dropped for the slow subscriber but still reaches the fast
	// one, and Publish never blocks.
	require.NoError(t, hub.Publish(context.Background(), "delivery_order-1", map[string]string{"seq": "1"}))
	<-fast.C()
	require.NoError(t, hub.Publish(context.Background(), "delivery_order-1", map[string]string{"seq": "2"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(<-fast.C(), &decoded))
	assert.Equal(t, "2", decoded["seq"])

	require.NoError(t, json.Unmarshal(<-slow.C(), &decoded))
	assert.Equal(t, "1", decoded["seq"])
	select {
	case msg := <-slow.C():
		t.Fatalf("expected dropped message for slow subscriber, got %s", msg)
	default:
	}
}

func TestHub_UnsubscribeRemovesEmptyTopic(t *testing.T) {
	hub := newTestHub(4)
	sub := hub.Subscribe("delivery_order-1")
	require.Equal(t, 1, hub.SubscriberCount("delivery_order-1"))

	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount("delivery_order-1"))

	// Closing twice is safe.
	sub.Close()
}
