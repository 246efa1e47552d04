package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topics carrying change notifications for the shared stores. Subscribers
// use them to refresh instead of polling the API.
const (
	TopicCatalog      = "catalog"
	TopicTransactions = "transactions"
	TopicSettings     = "settings"
)

// Topics lists every change topic, in the order the event feed merges them.
func Topics() []string {
	return []string{TopicCatalog, TopicTransactions, TopicSettings}
}

// Bus is an in-process publish/subscribe channel for store change events.
// A nil Bus is valid and drops all notifications.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 16},
			watermill.NewSlogLogger(logger),
		),
	}
}

// Notify publishes a change marker on the given topic. Delivery is
// best-effort: a failed publish is logged by watermill and dropped, since
// notifications only accelerate refreshes that polling would catch anyway.
func (b *Bus) Notify(topic string) {
	if b == nil {
		return
	}

	msg := message.NewMessage(
		watermill.NewUUID(),
		[]byte(strconv.FormatInt(time.Now().UnixMilli(), 10)),
	)

	_ = b.pubsub.Publish(topic, msg)
}

// Subscribe returns a channel of change events for the topic. The channel
// closes when ctx is cancelled.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	if b == nil {
		return nil
	}

	return b.pubsub.Close()
}
