package events

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Mr-Vicky-01/billing-software/internal/events"
)

type Handler struct {
	bus *events.Bus
}

func NewHandler(bus *events.Bus) *Handler {
	return &Handler{bus: bus}
}

type event struct {
	topic string
	msg   *message.Message
}

// Stream serves store change notifications as Server-Sent Events, one event
// per mutation, named after the topic that changed. Clients refresh on
// these instead of polling.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	merged := make(chan event)

	for _, topic := range events.Topics() {
		msgs, err := h.bus.Subscribe(ctx, topic)
		if err != nil {
			slog.Error("failed to subscribe to change topic", "topic", topic, "error", err)
			http.Error(w, "failed to subscribe", http.StatusInternalServerError)

			return
		}

		go func(topic string, msgs <-chan *message.Message) {
			for msg := range msgs {
				select {
				case merged <- event{topic: topic, msg: msg}:
				case <-ctx.Done():
					msg.Nack()
					return
				}
			}
		}(topic, msgs)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")

	// Opening comment confirms the stream to the client right away.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-merged:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.topic, ev.msg.Payload)
			flusher.Flush()
			ev.msg.Ack()
		}
	}
}
