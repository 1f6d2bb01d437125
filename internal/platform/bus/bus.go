// Package bus defines the event handler contract shared by the Kafka, NATS
// and in-process transports, and implements the in-process one.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Handler processes one event. A returned error is logged by the transport
// and, on Kafka and NATS, the event is delivered again. The in-memory bus
// only logs it.
type Handler func(ctx context.Context, topic string, payload []byte) error

// Subscriber delivers events on topics to h until ctx is cancelled.
type Subscriber interface {
	Subscribe(ctx context.Context, topics []string, h Handler) error
}

type message struct {
	topic   string
	payload []byte
}

// Memory is an in-process bus. Publish enqueues and returns; delivery
// happens on the goroutine running Subscribe.
type Memory struct {
	queue  chan message
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

func NewMemory(buffer int, logger *slog.Logger) *Memory {
	if buffer <= 0 {
		buffer = 1024
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Memory{queue: make(chan message, buffer), logger: logger}
}

// Publish marshals payload to JSON and enqueues it. It blocks only while
// the buffer is full.
func (m *Memory) Publish(ctx context.Context, topic, _ string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", topic, err)
	}
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return fmt.Errorf("publish to %s: bus closed", topic)
	}
	select {
	case m.queue <- message{topic: topic, payload: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe delivers queued events for topics to h until ctx is done.
// Events on other topics are dropped.
func (m *Memory) Subscribe(ctx context.Context, topics []string, h Handler) error {
	wanted := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		wanted[t] = struct{}{}
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-m.queue:
			if _, ok := wanted[msg.topic]; !ok {
				continue
			}
			if err := h(ctx, msg.topic, msg.payload); err != nil {
				m.logger.ErrorContext(ctx, "event handler failed",
					"topic", msg.topic,
					"error", err,
				)
			}
		}
	}
}

// Close rejects further publishes.
func (m *Memory) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}
