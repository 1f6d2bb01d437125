// Package natsbus carries case events over NATS JetStream.
package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"caseregistry/internal/platform/bus"
)

// HeaderKey carries the partition key of an event.
const HeaderKey = "Case-Key"

// Bus publishes to and consumes from one JetStream stream.
type Bus struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	stream  string
	durable string
	logger  *slog.Logger
}

var _ bus.Subscriber = (*Bus)(nil)

// Connect dials NATS and makes sure the stream covers subjects.
func Connect(ctx context.Context, url, stream, durable string, subjects []string, logger *slog.Logger) (*Bus, error) {
	nc, err := nats.Connect(url,
		nats.Name("caseregistry"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(nc, jetstream.WithPublishAsyncErrHandler(func(_ jetstream.JetStream, msg *nats.Msg, err error) {
		logger.Error("nats publish failed",
			"subject", msg.Subject,
			"key", msg.Header.Get(HeaderKey),
			"error", err,
		)
	}))
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     stream,
		Subjects: subjects,
		Storage:  jetstream.FileStorage,
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream %s: %w", stream, err)
	}
	return &Bus{nc: nc, js: js, stream: stream, durable: durable, logger: logger}, nil
}

// Publish sends payload without waiting for the stream ack.
func (b *Bus) Publish(_ context.Context, topic, key string, payload any) error {
	msg, err := newMsg(topic, key, payload)
	if err != nil {
		return err
	}
	if _, err := b.js.PublishMsgAsync(msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe consumes with a durable explicit-ack consumer until ctx is done.
// A handler error naks the message for redelivery.
func (b *Bus) Subscribe(ctx context.Context, topics []string, h bus.Handler) error {
	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.stream, jetstream.ConsumerConfig{
		Name:           b.durable,
		Durable:        b.durable,
		FilterSubjects: topics,
		DeliverPolicy:  jetstream.DeliverAllPolicy,
		AckPolicy:      jetstream.AckExplicitPolicy,
		MaxDeliver:     5,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", b.durable, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := h(ctx, msg.Subject(), msg.Data()); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				"subject", msg.Subject(),
				"error", err,
			)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}
	<-ctx.Done()
	consumeCtx.Stop()
	return nil
}

// Close drains pending async publishes and closes the connection.
func (b *Bus) Close() error {
	select {
	case <-b.js.PublishAsyncComplete():
	case <-time.After(5 * time.Second):
		b.logger.Warn("nats close: pending publishes not acknowledged")
	}
	return b.nc.Drain()
}

func newMsg(topic, key string, payload any) (*nats.Msg, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal event for %s: %w", topic, err)
	}
	msg := nats.NewMsg(topic)
	msg.Data = data
	msg.Header.Set(HeaderKey, key)
	return msg, nil
}
