// Package kafka publishes and consumes case events with franz-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer hands records to franz-go's buffered producer. Delivery failures
// surface in the log through the produce callback.
type Producer struct {
	client *kgo.Client
	logger *slog.Logger
}

func NewProducer(brokers []string, logger *slog.Logger, opts ...kgo.Opt) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers")
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(5 * time.Millisecond),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Producer{client: client, logger: logger}, nil
}

// Publish serializes payload and produces it asynchronously. The record
// outlives the caller's cancellation so that a finished request still emits.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload any) error {
	rec, err := newRecord(topic, key, payload)
	if err != nil {
		return err
	}
	p.client.Produce(context.WithoutCancel(ctx), rec, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("kafka produce failed",
				"topic", r.Topic,
				"key", string(r.Key),
				"error", err,
			)
		}
	})
	return nil
}

// Flush waits for buffered records.
func (p *Producer) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

func (p *Producer) Close() {
	p.client.Close()
}

// Client exposes the underlying client for admin calls.
func (p *Producer) Client() *kgo.Client {
	return p.client
}

func newRecord(topic, key string, payload any) (*kgo.Record, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal event for %s: %w", topic, err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}

// EnsureTopics creates topics that do not exist yet.
func EnsureTopics(ctx context.Context, client *kgo.Client, partitions int32, replication int16, topics ...string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, partitions, replication, nil, topics...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, t := range resp.Sorted() {
		if t.Err != nil && !errors.Is(t.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", t.Topic, t.Err)
		}
	}
	return nil
}
