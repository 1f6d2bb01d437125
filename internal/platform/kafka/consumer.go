package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"caseregistry/internal/platform/bus"
)

const (
	retryBackoff    = 200 * time.Millisecond
	maxRetryBackoff = 30 * time.Second
	commitTimeout   = 5 * time.Second
)

// Consumer reads topics as a member of a consumer group. A record's offset is
// committed only after its handler succeeds.
type Consumer struct {
	brokers []string
	group   string
	logger  *slog.Logger
	opts    []kgo.Opt
}

var _ bus.Subscriber = (*Consumer)(nil)

func NewConsumer(brokers []string, group string, logger *slog.Logger, opts ...kgo.Opt) *Consumer {
	return &Consumer{brokers: brokers, group: group, logger: logger, opts: opts}
}

// Subscribe polls until ctx is cancelled. A failing record is retried with
// backoff and blocks the records behind it; if ctx ends first, the record
// stays uncommitted and is delivered again to the next group member.
func (c *Consumer) Subscribe(ctx context.Context, topics []string, h bus.Handler) error {
	if len(c.brokers) == 0 {
		return errors.New("kafka: no brokers")
	}
	opts := append([]kgo.Opt{
		kgo.SeedBrokers(c.brokers...),
		kgo.ConsumerGroup(c.group),
		kgo.ConsumeTopics(topics...),
		kgo.DisableAutoCommit(),
	}, c.opts...)
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	defer client.Close()

	for {
		fetches := client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.ErrorContext(ctx, "kafka fetch failed",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})

		handled := make([]*kgo.Record, 0, fetches.NumRecords())
		for _, r := range fetches.Records() {
			if !c.deliver(ctx, h, r, retryBackoff, maxRetryBackoff) {
				break
			}
			handled = append(handled, r)
		}
		if len(handled) == 0 {
			continue
		}

		commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
		err := client.CommitRecords(commitCtx, handled...)
		cancel()
		if err != nil {
			c.logger.ErrorContext(ctx, "kafka commit failed", "error", err)
		}
	}
}

// deliver runs h on r until it succeeds, doubling the wait between attempts
// up to maxBackoff. It reports false when ctx ends before a success.
func (c *Consumer) deliver(ctx context.Context, h bus.Handler, r *kgo.Record, backoff, maxBackoff time.Duration) bool {
	for attempt := 1; ; attempt++ {
		err := h(ctx, r.Topic, r.Value)
		if err == nil {
			return true
		}
		c.logger.ErrorContext(ctx, "event handler failed",
			"topic", r.Topic,
			"partition", r.Partition,
			"offset", r.Offset,
			"attempt", attempt,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}
