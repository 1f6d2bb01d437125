//go:build integration

package kafka_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caseregistry/internal/platform/kafka"
	"caseregistry/pkg/testutil/containers"
)

type KafkaSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
}

func TestKafkaSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSuite))
}

func (s *KafkaSuite) SetupSuite() {
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
}

func (s *KafkaSuite) TestPublishedEventsReachTheConsumerGroup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	producer, err := kafka.NewProducer(s.redpanda.Brokers, slog.Default())
	s.Require().NoError(err)
	defer producer.Close()

	topic := "save-case-application-it"
	s.Require().NoError(kafka.EnsureTopics(ctx, producer.Client(), 1, 1, topic))
	s.Require().NoError(kafka.EnsureTopics(ctx, producer.Client(), 1, 1, topic), "existing topics are not an error")

	var (
		mu       sync.Mutex
		received []string
	)
	consumeCtx, stop := context.WithCancel(ctx)
	defer stop()
	consumer := kafka.NewConsumer(s.redpanda.Brokers, "case-persister-it", slog.Default())
	done := make(chan error, 1)
	go func() {
		done <- consumer.Subscribe(consumeCtx, []string{topic}, func(_ context.Context, gotTopic string, payload []byte) error {
			mu.Lock()
			defer mu.Unlock()
			received = append(received, gotTopic+":"+string(payload))
			return nil
		})
	}()

	s.Require().NoError(producer.Publish(ctx, topic, "pg", map[string]string{"id": "c-1"}))
	s.Require().NoError(producer.Flush(ctx))

	s.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 20*time.Second, 100*time.Millisecond)

	mu.Lock()
	s.Equal(topic+`:{"id":"c-1"}`, received[0])
	mu.Unlock()

	stop()
	s.NoError(<-done)
}
