// Package persister writes case records published on the create and update
// topics to the repository.
package persister

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"caseregistry/internal/cases/metrics"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	"caseregistry/internal/platform/bus"
)

type Persister struct {
	writer  ports.CaseWriter
	topics  []string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Persister)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Persister) {
		p.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Persister) {
		p.metrics = m
	}
}

func New(writer ports.CaseWriter, topics []string, opts ...Option) (*Persister, error) {
	if writer == nil {
		return nil, fmt.Errorf("case writer is required")
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("at least one topic is required")
	}
	p := &Persister{writer: writer, topics: topics, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run consumes events from sub until ctx is cancelled.
func (p *Persister) Run(ctx context.Context, sub bus.Subscriber) error {
	p.logger.InfoContext(ctx, "persister started", "topics", p.topics)
	return sub.Subscribe(ctx, p.topics, p.Handle)
}

// Handle decodes one event and upserts its records. Undecodable events are
// logged and dropped so that they do not block the stream.
func (p *Persister) Handle(ctx context.Context, topic string, payload []byte) error {
	var event models.CaseEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		p.logger.ErrorContext(ctx, "dropping undecodable case event",
			"topic", topic,
			"error", err,
		)
		return nil
	}
	if len(event.Cases) == 0 {
		return nil
	}
	if err := p.writer.Upsert(ctx, event.Cases); err != nil {
		return fmt.Errorf("persist %d cases from %s: %w", len(event.Cases), topic, err)
	}
	p.metrics.AddPersisted(topic, len(event.Cases))
	p.logger.DebugContext(ctx, "cases persisted",
		"topic", topic,
		"count", len(event.Cases),
	)
	return nil
}
