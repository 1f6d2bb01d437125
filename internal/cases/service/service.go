// Package service orchestrates the create, update, search and exists flows
// for case records.
//
// Every flow validates before it causes any externally visible effect, and
// every flow translates errors exactly once, at its entry point: coded errors
// pass through unchanged, anything else is logged and wrapped with the flow's
// code.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"caseregistry/internal/cases/metrics"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	dErrors "caseregistry/pkg/domain-errors"
)

const (
	DefaultCreateTopic = "save-case-application"
	DefaultUpdateTopic = "update-case-application"

	DefaultCreateDemandStatus = "PAYMENT_PENDING"
	DefaultAdmittedStatus     = "CASE_ADMITTED"
)

// Validator applies the create and update rules.
type Validator interface {
	ValidateCreate(ctx context.Context, req models.CaseRequest) error
	ValidateUpdate(ctx context.Context, c models.CourtCase, info models.RequestInfo) (bool, error)
}

// ExistenceResolver answers batched existence checks and finds the stored
// records of a filing number, newest first.
type ExistenceResolver interface {
	Exists(ctx context.Context, checks []models.CaseExists) ([]models.CaseExists, error)
	FindByFilingNumber(ctx context.Context, filingNumber string) ([]models.CourtCase, error)
}

// Deps are the collaborators every flow needs.
type Deps struct {
	Validator Validator
	Resolver  ExistenceResolver
	Repo      ports.Repository
	Workflow  ports.Workflow
	Billing   ports.Billing
	Enricher  ports.Enricher
	Encryptor ports.Encryptor
	Publisher ports.EventPublisher
}

func (d Deps) validate() error {
	switch {
	case d.Validator == nil:
		return errors.New("validator is required")
	case d.Resolver == nil:
		return errors.New("resolver is required")
	case d.Repo == nil:
		return errors.New("repository is required")
	case d.Workflow == nil:
		return errors.New("workflow is required")
	case d.Billing == nil:
		return errors.New("billing is required")
	case d.Enricher == nil:
		return errors.New("enricher is required")
	case d.Encryptor == nil:
		return errors.New("encryptor is required")
	case d.Publisher == nil:
		return errors.New("publisher is required")
	}
	return nil
}

type Service struct {
	deps        Deps
	createTopic string
	updateTopic string
	statuses    models.TransitionStatuses
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithTopics overrides the create and update topics. Empty values keep the default.
func WithTopics(create, update string) Option {
	return func(s *Service) {
		if create != "" {
			s.createTopic = create
		}
		if update != "" {
			s.updateTopic = update
		}
	}
}

// WithStatuses overrides the statuses that trigger billing and admission.
func WithStatuses(statuses models.TransitionStatuses) Option {
	return func(s *Service) {
		s.statuses = statuses
	}
}

func New(deps Deps, opts ...Option) (*Service, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &Service{
		deps:        deps,
		createTopic: DefaultCreateTopic,
		updateTopic: DefaultUpdateTopic,
		statuses: models.TransitionStatuses{
			CreateDemand: DefaultCreateDemandStatus,
			Admitted:     DefaultAdmittedStatus,
		},
		logger: slog.Default(),
		tracer: otel.Tracer("caseregistry/cases"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type flow struct {
	name string
	code dErrors.Code
	// prefix is prepended to the message of wrapped errors.
	prefix string
}

var (
	flowCreate = flow{name: "create", code: models.CodeCreateCase}
	flowUpdate = flow{name: "update", code: models.CodeUpdateCase, prefix: models.MsgUpdatePrefix}
	flowSearch = flow{name: "search", code: models.CodeSearchCase}
	flowExists = flow{name: "exists", code: models.CodeCaseExist}
)

// begin opens a span for f. The returned func must be called with the
// flow's final error.
func (s *Service) begin(ctx context.Context, f flow, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "cases."+f.name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		s.metrics.ObserveFlow(f.name, time.Since(start))
		if err != nil {
			code, _ := dErrors.CodeOf(err)
			s.metrics.IncrementOutcome(f.name, string(code))
			span.RecordError(err)
			span.SetStatus(codes.Error, string(code))
		} else {
			s.metrics.IncrementOutcome(f.name, "ok")
		}
		span.End()
	}
}

// translate is the only place flow errors are converted.
func (s *Service) translate(ctx context.Context, f flow, err error) error {
	if dErrors.IsCoded(err) {
		return err
	}
	s.logger.ErrorContext(ctx, "case flow failed",
		"flow", f.name,
		"error", err,
	)
	return dErrors.Wrap(err, f.code, f.prefix+err.Error())
}
