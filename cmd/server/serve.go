package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"caseregistry/internal/cases/adapters"
	"caseregistry/internal/cases/encryption"
	"caseregistry/internal/cases/enrichment"
	"caseregistry/internal/cases/handler"
	"caseregistry/internal/cases/linkguard"
	casemetrics "caseregistry/internal/cases/metrics"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/persister"
	"caseregistry/internal/cases/ports"
	"caseregistry/internal/cases/resolver"
	"caseregistry/internal/cases/service"
	"caseregistry/internal/cases/store"
	"caseregistry/internal/cases/validator"
	jwttoken "caseregistry/internal/jwt_token"
	"caseregistry/internal/platform/bus"
	"caseregistry/internal/platform/config"
	"caseregistry/internal/platform/fieldcrypt"
	"caseregistry/internal/platform/httpserver"
	"caseregistry/internal/platform/kafka"
	"caseregistry/internal/platform/logger"
	platformmetrics "caseregistry/internal/platform/metrics"
	"caseregistry/internal/platform/natsbus"
	"caseregistry/internal/platform/postgres"
	platformredis "caseregistry/internal/platform/redis"
	authmw "caseregistry/pkg/platform/middleware/auth"
	"caseregistry/pkg/platform/middleware/device"
	"caseregistry/pkg/platform/middleware/metadata"
	"caseregistry/pkg/platform/middleware/request"
	"caseregistry/pkg/platform/middleware/requesttime"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the case registry HTTP service and persister",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger.New(cfg.Server.LogLevel))
		},
	}
}

// infra holds the connections opened at startup, closed in reverse order.
type infra struct {
	db      *sql.DB
	redis   *platformredis.Client
	closers []func()
}

func (i *infra) onClose(fn func()) {
	i.closers = append(i.closers, fn)
}

func (i *infra) close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		i.closers[j]()
	}
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	caseMetrics := casemetrics.New(reg)
	httpMetrics := platformmetrics.New(reg)

	in := &infra{}
	defer in.close()

	if cfg.Postgres.DSN != "" {
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		in.db = db
		in.onClose(func() { _ = db.Close() })
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		in.redis = redisClient
		in.onClose(func() { _ = redisClient.Close() })
	}

	repo, writer := buildStore(in)
	publisher, subscriber, err := buildBus(ctx, cfg, log, in)
	if err != nil {
		return err
	}
	collab, err := buildCollaborators(ctx, cfg, log, in, caseMetrics)
	if err != nil {
		return err
	}

	cipher, err := fieldcrypt.New([]byte(cfg.Encryption.MasterKey))
	if err != nil {
		return err
	}
	var seq enrichment.Sequencer = enrichment.NewMemorySequencer()
	if in.redis != nil {
		seq = enrichment.NewRedisSequencer(in.redis, "")
	}

	res := resolver.New(repo)
	guard := linkguard.New()
	val := validator.New(res, collab.reference, collab.identity, collab.documents, collab.advocates, guard,
		validator.WithLogger(log))
	svc, err := service.New(service.Deps{
		Validator: val,
		Resolver:  res,
		Repo:      repo,
		Workflow:  collab.workflow,
		Billing:   collab.billing,
		Enricher:  enrichment.New(seq),
		Encryptor: encryption.New(cipher),
		Publisher: publisher,
	},
		service.WithLogger(log),
		service.WithMetrics(caseMetrics),
		service.WithTopics(cfg.Topics.Create, cfg.Topics.Update),
		service.WithStatuses(models.TransitionStatuses{
			CreateDemand: cfg.Workflow.CreateDemandStatus,
			Admitted:     cfg.Workflow.AdmittedStatus,
		}),
	)
	if err != nil {
		return fmt.Errorf("case service: %w", err)
	}
	guard.Bind(svc)

	p, err := persister.New(writer, []string{cfg.Topics.Create, cfg.Topics.Update},
		persister.WithLogger(log),
		persister.WithMetrics(caseMetrics),
	)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := p.Run(runCtx, subscriber); err != nil {
			log.ErrorContext(runCtx, "persister stopped", "error", err)
		}
	}()

	router := newRouter(cfg, log, svc, in, httpMetrics)
	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "starting caseregistry",
			"addr", cfg.Server.Addr,
			"bus", cfg.Bus.Type,
			"postgres", in.db != nil,
			"redis", in.redis != nil,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			cancel()
			wg.Wait()
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	cancel()
	wg.Wait()
	return nil
}

func buildStore(in *infra) (ports.Repository, ports.CaseWriter) {
	if in.db != nil {
		s := store.NewPostgres(in.db)
		return s, s
	}
	s := store.NewMemory()
	return s, s
}

func buildBus(ctx context.Context, cfg config.Config, log *slog.Logger, in *infra) (ports.EventPublisher, bus.Subscriber, error) {
	topics := []string{cfg.Topics.Create, cfg.Topics.Update}
	switch cfg.Bus.Type {
	case config.BusKafka:
		producer, err := kafka.NewProducer(cfg.Bus.Kafka.Brokers, log)
		if err != nil {
			return nil, nil, err
		}
		in.onClose(func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := producer.Flush(flushCtx); err != nil {
				log.Error("kafka flush failed", "error", err)
			}
			producer.Close()
		})
		if err := kafka.EnsureTopics(ctx, producer.Client(), cfg.Bus.Kafka.Partitions, cfg.Bus.Kafka.ReplicationFactor, topics...); err != nil {
			return nil, nil, err
		}
		return producer, kafka.NewConsumer(cfg.Bus.Kafka.Brokers, cfg.Bus.Kafka.ConsumerGroup, log), nil
	case config.BusNATS:
		nb, err := natsbus.Connect(ctx, cfg.Bus.NATS.URL, cfg.Bus.NATS.Stream, cfg.Bus.NATS.QueueGroup, topics, log)
		if err != nil {
			return nil, nil, err
		}
		in.onClose(func() { _ = nb.Close() })
		return nb, nb, nil
	default:
		mb := bus.NewMemory(0, log)
		in.onClose(mb.Close)
		return mb, mb, nil
	}
}

type collaborators struct {
	workflow  ports.Workflow
	identity  ports.Identity
	advocates ports.Advocates
	documents ports.Documents
	reference ports.ReferenceData
	billing   ports.Billing
}

// buildCollaborators uses the platform services whose URLs are configured
// and local stand-ins for the rest.
func buildCollaborators(ctx context.Context, cfg config.Config, log *slog.Logger, in *infra, m *casemetrics.Metrics) (collaborators, error) {
	c := cfg.Collaborators
	client := adapters.NewHTTPClient(c.Timeout)
	out := collaborators{
		workflow:  adapters.NewLocalWorkflow(nil),
		identity:  adapters.AllowAll{},
		advocates: adapters.AllowAll{},
		documents: adapters.AllowAllDocuments{},
		reference: adapters.StaticReferenceData{},
		billing:   adapters.LoggingBilling{Logger: log},
	}
	if c.WorkflowURL != "" {
		out.workflow = adapters.NewWorkflowClient(client, c.WorkflowURL, cfg.Workflow.BusinessService, cfg.Workflow.ModuleName)
	}
	if c.IndividualURL != "" {
		out.identity = adapters.NewIndividualClient(client, c.IndividualURL)
	}
	if c.AdvocateURL != "" {
		out.advocates = adapters.NewAdvocateClient(client, c.AdvocateURL)
	}
	if c.MDMSURL != "" {
		out.reference = adapters.NewMDMSClient(client, c.MDMSURL)
	}
	if c.BillingURL != "" {
		out.billing = adapters.NewBillingClient(client, c.BillingURL, cfg.Workflow.BusinessService)
	}
	if in.redis != nil {
		out.reference = adapters.NewCachedReferenceData(out.reference, adapters.NewRedisCache(in.redis), cfg.Reference.CacheTTL, log, m)
	}
	if cfg.S3.Bucket != "" {
		docs, err := adapters.NewS3Documents(ctx, adapters.S3Config{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
		if err != nil {
			return collaborators{}, err
		}
		out.documents = docs
	}
	return out, nil
}

func newRouter(cfg config.Config, log *slog.Logger, svc handler.Service, in *infra, m *platformmetrics.Metrics) chi.Router {
	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)
	tokens := jwttoken.NewJWTServiceAdapter(jwtService)
	var revocations authmw.TokenRevocationChecker
	if in.redis != nil {
		revocations = authmw.NewRedisRevocationList(in.redis)
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(device.Middleware)
	r.Use(request.Recoverer(log))
	r.Use(request.Logger(log))
	r.Use(m.Middleware)

	checks := map[string]handler.HealthCheck{}
	if in.db != nil {
		checks["postgres"] = in.db.PingContext
	}
	if in.redis != nil {
		checks["redis"] = in.redis.Health
	}
	r.Get("/health", handler.Health(checks, 2*time.Second))
	r.Handle("/metrics", m.Handler())

	handler.New(svc, log, handler.WithAuth(
		authmw.RequireAuth(tokens, revocations, log),
		authmw.OptionalAuth(tokens, revocations, log),
	)).Register(r)
	return r
}
