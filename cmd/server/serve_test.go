package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseregistry/internal/cases/adapters"
	"caseregistry/internal/cases/store"
	"caseregistry/internal/platform/bus"
	"caseregistry/internal/platform/config"
	platformmetrics "caseregistry/internal/platform/metrics"
	"caseregistry/pkg/testutil"
)

func TestBuildCollaboratorsFallsBackToLocal(t *testing.T) {
	cfg := config.Defaults()
	c, err := buildCollaborators(context.Background(), cfg, slog.Default(), &infra{}, nil)
	require.NoError(t, err)

	assert.IsType(t, &adapters.LocalWorkflow{}, c.workflow)
	assert.IsType(t, adapters.AllowAll{}, c.identity)
	assert.IsType(t, adapters.AllowAllDocuments{}, c.documents)
	assert.IsType(t, adapters.StaticReferenceData{}, c.reference)
	assert.IsType(t, adapters.LoggingBilling{}, c.billing)
}

func TestBuildCollaboratorsUsesConfiguredServices(t *testing.T) {
	cfg := config.Defaults()
	cfg.Collaborators.WorkflowURL = "http://workflow"
	cfg.Collaborators.IndividualURL = "http://individual"
	cfg.Collaborators.AdvocateURL = "http://advocate"
	cfg.Collaborators.MDMSURL = "http://mdms"
	cfg.Collaborators.BillingURL = "http://billing"

	c, err := buildCollaborators(context.Background(), cfg, slog.Default(), &infra{}, nil)
	require.NoError(t, err)

	assert.IsType(t, &adapters.WorkflowClient{}, c.workflow)
	assert.IsType(t, &adapters.IndividualClient{}, c.identity)
	assert.IsType(t, &adapters.AdvocateClient{}, c.advocates)
	assert.IsType(t, &adapters.MDMSClient{}, c.reference)
	assert.IsType(t, &adapters.BillingClient{}, c.billing)
}

func TestBuildStoreAndBusDefaultToMemory(t *testing.T) {
	in := &infra{}
	defer in.close()

	repo, writer := buildStore(in)
	assert.IsType(t, &store.MemoryStore{}, repo)
	assert.Same(t, repo, writer)

	pub, sub, err := buildBus(context.Background(), config.Defaults(), slog.Default(), in)
	require.NoError(t, err)
	assert.IsType(t, &bus.Memory{}, pub)
	assert.Same(t, pub, sub)
}

func TestRouter(t *testing.T) {
	testutil.Given(t, "a router without infrastructure", func(t *testing.T) {
		cfg := config.Defaults()
		m := platformmetrics.New(prometheus.NewRegistry())
		r := newRouter(cfg, slog.Default(), nil, &infra{}, m)

		testutil.When(t, "health is requested", func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			testutil.Then(t, "it reports healthy", func(t *testing.T) {
				assert.Equal(t, http.StatusOK, rec.Code)
			})
		})

		testutil.When(t, "an anonymous caller creates a case", func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/case/v1/_create", strings.NewReader(`{}`)))

			testutil.Then(t, "it is unauthorized and carries a request id", func(t *testing.T) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			})
		})
	})
}
