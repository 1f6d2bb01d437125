package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseregistry/internal/cases/adapters"
	"caseregistry/internal/cases/encryption"
	"caseregistry/internal/cases/enrichment"
	"caseregistry/internal/cases/linkguard"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/persister"
	"caseregistry/internal/cases/resolver"
	"caseregistry/internal/cases/store"
	"caseregistry/internal/cases/validator"
	"caseregistry/internal/platform/fieldcrypt"
	dErrors "caseregistry/pkg/domain-errors"
)

// persistingPublisher hands every event straight to the persister, so a
// flow's writes are visible as soon as it returns.
type persistingPublisher struct {
	p *persister.Persister
}

func (pp persistingPublisher) Publish(ctx context.Context, topic, _ string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return pp.p.Handle(ctx, topic, raw)
}

func newWiredService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()

	repo := store.NewMemory()
	p, err := persister.New(repo, []string{DefaultCreateTopic, DefaultUpdateTopic})
	require.NoError(t, err)
	cipher, err := fieldcrypt.New(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	res := resolver.New(repo)
	guard := linkguard.New()
	v := validator.New(res, adapters.StaticReferenceData{}, adapters.AllowAll{}, adapters.AllowAllDocuments{}, adapters.AllowAll{}, guard)

	svc, err := New(Deps{
		Validator: v,
		Resolver:  res,
		Repo:      repo,
		Workflow:  adapters.NewLocalWorkflow(nil),
		Billing:   adapters.LoggingBilling{},
		Enricher:  enrichment.New(enrichment.NewMemorySequencer()),
		Encryptor: encryption.New(cipher),
		Publisher: persistingPublisher{p: p},
	})
	require.NoError(t, err)
	guard.Bind(svc)
	return svc, repo
}

func TestUpdateKeepsOneRecordPerFilingNumber(t *testing.T) {
	ctx := context.Background()
	info := models.RequestInfo{UserInfo: &models.UserInfo{UUID: "user-1", TenantID: "pg"}}

	setup := func(t *testing.T) (*Service, *store.MemoryStore, models.CourtCase) {
		svc, repo := newWiredService(t)
		created, err := svc.CreateCase(ctx, models.CaseRequest{RequestInfo: info, Cases: []models.CourtCase{newCase()}})
		require.NoError(t, err)
		require.Len(t, created, 1)
		require.NotEmpty(t, created[0].ID)
		return svc, repo, created[0]
	}

	rows := func(t *testing.T, repo *store.MemoryStore, filingNumber string) []models.CourtCase {
		got, err := repo.Search(ctx, models.CaseCriteria{FilingNumber: filingNumber})
		require.NoError(t, err)
		return got
	}

	t.Run("update without an id replaces the stored record", func(t *testing.T) {
		svc, repo, created := setup(t)

		change := created.Clone()
		change.ID = ""
		change.Workflow = &models.Workflow{Action: "SUBMIT"}
		out, err := svc.UpdateCase(ctx, models.CaseRequest{RequestInfo: info, Cases: []models.CourtCase{change}})
		require.NoError(t, err)
		assert.Equal(t, created.ID, out[0].ID)

		stored := rows(t, repo, created.FilingNumber)
		require.Len(t, stored, 1)
		assert.Equal(t, created.ID, stored[0].ID)
		assert.Equal(t, DefaultCreateDemandStatus, stored[0].Status)
	})

	t.Run("update carrying another case's id is refused", func(t *testing.T) {
		svc, repo, created := setup(t)

		change := created.Clone()
		change.ID = "someone-else"
		_, err := svc.UpdateCase(ctx, models.CaseRequest{RequestInfo: info, Cases: []models.CourtCase{change}})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, models.CodeValidation))
		assert.Equal(t, models.MsgCaseIDMismatch, dErrors.Message(err))

		stored := rows(t, repo, created.FilingNumber)
		require.Len(t, stored, 1)
		assert.Equal(t, created.ID, stored[0].ID)
	})

	t.Run("blank linked case is refused without listing the store", func(t *testing.T) {
		svc, repo, created := setup(t)

		change := created.Clone()
		change.LinkedCases = []models.LinkedCase{{ID: ""}}
		_, err := svc.UpdateCase(ctx, models.CaseRequest{RequestInfo: info, Cases: []models.CourtCase{change}})
		assert.True(t, dErrors.HasCode(err, models.CodeInvalidLinkedCase))
		assert.Len(t, rows(t, repo, created.FilingNumber), 1)
	})

	t.Run("criterion without a filter is refused", func(t *testing.T) {
		svc, _, _ := setup(t)

		out, err := svc.SearchCases(ctx, models.CaseSearchRequest{Criteria: []models.CaseCriteria{{}}})
		assert.Nil(t, out)
		assert.True(t, dErrors.HasCode(err, models.CodeValidation))
		assert.Equal(t, models.MsgCriterionNoFilter, dErrors.Message(err))
	})
}
