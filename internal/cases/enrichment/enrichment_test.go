package enrichment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseregistry/internal/cases/models"
	"caseregistry/pkg/requestcontext"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func info() models.RequestInfo {
	return models.RequestInfo{UserInfo: &models.UserInfo{UUID: "user-1"}}
}

func draft() models.CourtCase {
	return models.CourtCase{
		TenantID:            "pg.citya",
		FilingDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		CaseCategory:        "CIVIL",
		StatutesAndSections: []models.StatuteSection{{Statute: "S.1"}},
		Litigants:           []models.Party{{IndividualID: "ind-1"}},
		Representatives: []models.AdvocateMapping{{
			AdvocateID:   "adv-1",
			Representing: []models.Party{{IndividualID: "ind-1"}},
		}},
		Documents:   []models.Document{{FileStore: "fs-1"}},
		LinkedCases: []models.LinkedCase{{ID: "other"}},
	}
}

func TestEnrichCreate(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), fixedNow)
	e := New(NewMemorySequencer())

	first, err := e.EnrichCreate(ctx, info(), draft())
	require.NoError(t, err)
	second, err := e.EnrichCreate(ctx, info(), draft())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "PG-000001-2024", first.FilingNumber)
	assert.Equal(t, "PG-000002-2024", second.FilingNumber)
	assert.True(t, first.IsActive)

	require.NotNil(t, first.AuditDetails)
	assert.Equal(t, "user-1", first.AuditDetails.CreatedBy)
	assert.Equal(t, fixedNow.UnixMilli(), first.AuditDetails.CreatedTime)

	lit := first.Litigants[0]
	assert.NotEmpty(t, lit.ID)
	assert.Equal(t, first.ID, lit.CaseID)
	assert.Equal(t, "pg.citya", lit.TenantID)
	assert.True(t, lit.IsActive)

	rep := first.Representatives[0]
	assert.NotEmpty(t, rep.ID)
	assert.NotEmpty(t, rep.Representing[0].ID)
	assert.NotEmpty(t, first.Documents[0].ID)
	assert.NotEmpty(t, first.StatutesAndSections[0].ID)
	assert.True(t, first.LinkedCases[0].IsActive)
}

func TestEnrichUpdate(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), fixedNow)
	e := New(NewMemorySequencer())

	c := draft()
	c.ID = "case-1"
	c.Litigants[0].ID = "existing"
	c.Litigants = append(c.Litigants, models.Party{IndividualID: "ind-2"})
	c.AuditDetails = &models.AuditDetails{CreatedBy: "creator", CreatedTime: 1}

	out, err := e.EnrichUpdate(ctx, info(), c)
	require.NoError(t, err)
	assert.Equal(t, "existing", out.Litigants[0].ID)
	assert.NotEmpty(t, out.Litigants[1].ID)
	assert.Equal(t, "case-1", out.Litigants[1].CaseID)
	assert.Equal(t, "creator", out.AuditDetails.CreatedBy)
	assert.Equal(t, "user-1", out.AuditDetails.LastModifiedBy)
	assert.Equal(t, fixedNow.UnixMilli(), out.AuditDetails.LastModifiedTime)
}

func TestAdmissionNumbering(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), fixedNow)
	e := New(NewMemorySequencer(), WithAccessCodeLength(8))

	t.Run("numbering requires an access code", func(t *testing.T) {
		_, err := e.AssignCaseNumbers(ctx, draft())
		require.ErrorIs(t, err, ErrNoAccessCode)
	})

	t.Run("access code then numbers", func(t *testing.T) {
		withCode, err := e.AssignAccessCode(ctx, draft())
		require.NoError(t, err)
		assert.Len(t, withCode.AccessCode, 8)

		numbered, err := e.AssignCaseNumbers(ctx, withCode)
		require.NoError(t, err)
		assert.Equal(t, "CS/1/2024", numbered.CaseNumber)
		assert.Equal(t, "PGCI000000012024", numbered.CNRNumber)
		assert.Equal(t, fixedNow.UnixMilli(), numbered.RegistrationDate)

		again, err := e.AssignCaseNumbers(ctx, numbered)
		require.NoError(t, err)
		assert.Equal(t, numbered.CaseNumber, again.CaseNumber)
		assert.Equal(t, numbered.CNRNumber, again.CNRNumber)
	})

	t.Run("existing access code is kept", func(t *testing.T) {
		c := draft()
		c.AccessCode = "KEEPME"
		out, err := e.AssignAccessCode(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, "KEEPME", out.AccessCode)
	})
}
