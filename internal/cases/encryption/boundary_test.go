package encryption

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/platform/fieldcrypt"
)

func newBoundary(t *testing.T) *Boundary {
	t.Helper()
	c, err := fieldcrypt.New(bytes.Repeat([]byte("m"), 32))
	require.NoError(t, err)
	return New(c)
}

func sensitiveCase() models.CourtCase {
	return models.CourtCase{
		ID:                  "case-1",
		TenantID:            "pg",
		FilingNumber:        "PG-000001-2024",
		FilingDate:          1704067200000,
		CaseCategory:        "CIVIL",
		StatutesAndSections: []models.StatuteSection{{Statute: "S.1"}},
		Litigants: []models.Party{
			{IndividualID: "ind-1", AdditionalDetails: json.RawMessage(`{"phone":"9999999999"}`)},
			{IndividualID: "ind-2"},
		},
		Representatives: []models.AdvocateMapping{{
			AdvocateID:        "adv-1",
			AdditionalDetails: json.RawMessage(`{"barNo":"K/1/2020"}`),
			Representing:      []models.Party{{IndividualID: "ind-1", AdditionalDetails: json.RawMessage(`{"role":"complainant"}`)}},
		}},
		CaseDetails: json.RawMessage(`{"summary":"property dispute", "amount": 12000}`),
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := newBoundary(t)
	original := sensitiveCase()
	snapshot := original.Clone()

	sealed, err := b.Encrypt(ctx, original, SchemaCourtCase)
	require.NoError(t, err)

	assert.Equal(t, snapshot, original, "input must not be modified")
	assert.True(t, isSealed(sealed.CaseDetails))
	assert.True(t, isSealed(sealed.Litigants[0].AdditionalDetails))
	assert.Nil(t, sealed.Litigants[1].AdditionalDetails)
	assert.True(t, isSealed(sealed.Representatives[0].AdditionalDetails))
	assert.True(t, isSealed(sealed.Representatives[0].Representing[0].AdditionalDetails))
	assert.Equal(t, original.FilingNumber, sealed.FilingNumber)

	opened, err := b.Decrypt(ctx, sealed, ModeSelf, models.RequestInfo{})
	require.NoError(t, err)
	assert.Equal(t, original, opened)
}

func TestEncryptIsIdempotent(t *testing.T) {
	ctx := context.Background()
	b := newBoundary(t)

	once, err := b.Encrypt(ctx, sensitiveCase(), SchemaCourtCase)
	require.NoError(t, err)
	twice, err := b.Encrypt(ctx, once, SchemaCourtCase)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestDecryptMasked(t *testing.T) {
	ctx := context.Background()
	b := newBoundary(t)

	sealed, err := b.Encrypt(ctx, sensitiveCase(), SchemaCourtCase)
	require.NoError(t, err)

	view, err := b.Decrypt(ctx, sealed, ModeMasked, models.RequestInfo{})
	require.NoError(t, err)
	assert.JSONEq(t, `"********"`, string(view.CaseDetails))
	assert.JSONEq(t, `"********"`, string(view.Litigants[0].AdditionalDetails))
}

func TestDecryptPassesPlaintextThrough(t *testing.T) {
	b := newBoundary(t)
	plain := sensitiveCase()

	got, err := b.Decrypt(context.Background(), plain, ModeSelf, models.RequestInfo{})
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestUnknownSchemaAndMode(t *testing.T) {
	ctx := context.Background()
	b := newBoundary(t)

	_, err := b.Encrypt(ctx, sensitiveCase(), "Advocate")
	require.Error(t, err)
	_, err = b.Decrypt(ctx, sensitiveCase(), "Nope", models.RequestInfo{})
	require.Error(t, err)
}

func TestDecryptFailsWhole(t *testing.T) {
	ctx := context.Background()
	b := newBoundary(t)

	sealed, err := b.Encrypt(ctx, sensitiveCase(), SchemaCourtCase)
	require.NoError(t, err)
	sealed.TenantID = "kl"

	_, err = b.Decrypt(ctx, sealed, ModeSelf, models.RequestInfo{})
	require.Error(t, err)
}
