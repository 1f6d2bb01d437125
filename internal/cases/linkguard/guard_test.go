package linkguard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseregistry/internal/cases/models"
	dErrors "caseregistry/pkg/domain-errors"
)

type stubSearcher struct {
	results []models.CaseCriteria
	err     error
	got     []models.CaseSearchRequest
}

func (s *stubSearcher) SearchCases(_ context.Context, req models.CaseSearchRequest) ([]models.CaseCriteria, error) {
	s.got = append(s.got, req)
	return s.results, s.err
}

func TestAssertNotAlreadyRegistered(t *testing.T) {
	ctx := context.Background()
	info := models.RequestInfo{UserInfo: &models.UserInfo{UUID: "u-1"}}

	t.Run("resolvable id is rejected", func(t *testing.T) {
		s := &stubSearcher{results: []models.CaseCriteria{{
			CaseID:       "linked-1",
			ResponseList: []models.CourtCase{{ID: "linked-1"}},
		}}}
		g := New()
		g.Bind(s)

		err := g.AssertNotAlreadyRegistered(ctx, "linked-1", info)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, models.CodeInvalidLinkedCase))
		assert.Equal(t, models.MsgInvalidLinkedCase, dErrors.Message(err))

		require.Len(t, s.got, 1)
		assert.Equal(t, []models.CaseCriteria{{CaseID: "linked-1"}}, s.got[0].Criteria)
		assert.Equal(t, info, s.got[0].RequestInfo)
	})

	t.Run("unresolvable id passes", func(t *testing.T) {
		g := New()
		g.Bind(&stubSearcher{results: []models.CaseCriteria{{CaseID: "linked-2"}}})
		require.NoError(t, g.AssertNotAlreadyRegistered(ctx, "linked-2", info))
	})

	t.Run("search failure propagates", func(t *testing.T) {
		g := New()
		g.Bind(&stubSearcher{err: assert.AnError})
		require.ErrorIs(t, g.AssertNotAlreadyRegistered(ctx, "linked-3", info), assert.AnError)
	})

	t.Run("blank id is rejected without searching", func(t *testing.T) {
		s := &stubSearcher{}
		g := New()
		g.Bind(s)

		for _, id := range []string{"", "  "} {
			err := g.AssertNotAlreadyRegistered(ctx, id, info)
			assert.True(t, dErrors.HasCode(err, models.CodeInvalidLinkedCase))
		}
		assert.Empty(t, s.got)
	})

	t.Run("unbound guard fails", func(t *testing.T) {
		require.ErrorIs(t, New().AssertNotAlreadyRegistered(ctx, "linked-4", info), ErrUnbound)
	})
}
