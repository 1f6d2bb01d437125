// Package linkguard rejects links to cases that are already registered.
//
// The guard searches through the case service, and the case service validates
// through the guard. The cycle is broken by binding the searcher after both
// are constructed.
package linkguard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"caseregistry/internal/cases/models"
	dErrors "caseregistry/pkg/domain-errors"
)

// ErrUnbound is returned when the guard is used before Bind.
var ErrUnbound = errors.New("linked case guard has no searcher bound")

// Searcher is the search entry point of the case service.
type Searcher interface {
	SearchCases(ctx context.Context, req models.CaseSearchRequest) ([]models.CaseCriteria, error)
}

type Guard struct {
	mu       sync.RWMutex
	searcher Searcher
}

func New() *Guard {
	return &Guard{}
}

// Bind sets the searcher. Rebinding replaces the previous one.
func (g *Guard) Bind(s Searcher) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.searcher = s
}

// AssertNotAlreadyRegistered fails with INVALID_LINKEDCASE_ID when a search by
// the linked case id returns any record. A link without an id fails the same
// way without searching.
func (g *Guard) AssertNotAlreadyRegistered(ctx context.Context, linkedCaseID string, info models.RequestInfo) error {
	if strings.TrimSpace(linkedCaseID) == "" {
		return dErrors.New(models.CodeInvalidLinkedCase, models.MsgInvalidLinkedCase)
	}
	g.mu.RLock()
	s := g.searcher
	g.mu.RUnlock()
	if s == nil {
		return ErrUnbound
	}

	results, err := s.SearchCases(ctx, models.CaseSearchRequest{
		RequestInfo: info,
		Criteria:    []models.CaseCriteria{{CaseID: linkedCaseID}},
	})
	if err != nil {
		return err
	}
	for _, criterion := range results {
		if len(criterion.ResponseList) > 0 {
			return dErrors.New(models.CodeInvalidLinkedCase, models.MsgInvalidLinkedCase)
		}
	}
	return nil
}
