package store

import (
	"context"
	"slices"
	"sync"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// MemoryStore keeps cases in a map keyed by id.
type MemoryStore struct {
	mu    sync.RWMutex
	cases map[string]models.CourtCase
}

var (
	_ ports.Repository = (*MemoryStore)(nil)
	_ ports.CaseWriter = (*MemoryStore)(nil)
)

func NewMemory() *MemoryStore {
	return &MemoryStore{cases: make(map[string]models.CourtCase)}
}

func (s *MemoryStore) Upsert(_ context.Context, cases []models.CourtCase) error {
	if err := requireIDs(cases); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cases {
		if prev, ok := s.cases[c.ID]; ok && prev.AuditDetails != nil && c.AuditDetails != nil {
			c = c.Clone()
			c.AuditDetails.CreatedBy = prev.AuditDetails.CreatedBy
			c.AuditDetails.CreatedTime = prev.AuditDetails.CreatedTime
		}
		s.cases[c.ID] = c.Clone()
	}
	return nil
}

func (s *MemoryStore) Search(_ context.Context, criteria models.CaseCriteria) ([]models.CourtCase, error) {
	s.mu.RLock()
	matches := make([]models.CourtCase, 0)
	for _, c := range s.cases {
		if matchesCriteria(c, criteria) {
			matches = append(matches, c.Clone())
		}
	}
	s.mu.RUnlock()

	newestFirst(matches)
	return page(matches, criteria.Limit, criteria.Offset), nil
}

func (s *MemoryStore) ExistsBatch(_ context.Context, checks []models.CaseExists) ([]models.CaseExists, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CaseExists, len(checks))
	for i, check := range checks {
		check.Exists = false
		if !emptyCheck(check) {
			for _, c := range s.cases {
				if matchesCheck(c, check) {
					check.Exists = true
					break
				}
			}
		}
		out[i] = check
	}
	return out, nil
}

func matchesCriteria(c models.CourtCase, f models.CaseCriteria) bool {
	switch {
	case f.TenantID != "" && c.TenantID != f.TenantID:
		return false
	case f.CaseID != "" && c.ID != f.CaseID:
		return false
	case f.FilingNumber != "" && c.FilingNumber != f.FilingNumber:
		return false
	case f.CNRNumber != "" && c.CNRNumber != f.CNRNumber:
		return false
	case f.CourtCaseNum != "" && c.CaseNumber != f.CourtCaseNum:
		return false
	case f.CourtID != "" && c.CourtID != f.CourtID:
		return false
	case f.Status != "" && c.Status != f.Status:
		return false
	case f.FilingFromDate > 0 && c.FilingDate < f.FilingFromDate:
		return false
	case f.FilingToDate > 0 && c.FilingDate > f.FilingToDate:
		return false
	case f.LitigantID != "" && !slices.Contains(litigantIDs(c), f.LitigantID):
		return false
	case f.AdvocateID != "" && !slices.Contains(advocateIDs(c), f.AdvocateID):
		return false
	}
	return true
}

func emptyCheck(e models.CaseExists) bool {
	return e.CaseID == "" && e.FilingNumber == "" && e.CNRNumber == "" && e.CourtCaseNumber == ""
}

func matchesCheck(c models.CourtCase, e models.CaseExists) bool {
	return (e.CaseID == "" || c.ID == e.CaseID) &&
		(e.FilingNumber == "" || c.FilingNumber == e.FilingNumber) &&
		(e.CNRNumber == "" || c.CNRNumber == e.CNRNumber) &&
		(e.CourtCaseNumber == "" || c.CaseNumber == e.CourtCaseNumber)
}
