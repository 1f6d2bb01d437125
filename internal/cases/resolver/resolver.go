// Package resolver answers "does this case exist" questions from the repository.
package resolver

import (
	"context"
	"fmt"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// Resolver never caches; every call is a fresh repository read.
type Resolver struct {
	repo ports.Repository
}

func New(repo ports.Repository) *Resolver {
	return &Resolver{repo: repo}
}

// FindByFilingNumber returns every stored record with the filing number,
// newest first. An empty result means the case does not exist.
func (r *Resolver) FindByFilingNumber(ctx context.Context, filingNumber string) ([]models.CourtCase, error) {
	if filingNumber == "" {
		return nil, nil
	}
	cases, err := r.repo.Search(ctx, models.CaseCriteria{FilingNumber: filingNumber})
	if err != nil {
		return nil, fmt.Errorf("search by filing number: %w", err)
	}
	return cases, nil
}

// Exists answers each check. The output has one entry per input in the same
// order; a repository answer of the wrong length is an error.
func (r *Resolver) Exists(ctx context.Context, checks []models.CaseExists) ([]models.CaseExists, error) {
	if len(checks) == 0 {
		return []models.CaseExists{}, nil
	}
	results, err := r.repo.ExistsBatch(ctx, checks)
	if err != nil {
		return nil, fmt.Errorf("exists batch: %w", err)
	}
	if len(results) != len(checks) {
		return nil, fmt.Errorf("exists batch: expected %d results, got %d", len(checks), len(results))
	}
	return results, nil
}
