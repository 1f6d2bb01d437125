// Package store persists case records. PostgresStore is the production
// implementation; MemoryStore backs local runs and tests.
package store

import (
	"errors"
	"fmt"
	"sort"

	"caseregistry/internal/cases/models"
)

// DefaultLimit bounds a search criterion that names no limit.
const DefaultLimit = 100

// ErrMissingID is returned when a record without an id is written.
var ErrMissingID = errors.New("case id is required")

// requireIDs fails the whole batch if any record lacks an id.
func requireIDs(cases []models.CourtCase) error {
	for _, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("upsert %s: %w", c.FilingNumber, ErrMissingID)
		}
	}
	return nil
}

func createdTime(c models.CourtCase) int64 {
	if c.AuditDetails == nil {
		return 0
	}
	return c.AuditDetails.CreatedTime
}

func lastModifiedTime(c models.CourtCase) int64 {
	if c.AuditDetails == nil {
		return 0
	}
	return c.AuditDetails.LastModifiedTime
}

func litigantIDs(c models.CourtCase) []string {
	ids := make([]string, 0, len(c.Litigants))
	for _, l := range c.Litigants {
		if l.IndividualID != "" {
			ids = append(ids, l.IndividualID)
		}
	}
	return ids
}

func advocateIDs(c models.CourtCase) []string {
	ids := make([]string, 0, len(c.Representatives))
	for _, r := range c.Representatives {
		if r.AdvocateID != "" {
			ids = append(ids, r.AdvocateID)
		}
	}
	return ids
}

// newestFirst orders by creation time descending, then id for stability.
func newestFirst(cases []models.CourtCase) {
	sort.SliceStable(cases, func(i, j int) bool {
		ti, tj := createdTime(cases[i]), createdTime(cases[j])
		if ti != tj {
			return ti > tj
		}
		return cases[i].ID < cases[j].ID
	})
}

func page(cases []models.CourtCase, limit, offset int) []models.CourtCase {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset >= len(cases) {
		return []models.CourtCase{}
	}
	end := offset + limit
	if end > len(cases) {
		end = len(cases)
	}
	return cases[offset:end]
}
