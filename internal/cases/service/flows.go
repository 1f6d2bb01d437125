package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"caseregistry/internal/cases/encryption"
	"caseregistry/internal/cases/models"
	dErrors "caseregistry/pkg/domain-errors"
)

// CreateCase registers every record in req. The sealed records are published
// on the create topic once for the whole request; the plaintext records are
// returned.
func (s *Service) CreateCase(ctx context.Context, req models.CaseRequest) (_ []models.CourtCase, err error) {
	ctx, end := s.begin(ctx, flowCreate, attribute.Int("cases", len(req.Cases)))
	defer func() { end(err) }()

	out, err := s.createCase(ctx, req)
	if err != nil {
		return nil, s.translate(ctx, flowCreate, err)
	}
	return out, nil
}

func (s *Service) createCase(ctx context.Context, req models.CaseRequest) ([]models.CourtCase, error) {
	if err := s.deps.Validator.ValidateCreate(ctx, req); err != nil {
		return nil, err
	}
	if len(req.Cases) == 0 {
		return []models.CourtCase{}, nil
	}

	enriched := make([]models.CourtCase, len(req.Cases))
	for i, c := range req.Cases {
		e, err := s.deps.Enricher.EnrichCreate(ctx, req.RequestInfo, c.Clone())
		if err != nil {
			return nil, fmt.Errorf("enrich case: %w", err)
		}
		enriched[i] = e
	}

	for i := range enriched {
		status, err := s.deps.Workflow.Advance(ctx, req.RequestInfo, enriched[i])
		if err != nil {
			return nil, fmt.Errorf("advance workflow for %s: %w", enriched[i].FilingNumber, err)
		}
		enriched[i].Status = status
	}

	if err := s.emit(ctx, s.createTopic, req.RequestInfo, enriched); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cases created",
		"count", len(enriched),
		"filing_number", enriched[0].FilingNumber,
	)
	return enriched, nil
}

// UpdateCase validates every record before touching anything, then advances
// each through the workflow and applies the side effect its new status calls
// for. The sealed records are published on the update topic once for the
// whole request; the plaintext records are returned.
func (s *Service) UpdateCase(ctx context.Context, req models.CaseRequest) (_ []models.CourtCase, err error) {
	ctx, end := s.begin(ctx, flowUpdate, attribute.Int("cases", len(req.Cases)))
	defer func() { end(err) }()

	out, err := s.updateCase(ctx, req)
	if err != nil {
		return nil, s.translate(ctx, flowUpdate, err)
	}
	return out, nil
}

func (s *Service) updateCase(ctx context.Context, req models.CaseRequest) ([]models.CourtCase, error) {
	for _, c := range req.Cases {
		exists, err := s.deps.Validator.ValidateUpdate(ctx, c, req.RequestInfo)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, dErrors.New(models.CodeValidation, models.MsgCaseNotFound)
		}
	}
	if len(req.Cases) == 0 {
		return []models.CourtCase{}, nil
	}

	updated := make([]models.CourtCase, len(req.Cases))
	for i, c := range req.Cases {
		bound, err := s.bindStored(ctx, c.Clone())
		if err != nil {
			return nil, err
		}
		e, err := s.deps.Enricher.EnrichUpdate(ctx, req.RequestInfo, bound)
		if err != nil {
			return nil, fmt.Errorf("enrich case: %w", err)
		}
		updated[i] = e
	}

	for i := range updated {
		status, err := s.deps.Workflow.Advance(ctx, req.RequestInfo, updated[i])
		if err != nil {
			return nil, fmt.Errorf("advance workflow for %s: %w", updated[i].FilingNumber, err)
		}
		updated[i].Status = status

		next, err := s.applyTransitions(ctx, req.RequestInfo, updated[i])
		if err != nil {
			return nil, err
		}
		updated[i] = next
	}

	if err := s.emit(ctx, s.updateTopic, req.RequestInfo, updated); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cases updated",
		"count", len(updated),
		"filing_number", updated[0].FilingNumber,
		"status", updated[0].Status,
	)
	return updated, nil
}

// bindStored gives a record sent without an id the id of the current stored
// record for its filing number, so the update replaces that record.
func (s *Service) bindStored(ctx context.Context, c models.CourtCase) (models.CourtCase, error) {
	if c.ID != "" {
		return c, nil
	}
	existing, err := s.deps.Resolver.FindByFilingNumber(ctx, c.FilingNumber)
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("find stored case %s: %w", c.FilingNumber, err)
	}
	if len(existing) == 0 || existing[0].ID == "" {
		return models.CourtCase{}, dErrors.New(models.CodeValidation, models.MsgCaseNotFound)
	}
	c.ID = existing[0].ID
	return c, nil
}

// applyTransitions runs every side effect c.Status triggers, in order.
func (s *Service) applyTransitions(ctx context.Context, info models.RequestInfo, c models.CourtCase) (models.CourtCase, error) {
	for _, t := range s.statuses.TransitionsFor(c.Status) {
		next, err := s.applyTransition(ctx, info, c, t)
		if err != nil {
			return models.CourtCase{}, err
		}
		c = next
	}
	return c, nil
}

func (s *Service) applyTransition(ctx context.Context, info models.RequestInfo, c models.CourtCase, t models.Transition) (models.CourtCase, error) {
	switch t := t.(type) {
	case models.DemandTransition:
		if err := s.deps.Billing.CreateDemand(ctx, info, c); err != nil {
			return models.CourtCase{}, fmt.Errorf("create demand for %s: %w", c.FilingNumber, err)
		}
		s.metrics.IncrementSideEffect("demand")
		return c, nil

	case models.AdmissionTransition:
		withCode, err := s.deps.Enricher.AssignAccessCode(ctx, c)
		if err != nil {
			return models.CourtCase{}, fmt.Errorf("assign access code for %s: %w", c.FilingNumber, err)
		}
		if withCode.AccessCode == "" {
			return models.CourtCase{}, fmt.Errorf("assign access code for %s: no code assigned", c.FilingNumber)
		}
		numbered, err := s.deps.Enricher.AssignCaseNumbers(ctx, withCode)
		if err != nil {
			return models.CourtCase{}, fmt.Errorf("assign case numbers for %s: %w", c.FilingNumber, err)
		}
		s.metrics.IncrementSideEffect("admission")
		return numbered, nil

	case models.NoTransition:
		s.logger.DebugContext(ctx, "no side effect for status",
			"filing_number", c.FilingNumber,
			"status", t.Status,
		)
		return c, nil

	default:
		return models.CourtCase{}, fmt.Errorf("unhandled transition %T", t)
	}
}

// emit seals every record and publishes them as one event.
func (s *Service) emit(ctx context.Context, topic string, info models.RequestInfo, cases []models.CourtCase) error {
	sealed := make([]models.CourtCase, len(cases))
	for i, c := range cases {
		enc, err := s.deps.Encryptor.Encrypt(ctx, c, encryption.SchemaCourtCase)
		if err != nil {
			return fmt.Errorf("encrypt case: %w", err)
		}
		sealed[i] = enc
	}
	event := models.CaseEvent{RequestInfo: info, Cases: sealed}
	if err := s.deps.Publisher.Publish(ctx, topic, cases[0].TenantID, event); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// SearchCases runs every criterion and returns them with their matches
// attached. Each match carries its current workflow state and is decrypted
// after that state is attached. Criteria run concurrently; matches within a
// criterion keep repository order.
//
// Identified callers get their records opened; anonymous callers get them
// masked.
func (s *Service) SearchCases(ctx context.Context, req models.CaseSearchRequest) (_ []models.CaseCriteria, err error) {
	ctx, end := s.begin(ctx, flowSearch, attribute.Int("criteria", len(req.Criteria)))
	defer func() { end(err) }()

	out, err := s.searchCases(ctx, req)
	if err != nil {
		return nil, s.translate(ctx, flowSearch, err)
	}
	return out, nil
}

func (s *Service) searchCases(ctx context.Context, req models.CaseSearchRequest) ([]models.CaseCriteria, error) {
	for _, criterion := range req.Criteria {
		if criterion.Empty() {
			return nil, dErrors.New(models.CodeValidation, models.MsgCriterionNoFilter)
		}
	}

	mode := encryption.ModeSelf
	if req.RequestInfo.UserInfo == nil {
		mode = encryption.ModeMasked
	}

	results := make([]models.CaseCriteria, len(req.Criteria))
	g, gctx := errgroup.WithContext(ctx)
	for i, criterion := range req.Criteria {
		if criterion.TenantID == "" {
			criterion.TenantID = req.TenantID
		}
		g.Go(func() error {
			matches, err := s.deps.Repo.Search(gctx, criterion)
			if err != nil {
				return fmt.Errorf("search cases: %w", err)
			}
			resolved := make([]models.CourtCase, 0, len(matches))
			for _, m := range matches {
				r, err := s.resolveMatch(gctx, req.RequestInfo, m, mode)
				if err != nil {
					return err
				}
				resolved = append(resolved, r)
			}
			criterion.ResponseList = resolved
			results[i] = criterion
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolveMatch attaches the workflow state to m, then decrypts it.
func (s *Service) resolveMatch(ctx context.Context, info models.RequestInfo, m models.CourtCase, mode string) (models.CourtCase, error) {
	instance, err := s.deps.Workflow.CurrentInstance(ctx, info, m.TenantID, m.FilingNumber)
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("current workflow instance for %s: %w", m.FilingNumber, err)
	}
	wf, err := s.deps.Workflow.StatusOf(ctx, instance)
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("workflow status for %s: %w", m.FilingNumber, err)
	}
	m.Workflow = &wf

	dec, err := s.deps.Encryptor.Decrypt(ctx, m, mode, info)
	if err != nil {
		return models.CourtCase{}, fmt.Errorf("decrypt case %s: %w", m.ID, err)
	}
	return dec, nil
}

// ExistCases answers each check in order.
func (s *Service) ExistCases(ctx context.Context, req models.CaseExistsRequest) (_ []models.CaseExists, err error) {
	ctx, end := s.begin(ctx, flowExists, attribute.Int("checks", len(req.Criteria)))
	defer func() { end(err) }()

	out, err := s.deps.Resolver.Exists(ctx, req.Criteria)
	if err != nil {
		return nil, s.translate(ctx, flowExists, err)
	}
	return out, nil
}
