// Package validator holds the create and update rules for case records.
package validator

import (
	"context"
	"fmt"
	"log/slog"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	dErrors "caseregistry/pkg/domain-errors"
)

// ReferenceModule and ReferenceMasters name the reference data an update
// depends on.
const ReferenceModule = "case"

var ReferenceMasters = []string{"ComplainantType", "CaseCategory", "PaymentMode", "ResolutionMechanism"}

// CaseFinder looks up stored records by filing number.
type CaseFinder interface {
	FindByFilingNumber(ctx context.Context, filingNumber string) ([]models.CourtCase, error)
}

// LinkGuard rejects links to already registered cases.
type LinkGuard interface {
	AssertNotAlreadyRegistered(ctx context.Context, linkedCaseID string, info models.RequestInfo) error
}

type Validator struct {
	finder    CaseFinder
	reference ports.ReferenceData
	identity  ports.Identity
	documents ports.Documents
	advocates ports.Advocates
	linkGuard LinkGuard
	logger    *slog.Logger
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

func New(
	finder CaseFinder,
	reference ports.ReferenceData,
	identity ports.Identity,
	documents ports.Documents,
	advocates ports.Advocates,
	linkGuard LinkGuard,
	opts ...Option,
) *Validator {
	v := &Validator{
		finder:    finder,
		reference: reference,
		identity:  identity,
		documents: documents,
		advocates: advocates,
		linkGuard: linkGuard,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateCreate checks the mandatory fields of every record. The first
// failing record and field is reported.
func (v *Validator) ValidateCreate(_ context.Context, req models.CaseRequest) error {
	for _, c := range req.Cases {
		if err := requireMandatory(c); err != nil {
			return err
		}
		if req.RequestInfo.UserInfo == nil {
			return dErrors.New(models.CodeCreateCase, models.MsgUserInfoRequired)
		}
	}
	return nil
}

// ValidateUpdate checks that the case exists and that every reference it
// carries resolves. It returns true once the case is known to exist.
//
// A collaborator answering "no" yields a coded error; a collaborator failing
// outright yields a plain error for the caller to wrap.
func (v *Validator) ValidateUpdate(ctx context.Context, c models.CourtCase, info models.RequestInfo) (bool, error) {
	existing, err := v.finder.FindByFilingNumber(ctx, c.FilingNumber)
	if err != nil {
		return false, err
	}
	if len(existing) == 0 {
		return false, dErrors.New(models.CodeValidation, models.MsgCaseNotFound)
	}
	stored := existing[0]
	if c.ID != "" && c.ID != stored.ID {
		return true, dErrors.New(models.CodeValidation, models.MsgCaseIDMismatch)
	}
	// The stored record is held to the create rules, under the create code.
	if err := requireMandatory(stored); err != nil {
		return true, err
	}

	master, err := v.reference.Fetch(ctx, info, stored.TenantID, ReferenceModule, ReferenceMasters)
	if err != nil {
		return true, fmt.Errorf("fetch reference data: %w", err)
	}
	if _, ok := master[ReferenceModule]; !ok {
		return true, dErrors.New(models.CodeMDMSNotFound, models.MsgMDMSNotFound)
	}

	for _, litigant := range c.Litigants {
		ok, err := v.identity.Exists(ctx, info, litigant.IndividualID)
		if err != nil {
			return true, fmt.Errorf("lookup individual %s: %w", litigant.IndividualID, err)
		}
		if !ok {
			return true, dErrors.New(models.CodeIndividualMissing, models.MsgInvalidComplainant)
		}
	}

	for _, doc := range c.Documents {
		ok, err := v.documents.Exists(ctx, c.TenantID, doc.FileStore)
		if err != nil {
			return true, fmt.Errorf("lookup file %s: %w", doc.FileStore, err)
		}
		if !ok {
			return true, dErrors.New(models.CodeInvalidFileStore, models.MsgInvalidDocument)
		}
	}

	for _, rep := range c.Representatives {
		ok, err := v.advocates.Exists(ctx, info, rep.AdvocateID)
		if err != nil {
			return true, fmt.Errorf("lookup advocate %s: %w", rep.AdvocateID, err)
		}
		if !ok {
			return true, dErrors.New(models.CodeInvalidAdvocate, models.MsgInvalidAdvocate)
		}
	}

	for _, linked := range c.LinkedCases {
		if err := v.linkGuard.AssertNotAlreadyRegistered(ctx, linked.ID, info); err != nil {
			if !dErrors.IsCoded(err) {
				v.logger.WarnContext(ctx, "linked case check failed",
					"linked_case_id", linked.ID,
					"error", err,
				)
			}
			return true, err
		}
	}

	return true, nil
}

func requireMandatory(c models.CourtCase) error {
	switch {
	case c.TenantID == "":
		return dErrors.New(models.CodeCreateCase, models.MsgTenantRequired)
	case c.FilingDate == 0:
		return dErrors.New(models.CodeCreateCase, models.MsgFilingDateRequired)
	case c.CaseCategory == "":
		return dErrors.New(models.CodeCreateCase, models.MsgCategoryRequired)
	case len(c.StatutesAndSections) == 0:
		return dErrors.New(models.CodeCreateCase, models.MsgStatutesRequired)
	case len(c.Litigants) == 0:
		return dErrors.New(models.CodeCreateCase, models.MsgLitigantsRequired)
	}
	return nil
}
