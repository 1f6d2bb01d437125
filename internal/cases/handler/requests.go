package handler

import (
	"strings"

	"caseregistry/internal/cases/models"
	dErrors "caseregistry/pkg/domain-errors"
)

// maxBatch bounds the number of records or criteria in one request.
const maxBatch = 100

// CaseRequest is the body of POST /case/v1/_create and /case/v1/_update.
type CaseRequest models.CaseRequest

// Validate implements httputil.Validatable.
func (r *CaseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Cases) == 0 {
		return dErrors.New(dErrors.CodeValidation, "cases must not be empty")
	}
	if len(r.Cases) > maxBatch {
		return dErrors.New(dErrors.CodeValidation, "too many cases in one request")
	}
	for i := range r.Cases {
		r.Cases[i].TenantID = strings.TrimSpace(r.Cases[i].TenantID)
	}
	return nil
}

// SearchRequest is the body of POST /case/v1/_search.
type SearchRequest models.CaseSearchRequest

// Validate implements httputil.Validatable.
func (r *SearchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Criteria) == 0 {
		return dErrors.New(dErrors.CodeValidation, "criteria must not be empty")
	}
	if len(r.Criteria) > maxBatch {
		return dErrors.New(dErrors.CodeValidation, "too many criteria in one request")
	}
	for _, c := range r.Criteria {
		if c.Limit < 0 || c.Offset < 0 {
			return dErrors.New(dErrors.CodeValidation, "limit and offset must not be negative")
		}
		if c.Empty() {
			return dErrors.New(dErrors.CodeValidation, "each criterion must set at least one filter")
		}
	}
	return nil
}

// ExistsRequest is the body of POST /case/v1/_exists.
type ExistsRequest models.CaseExistsRequest

// Validate implements httputil.Validatable.
func (r *ExistsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Criteria) == 0 {
		return dErrors.New(dErrors.CodeValidation, "criteria must not be empty")
	}
	if len(r.Criteria) > maxBatch {
		return dErrors.New(dErrors.CodeValidation, "too many criteria in one request")
	}
	return nil
}
