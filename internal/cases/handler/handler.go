// Package handler exposes the case flows over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caseregistry/internal/cases/models"
	dErrors "caseregistry/pkg/domain-errors"
	"caseregistry/pkg/platform/httputil"
	"caseregistry/pkg/requestcontext"
)

func init() {
	for _, code := range []dErrors.Code{
		models.CodeCreateCase,
		models.CodeUpdateCase,
		models.CodeSearchCase,
		models.CodeCaseExist,
		models.CodeValidation,
		models.CodeMDMSNotFound,
		models.CodeIndividualMissing,
		models.CodeInvalidFileStore,
		models.CodeInvalidAdvocate,
		models.CodeInvalidLinkedCase,
	} {
		httputil.RegisterStatus(code, http.StatusBadRequest)
	}
}

// Service defines the case flows served over HTTP.
type Service interface {
	CreateCase(ctx context.Context, req models.CaseRequest) ([]models.CourtCase, error)
	UpdateCase(ctx context.Context, req models.CaseRequest) ([]models.CourtCase, error)
	SearchCases(ctx context.Context, req models.CaseSearchRequest) ([]models.CaseCriteria, error)
	ExistCases(ctx context.Context, req models.CaseExistsRequest) ([]models.CaseExists, error)
}

type Middleware func(http.Handler) http.Handler

func passthrough(next http.Handler) http.Handler { return next }

// Handler wires the case endpoints to the case service.
type Handler struct {
	service      Service
	logger       *slog.Logger
	requireAuth  Middleware
	optionalAuth Middleware
}

type Option func(*Handler)

// WithAuth sets the middleware guarding the write and read endpoints.
// Create and update use required; search and exists use optional.
func WithAuth(required, optional Middleware) Option {
	return func(h *Handler) {
		if required != nil {
			h.requireAuth = required
		}
		if optional != nil {
			h.optionalAuth = optional
		}
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		service:      service,
		logger:       logger,
		requireAuth:  passthrough,
		optionalAuth: passthrough,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the case endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/case/v1", func(r chi.Router) {
		r.With(h.requireAuth).Post("/_create", h.HandleCreate)
		r.With(h.requireAuth).Post("/_update", h.HandleUpdate)
		r.With(h.optionalAuth).Post("/_search", h.HandleSearch)
		r.With(h.optionalAuth).Post("/_exists", h.HandleExists)
	})
}

// HandleCreate handles POST /case/v1/_create.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CaseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	caseReq := models.CaseRequest(*req)
	caseReq.RequestInfo = withCaller(ctx, caseReq.RequestInfo)

	cases, err := h.service.CreateCase(ctx, caseReq)
	if err != nil {
		h.logFailure(ctx, "create", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "cases created",
		"request_id", requestID,
		"count", len(cases),
	)
	httputil.WriteJSON(w, http.StatusOK, CaseResponse{
		ResponseInfo: responseInfo(caseReq.RequestInfo, requestID, requestcontext.Now(ctx)),
		Cases:        cases,
	})
}

// HandleUpdate handles POST /case/v1/_update.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CaseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	caseReq := models.CaseRequest(*req)
	caseReq.RequestInfo = withCaller(ctx, caseReq.RequestInfo)

	cases, err := h.service.UpdateCase(ctx, caseReq)
	if err != nil {
		h.logFailure(ctx, "update", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "cases updated",
		"request_id", requestID,
		"count", len(cases),
	)
	httputil.WriteJSON(w, http.StatusOK, CaseResponse{
		ResponseInfo: responseInfo(caseReq.RequestInfo, requestID, requestcontext.Now(ctx)),
		Cases:        cases,
	})
}

// HandleSearch handles POST /case/v1/_search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SearchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	searchReq := models.CaseSearchRequest(*req)
	searchReq.RequestInfo = withCaller(ctx, searchReq.RequestInfo)

	criteria, err := h.service.SearchCases(ctx, searchReq)
	if err != nil {
		h.logFailure(ctx, "search", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SearchResponse{
		ResponseInfo: responseInfo(searchReq.RequestInfo, requestID, requestcontext.Now(ctx)),
		Criteria:     criteria,
	})
}

// HandleExists handles POST /case/v1/_exists.
func (h *Handler) HandleExists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExistsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	existsReq := models.CaseExistsRequest(*req)
	existsReq.RequestInfo = withCaller(ctx, existsReq.RequestInfo)

	criteria, err := h.service.ExistCases(ctx, existsReq)
	if err != nil {
		h.logFailure(ctx, "exists", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ExistsResponse{
		ResponseInfo: responseInfo(existsReq.RequestInfo, requestID, requestcontext.Now(ctx)),
		Criteria:     criteria,
	})
}

func (h *Handler) logFailure(ctx context.Context, flow, requestID string, err error) {
	if httputil.StatusOf(err) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "case request failed",
			"request_id", requestID,
			"flow", flow,
			"error", err,
		)
		return
	}
	h.logger.WarnContext(ctx, "case request rejected",
		"request_id", requestID,
		"flow", flow,
		"error", err,
	)
}

// withCaller fills in UserInfo from the authenticated caller when the body
// does not carry one.
func withCaller(ctx context.Context, info models.RequestInfo) models.RequestInfo {
	if info.UserInfo != nil {
		return info
	}
	caller, ok := requestcontext.Caller(ctx)
	if !ok {
		return info
	}
	user := &models.UserInfo{
		UUID:     caller.UUID,
		UserName: caller.UserName,
		Type:     caller.Type,
		TenantID: caller.TenantID,
	}
	for _, role := range caller.Roles {
		user.Roles = append(user.Roles, models.Role{Code: role, TenantID: caller.TenantID})
	}
	info.UserInfo = user
	return info
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Health serves GET /health with the state of each named dependency.
func Health(checks map[string]HealthCheck, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		status := http.StatusOK
		body := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				body[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			body[name] = "ok"
		}
		httputil.WriteJSON(w, status, body)
	}
}
