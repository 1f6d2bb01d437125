// Package httputil holds the JSON request/response helpers shared by the HTTP handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "caseregistry/pkg/domain-errors"
)

// MaxBodyBytes caps decoded request bodies.
const MaxBodyBytes = 4 << 20

// Validatable is implemented by request bodies that check and normalize
// themselves after decoding.
type Validatable interface {
	Validate() error
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// statusFor maps domain codes to HTTP statuses. Codes owned by a bounded
// context register themselves through RegisterStatus.
var statusFor = map[dErrors.Code]int{
	dErrors.CodeBadRequest:         http.StatusBadRequest,
	dErrors.CodeInvalidInput:       http.StatusBadRequest,
	dErrors.CodeInvalidRequest:     http.StatusBadRequest,
	dErrors.CodeValidation:         http.StatusBadRequest,
	dErrors.CodeNotFound:           http.StatusNotFound,
	dErrors.CodeConflict:           http.StatusConflict,
	dErrors.CodeUnauthorized:       http.StatusUnauthorized,
	dErrors.CodeForbidden:          http.StatusForbidden,
	dErrors.CodeTimeout:            http.StatusGatewayTimeout,
	dErrors.CodeInvariantViolation: http.StatusUnprocessableEntity,
	dErrors.CodeInternal:           http.StatusInternalServerError,
}

// RegisterStatus maps an additional domain code to an HTTP status.
// Call it during init only.
func RegisterStatus(code dErrors.Code, status int) {
	statusFor[code] = status
}

// StatusOf returns the HTTP status for err. Uncoded errors are 500.
func StatusOf(err error) int {
	code, ok := dErrors.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if status, ok := statusFor[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError renders err as {"error", "error_description"}. Internal errors
// never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	code, ok := dErrors.CodeOf(err)
	if !ok || code == dErrors.CodeInternal {
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: string(dErrors.CodeInternal)})
		return
	}
	WriteJSON(w, status, errorResponse{Error: string(code), Description: dErrors.Message(err)})
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeAndPrepare decodes the body into T and runs its Validate method.
// On failure it writes the error response and returns ok=false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		logger.WarnContext(ctx, "failed to decode request",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, msg))
		return nil, false
	}

	if err := PT(&req).Validate(); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}
