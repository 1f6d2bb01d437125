package testutil

import (
	"net/http"
	"time"

	"caseregistry/pkg/requestcontext"
)

// WithCaller adds an authenticated caller to the request context.
// This simulates what the auth middleware does for a valid bearer token.
func WithCaller(req *http.Request, caller requestcontext.CallerInfo) *http.Request {
	return req.WithContext(requestcontext.WithCaller(req.Context(), caller))
}

// WithRequestMeta adds the request id and request time the request
// middleware would set.
func WithRequestMeta(req *http.Request, requestID string, now time.Time) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	ctx = requestcontext.WithTime(ctx, now)
	return req.WithContext(ctx)
}
