package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "caseregistry/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})
}

type sampleRequest struct {
	Name string `json:"name"`
}

func (r *sampleRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name   string
		body   string
		ok     bool
		status int
	}{
		{name: "valid body", body: `{"name":"x"}`, ok: true},
		{name: "empty body", body: ``, status: http.StatusBadRequest},
		{name: "malformed body", body: `{`, status: http.StatusBadRequest},
		{name: "validation failure", body: `{"name":""}`, status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))

			req, ok := DecodeAndPrepare[sampleRequest](w, r, logger, context.Background(), "req-1")
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if tc.ok {
				if req.Name != "x" {
					t.Fatalf("expected decoded name, got %q", req.Name)
				}
				return
			}
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	RegisterStatus("CUSTOM_NOT_FOUND", http.StatusNotFound)

	if got := StatusOf(dErrors.New("CUSTOM_NOT_FOUND", "gone")); got != http.StatusNotFound {
		t.Fatalf("expected registered status, got %d", got)
	}
	if got := StatusOf(dErrors.New("UNREGISTERED", "x")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unregistered code, got %d", got)
	}
	if got := StatusOf(io.EOF); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for uncoded error, got %d", got)
	}
}
