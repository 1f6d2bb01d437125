// Package adapters implements the collaborator ports over HTTP, Redis and S3,
// plus local stand-ins for running without the platform services.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"caseregistry/pkg/platform/sentinel"
)

const maxErrorBodySize = 4096

// NewHTTPClient returns the client shared by the collaborator adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// StatusError is returned for any non-2xx collaborator response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.URL, e.Status, e.Body)
}

// Unwrap lets callers match 404 and 5xx responses against the sentinel errors.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return sentinel.ErrNotFound
	case e.Status >= 500:
		return sentinel.ErrUnavailable
	default:
		return nil
	}
}

type jsonClient struct {
	http    *http.Client
	baseURL string
}

func newJSONClient(httpClient *http.Client, baseURL string) jsonClient {
	return jsonClient{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// post sends body as JSON to path with query and decodes the response into out.
func (c jsonClient) post(ctx context.Context, path string, query url.Values, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &StatusError{URL: c.baseURL + path, Status: resp.StatusCode, Body: string(b)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
