package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// AdvocateClient checks representatives against the advocate directory.
type AdvocateClient struct {
	client jsonClient
}

var _ ports.Advocates = (*AdvocateClient)(nil)

func NewAdvocateClient(httpClient *http.Client, baseURL string) *AdvocateClient {
	return &AdvocateClient{client: newJSONClient(httpClient, baseURL)}
}

type advocateCriteria struct {
	ID           string            `json:"id"`
	ResponseList []json.RawMessage `json:"responseList,omitempty"`
}

type advocateSearchRequest struct {
	RequestInfo models.RequestInfo `json:"RequestInfo"`
	Criteria    []advocateCriteria `json:"criteria"`
}

type advocateSearchResponse struct {
	Advocates []advocateCriteria `json:"advocates"`
}

func (c *AdvocateClient) Exists(ctx context.Context, info models.RequestInfo, advocateID string) (bool, error) {
	if advocateID == "" {
		return false, nil
	}
	var resp advocateSearchResponse
	req := advocateSearchRequest{RequestInfo: info, Criteria: []advocateCriteria{{ID: advocateID}}}
	if err := c.client.post(ctx, "/advocate/advocate/v1/_search", nil, req, &resp); err != nil {
		return false, fmt.Errorf("advocate search %s: %w", advocateID, err)
	}
	for _, a := range resp.Advocates {
		if len(a.ResponseList) > 0 {
			return true, nil
		}
	}
	return false, nil
}
