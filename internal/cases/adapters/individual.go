package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// IndividualClient checks litigants against the individual registry.
type IndividualClient struct {
	client jsonClient
}

var _ ports.Identity = (*IndividualClient)(nil)

func NewIndividualClient(httpClient *http.Client, baseURL string) *IndividualClient {
	return &IndividualClient{client: newJSONClient(httpClient, baseURL)}
}

type individualSearchRequest struct {
	RequestInfo models.RequestInfo `json:"RequestInfo"`
	Individual  struct {
		IndividualID []string `json:"individualId"`
	} `json:"Individual"`
}

type individualSearchResponse struct {
	Individual []struct {
		ID           string `json:"id"`
		IndividualID string `json:"individualId"`
	} `json:"Individual"`
}

func (c *IndividualClient) Exists(ctx context.Context, info models.RequestInfo, individualID string) (bool, error) {
	if individualID == "" {
		return false, nil
	}
	tenantID := ""
	if info.UserInfo != nil {
		tenantID = info.UserInfo.TenantID
	}
	q := url.Values{}
	q.Set("tenantId", tenantID)
	q.Set("limit", "1")
	q.Set("offset", "0")

	var req individualSearchRequest
	req.RequestInfo = info
	req.Individual.IndividualID = []string{individualID}

	var resp individualSearchResponse
	if err := c.client.post(ctx, "/individual/v1/_search", q, req, &resp); err != nil {
		return false, fmt.Errorf("individual search %s: %w", individualID, err)
	}
	return len(resp.Individual) > 0, nil
}
