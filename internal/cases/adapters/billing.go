package adapters

import (
	"context"
	"fmt"
	"net/http"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// BillingClient raises filing-fee demands.
type BillingClient struct {
	client          jsonClient
	businessService string
}

var _ ports.Billing = (*BillingClient)(nil)

func NewBillingClient(httpClient *http.Client, baseURL, businessService string) *BillingClient {
	return &BillingClient{client: newJSONClient(httpClient, baseURL), businessService: businessService}
}

type demandPayer struct {
	UUID string `json:"uuid,omitempty"`
}

type demand struct {
	TenantID        string      `json:"tenantId"`
	ConsumerCode    string      `json:"consumerCode"`
	ConsumerType    string      `json:"consumerType"`
	BusinessService string      `json:"businessService"`
	Payer           demandPayer `json:"payer"`
}

type demandRequest struct {
	RequestInfo models.RequestInfo `json:"RequestInfo"`
	Demands     []demand           `json:"Demands"`
}

// CreateDemand raises one demand keyed by the filing number.
func (c *BillingClient) CreateDemand(ctx context.Context, info models.RequestInfo, cc models.CourtCase) error {
	d := demand{
		TenantID:        cc.TenantID,
		ConsumerCode:    cc.FilingNumber,
		ConsumerType:    "case",
		BusinessService: c.businessService,
	}
	if info.UserInfo != nil {
		d.Payer.UUID = info.UserInfo.UUID
	}
	if err := c.client.post(ctx, "/billing-service/demand/_create", nil, demandRequest{RequestInfo: info, Demands: []demand{d}}, nil); err != nil {
		return fmt.Errorf("create demand for %s: %w", cc.FilingNumber, err)
	}
	return nil
}
