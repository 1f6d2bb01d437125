package adapters

import (
	"context"
	"fmt"
	"net/http"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// MDMSClient reads reference data from the master data service.
type MDMSClient struct {
	client jsonClient
}

var _ ports.ReferenceData = (*MDMSClient)(nil)

func NewMDMSClient(httpClient *http.Client, baseURL string) *MDMSClient {
	return &MDMSClient{client: newJSONClient(httpClient, baseURL)}
}

type mdmsMaster struct {
	Name string `json:"name"`
}

type mdmsModule struct {
	ModuleName    string       `json:"moduleName"`
	MasterDetails []mdmsMaster `json:"masterDetails"`
}

type mdmsCriteria struct {
	TenantID      string       `json:"tenantId"`
	ModuleDetails []mdmsModule `json:"moduleDetails"`
}

type mdmsRequest struct {
	RequestInfo  models.RequestInfo `json:"RequestInfo"`
	MdmsCriteria mdmsCriteria       `json:"MdmsCriteria"`
}

type mdmsResponse struct {
	MdmsRes models.MasterData `json:"MdmsRes"`
}

func (c *MDMSClient) Fetch(ctx context.Context, info models.RequestInfo, tenantID, module string, masters []string) (models.MasterData, error) {
	details := make([]mdmsMaster, len(masters))
	for i, m := range masters {
		details[i] = mdmsMaster{Name: m}
	}
	req := mdmsRequest{
		RequestInfo: info,
		MdmsCriteria: mdmsCriteria{
			TenantID:      tenantID,
			ModuleDetails: []mdmsModule{{ModuleName: module, MasterDetails: details}},
		},
	}
	var resp mdmsResponse
	if err := c.client.post(ctx, "/egov-mdms-service/v1/_search", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("mdms search %s/%s: %w", tenantID, module, err)
	}
	if resp.MdmsRes == nil {
		return models.MasterData{}, nil
	}
	return resp.MdmsRes, nil
}
