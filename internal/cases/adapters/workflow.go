package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// WorkflowClient talks to the platform workflow service. The filing number
// is the business id of a case's process.
type WorkflowClient struct {
	client          jsonClient
	businessService string
	moduleName      string
}

var _ ports.Workflow = (*WorkflowClient)(nil)

func NewWorkflowClient(httpClient *http.Client, baseURL, businessService, moduleName string) *WorkflowClient {
	return &WorkflowClient{
		client:          newJSONClient(httpClient, baseURL),
		businessService: businessService,
		moduleName:      moduleName,
	}
}

type wfState struct {
	State             string `json:"state"`
	ApplicationStatus string `json:"applicationStatus"`
}

type wfAssignee struct {
	UUID string `json:"uuid"`
}

type wfProcessInstance struct {
	ID              string       `json:"id,omitempty"`
	TenantID        string       `json:"tenantId"`
	BusinessService string       `json:"businessService"`
	BusinessID      string       `json:"businessId"`
	ModuleName      string       `json:"moduleName"`
	Action          string       `json:"action,omitempty"`
	Comment         string       `json:"comment,omitempty"`
	Assignes        []wfAssignee `json:"assignes,omitempty"`
	State           *wfState     `json:"state,omitempty"`
}

type wfTransitionRequest struct {
	RequestInfo      models.RequestInfo  `json:"RequestInfo"`
	ProcessInstances []wfProcessInstance `json:"ProcessInstances"`
}

type wfSearchRequest struct {
	RequestInfo models.RequestInfo `json:"RequestInfo"`
}

type wfResponse struct {
	ProcessInstances []wfProcessInstance `json:"ProcessInstances"`
}

// Advance requests the action in c.Workflow and returns the resulting
// application status.
func (w *WorkflowClient) Advance(ctx context.Context, info models.RequestInfo, c models.CourtCase) (string, error) {
	pi := wfProcessInstance{
		TenantID:        c.TenantID,
		BusinessService: w.businessService,
		BusinessID:      c.FilingNumber,
		ModuleName:      w.moduleName,
	}
	if c.Workflow != nil {
		pi.Action = c.Workflow.Action
		pi.Comment = c.Workflow.Comments
		for _, a := range c.Workflow.Assignees {
			pi.Assignes = append(pi.Assignes, wfAssignee{UUID: a})
		}
	}

	var resp wfResponse
	err := w.client.post(ctx, "/egov-workflow-v2/egov-wf/process/_transition", nil,
		wfTransitionRequest{RequestInfo: info, ProcessInstances: []wfProcessInstance{pi}}, &resp)
	if err != nil {
		return "", fmt.Errorf("workflow transition for %s: %w", c.FilingNumber, err)
	}
	if len(resp.ProcessInstances) == 0 || resp.ProcessInstances[0].State == nil {
		return "", fmt.Errorf("workflow transition for %s: empty response", c.FilingNumber)
	}
	return resp.ProcessInstances[0].State.ApplicationStatus, nil
}

// CurrentInstance returns the latest process instance for businessID.
func (w *WorkflowClient) CurrentInstance(ctx context.Context, info models.RequestInfo, tenantID, businessID string) (models.ProcessInstance, error) {
	q := url.Values{}
	q.Set("tenantId", tenantID)
	q.Set("businessIds", businessID)
	q.Set("history", "false")

	var resp wfResponse
	if err := w.client.post(ctx, "/egov-workflow-v2/egov-wf/process/_search", q, wfSearchRequest{RequestInfo: info}, &resp); err != nil {
		return models.ProcessInstance{}, fmt.Errorf("workflow search for %s: %w", businessID, err)
	}
	if len(resp.ProcessInstances) == 0 {
		return models.ProcessInstance{TenantID: tenantID, BusinessID: businessID}, nil
	}
	return toProcessInstance(resp.ProcessInstances[0]), nil
}

// StatusOf reads the workflow view of an instance.
func (w *WorkflowClient) StatusOf(_ context.Context, instance models.ProcessInstance) (models.Workflow, error) {
	return workflowOf(instance), nil
}

func toProcessInstance(pi wfProcessInstance) models.ProcessInstance {
	out := models.ProcessInstance{
		ID:          pi.ID,
		TenantID:    pi.TenantID,
		BusinessID:  pi.BusinessID,
		Action:      pi.Action,
		Comment:     pi.Comment,
		BusinessSvc: pi.BusinessService,
		ModuleName:  pi.ModuleName,
	}
	if pi.State != nil {
		out.State = pi.State.ApplicationStatus
		if out.State == "" {
			out.State = pi.State.State
		}
	}
	for _, a := range pi.Assignes {
		out.Assignees = append(out.Assignees, a.UUID)
	}
	return out
}

func workflowOf(instance models.ProcessInstance) models.Workflow {
	wf := models.Workflow{
		Action:   instance.Action,
		Status:   instance.State,
		Comments: instance.Comment,
	}
	if len(instance.Assignees) > 0 {
		wf.Assignees = append([]string(nil), instance.Assignees...)
	}
	return wf
}
