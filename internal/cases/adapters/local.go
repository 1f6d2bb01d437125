package adapters

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// DefaultLocalTransitions maps workflow actions to the status they reach in
// the local workflow.
var DefaultLocalTransitions = map[string]string{
	"CREATE":       "DRAFT_IN_PROGRESS",
	"SUBMIT":       "PAYMENT_PENDING",
	"MAKE_PAYMENT": "UNDER_SCRUTINY",
	"ADMIT":        "CASE_ADMITTED",
	"REJECT":       "CASE_REJECTED",
}

// LocalWorkflow keeps process instances in memory. A record without an
// action is treated as CREATE; an unknown action keeps the current state.
type LocalWorkflow struct {
	transitions map[string]string

	mu        sync.RWMutex
	instances map[string]models.ProcessInstance
}

var _ ports.Workflow = (*LocalWorkflow)(nil)

func NewLocalWorkflow(transitions map[string]string) *LocalWorkflow {
	if transitions == nil {
		transitions = DefaultLocalTransitions
	}
	return &LocalWorkflow{transitions: transitions, instances: make(map[string]models.ProcessInstance)}
}

func (w *LocalWorkflow) Advance(_ context.Context, _ models.RequestInfo, c models.CourtCase) (string, error) {
	action := "CREATE"
	var comment string
	var assignees []string
	if c.Workflow != nil && c.Workflow.Action != "" {
		action = c.Workflow.Action
		comment = c.Workflow.Comments
		assignees = append([]string(nil), c.Workflow.Assignees...)
	}

	key := c.TenantID + "|" + c.FilingNumber
	w.mu.Lock()
	defer w.mu.Unlock()

	inst, ok := w.instances[key]
	if !ok {
		inst = models.ProcessInstance{ID: c.FilingNumber, TenantID: c.TenantID, BusinessID: c.FilingNumber, ModuleName: "case"}
	}
	if next, known := w.transitions[action]; known {
		inst.State = next
	}
	inst.Action = action
	inst.Comment = comment
	inst.Assignees = assignees
	w.instances[key] = inst
	return inst.State, nil
}

func (w *LocalWorkflow) CurrentInstance(_ context.Context, _ models.RequestInfo, tenantID, businessID string) (models.ProcessInstance, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if inst, ok := w.instances[tenantID+"|"+businessID]; ok {
		return inst, nil
	}
	return models.ProcessInstance{TenantID: tenantID, BusinessID: businessID}, nil
}

func (w *LocalWorkflow) StatusOf(_ context.Context, instance models.ProcessInstance) (models.Workflow, error) {
	return workflowOf(instance), nil
}

// AllowAll answers yes to every identity and advocate check.
type AllowAll struct{}

var (
	_ ports.Identity  = AllowAll{}
	_ ports.Advocates = AllowAll{}
)

func (AllowAll) Exists(context.Context, models.RequestInfo, string) (bool, error) { return true, nil }

// AllowAllDocuments answers yes to every document check.
type AllowAllDocuments struct{}

var _ ports.Documents = AllowAllDocuments{}

func (AllowAllDocuments) Exists(context.Context, string, string) (bool, error) { return true, nil }

// StaticReferenceData returns one placeholder entry per requested master.
type StaticReferenceData struct{}

var _ ports.ReferenceData = StaticReferenceData{}

func (StaticReferenceData) Fetch(_ context.Context, _ models.RequestInfo, _ string, module string, masters []string) (models.MasterData, error) {
	entries := make(map[string][]json.RawMessage, len(masters))
	for _, m := range masters {
		entries[m] = []json.RawMessage{json.RawMessage(`{"code":"DEFAULT","active":true}`)}
	}
	return models.MasterData{module: entries}, nil
}

// LoggingBilling records demands in the log instead of raising them.
type LoggingBilling struct {
	Logger *slog.Logger
}

var _ ports.Billing = LoggingBilling{}

func (b LoggingBilling) CreateDemand(ctx context.Context, _ models.RequestInfo, c models.CourtCase) error {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "demand raised locally",
		"tenant_id", c.TenantID,
		"filing_number", c.FilingNumber,
	)
	return nil
}
