package models

import "encoding/json"

// CourtCase is the case record. Status is owned by the workflow service and is
// only ever copied from its answers.
type CourtCase struct {
	ID           string `json:"id,omitempty"`
	TenantID     string `json:"tenantId"`
	FilingNumber string `json:"filingNumber,omitempty"`
	CaseNumber   string `json:"caseNumber,omitempty"`
	CNRNumber    string `json:"cnrNumber,omitempty"`
	AccessCode   string `json:"accessCode,omitempty"`
	CourtID      string `json:"courtId,omitempty"`

	CaseTitle           string           `json:"caseTitle,omitempty"`
	CaseType            string           `json:"caseType,omitempty"`
	CaseCategory        string           `json:"caseCategory"`
	FilingDate          int64            `json:"filingDate,omitempty"`
	RegistrationDate    int64            `json:"registrationDate,omitempty"`
	StatutesAndSections []StatuteSection `json:"statutesAndSections"`

	Litigants       []Party           `json:"litigants"`
	Representatives []AdvocateMapping `json:"representatives,omitempty"`
	Documents       []Document        `json:"documents,omitempty"`
	LinkedCases     []LinkedCase      `json:"linkedCases,omitempty"`

	CaseDetails json.RawMessage `json:"caseDetails,omitempty"`

	Status       string        `json:"status,omitempty"`
	Workflow     *Workflow     `json:"workflow,omitempty"`
	IsActive     bool          `json:"isActive"`
	AuditDetails *AuditDetails `json:"auditDetails,omitempty"`
}

type StatuteSection struct {
	ID          string   `json:"id,omitempty"`
	TenantID    string   `json:"tenantId,omitempty"`
	Statute     string   `json:"statute"`
	Sections    []string `json:"sections,omitempty"`
	Subsections []string `json:"subsections,omitempty"`
}

// Party is a litigant. AdditionalDetails is sensitive.
type Party struct {
	ID                string          `json:"id,omitempty"`
	TenantID          string          `json:"tenantId,omitempty"`
	CaseID            string          `json:"caseId,omitempty"`
	IndividualID      string          `json:"individualId"`
	OrganisationID    string          `json:"organisationId,omitempty"`
	PartyType         string          `json:"partyType,omitempty"`
	IsActive          bool            `json:"isActive"`
	AdditionalDetails json.RawMessage `json:"additionalDetails,omitempty"`
	AuditDetails      *AuditDetails   `json:"auditDetails,omitempty"`
}

// AdvocateMapping links an advocate to the parties they represent.
type AdvocateMapping struct {
	ID                string          `json:"id,omitempty"`
	TenantID          string          `json:"tenantId,omitempty"`
	CaseID            string          `json:"caseId,omitempty"`
	AdvocateID        string          `json:"advocateId"`
	Representing      []Party         `json:"representing,omitempty"`
	IsActive          bool            `json:"isActive"`
	AdditionalDetails json.RawMessage `json:"additionalDetails,omitempty"`
	AuditDetails      *AuditDetails   `json:"auditDetails,omitempty"`
}

type Document struct {
	ID           string `json:"id,omitempty"`
	FileStore    string `json:"fileStore"`
	DocumentType string `json:"documentType,omitempty"`
	DocumentUID  string `json:"documentUid,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type LinkedCase struct {
	ID               string `json:"id"`
	CaseNumber       string `json:"caseNumber,omitempty"`
	RelationshipType string `json:"relationshipType,omitempty"`
	IsActive         bool   `json:"isActive"`
}

// Workflow carries the action requested on update and, on search, the
// resolved process state.
type Workflow struct {
	Action    string   `json:"action,omitempty"`
	Status    string   `json:"status,omitempty"`
	Comments  string   `json:"comments,omitempty"`
	Assignees []string `json:"assignes,omitempty"`
}

type AuditDetails struct {
	CreatedBy        string `json:"createdBy,omitempty"`
	LastModifiedBy   string `json:"lastModifiedBy,omitempty"`
	CreatedTime      int64  `json:"createdTime,omitempty"`
	LastModifiedTime int64  `json:"lastModifiedTime,omitempty"`
}

// ProcessInstance is the workflow service's handle on a case's process.
type ProcessInstance struct {
	ID          string   `json:"id"`
	TenantID    string   `json:"tenantId"`
	BusinessID  string   `json:"businessId"`
	Action      string   `json:"action,omitempty"`
	State       string   `json:"state"`
	Comment     string   `json:"comment,omitempty"`
	BusinessSvc string   `json:"businessService,omitempty"`
	ModuleName  string   `json:"moduleName,omitempty"`
	Assignees   []string `json:"assignes,omitempty"`
}

// MasterData is keyed by module, then master name.
type MasterData map[string]map[string][]json.RawMessage

// Clone returns a deep copy so that callers can hand records to collaborators
// without sharing slices or raw payloads.
func (c CourtCase) Clone() CourtCase {
	out := c
	out.StatutesAndSections = cloneStatutes(c.StatutesAndSections)
	out.Litigants = cloneParties(c.Litigants)
	if c.Representatives != nil {
		out.Representatives = make([]AdvocateMapping, len(c.Representatives))
		for i, r := range c.Representatives {
			r.Representing = cloneParties(r.Representing)
			r.AdditionalDetails = cloneRaw(r.AdditionalDetails)
			r.AuditDetails = cloneAudit(r.AuditDetails)
			out.Representatives[i] = r
		}
	}
	if c.Documents != nil {
		out.Documents = append([]Document(nil), c.Documents...)
	}
	if c.LinkedCases != nil {
		out.LinkedCases = append([]LinkedCase(nil), c.LinkedCases...)
	}
	out.CaseDetails = cloneRaw(c.CaseDetails)
	if c.Workflow != nil {
		wf := *c.Workflow
		if wf.Assignees != nil {
			wf.Assignees = append([]string(nil), wf.Assignees...)
		}
		out.Workflow = &wf
	}
	out.AuditDetails = cloneAudit(c.AuditDetails)
	return out
}

// CloneCases deep-copies a batch.
func CloneCases(cases []CourtCase) []CourtCase {
	if cases == nil {
		return nil
	}
	out := make([]CourtCase, len(cases))
	for i, c := range cases {
		out[i] = c.Clone()
	}
	return out
}

func cloneStatutes(in []StatuteSection) []StatuteSection {
	if in == nil {
		return nil
	}
	out := make([]StatuteSection, len(in))
	for i, s := range in {
		if s.Sections != nil {
			s.Sections = append([]string(nil), s.Sections...)
		}
		if s.Subsections != nil {
			s.Subsections = append([]string(nil), s.Subsections...)
		}
		out[i] = s
	}
	return out
}

func cloneParties(in []Party) []Party {
	if in == nil {
		return nil
	}
	out := make([]Party, len(in))
	for i, p := range in {
		p.AdditionalDetails = cloneRaw(p.AdditionalDetails)
		p.AuditDetails = cloneAudit(p.AuditDetails)
		out[i] = p
	}
	return out
}

func cloneRaw(in json.RawMessage) json.RawMessage {
	if in == nil {
		return nil
	}
	return append(json.RawMessage(nil), in...)
}

func cloneAudit(in *AuditDetails) *AuditDetails {
	if in == nil {
		return nil
	}
	a := *in
	return &a
}
