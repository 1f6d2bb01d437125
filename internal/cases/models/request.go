package models

type RequestInfo struct {
	APIID    string    `json:"apiId,omitempty"`
	Ver      string    `json:"ver,omitempty"`
	Ts       int64     `json:"ts,omitempty"`
	Action   string    `json:"action,omitempty"`
	MsgID    string    `json:"msgId,omitempty"`
	AuthTok  string    `json:"authToken,omitempty"`
	UserInfo *UserInfo `json:"userInfo,omitempty"`
}

type UserInfo struct {
	ID       int64  `json:"id,omitempty"`
	UUID     string `json:"uuid"`
	UserName string `json:"userName,omitempty"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
	Roles    []Role `json:"roles,omitempty"`
}

type Role struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
}

// CaseRequest carries one or more records for the create and update flows.
type CaseRequest struct {
	RequestInfo RequestInfo `json:"RequestInfo"`
	Cases       []CourtCase `json:"cases"`
}

type CaseSearchRequest struct {
	RequestInfo RequestInfo    `json:"RequestInfo"`
	TenantID    string         `json:"tenantId,omitempty"`
	Criteria    []CaseCriteria `json:"criteria"`
}

// CaseCriteria is one search criterion. ResponseList holds its matches once
// the search flow has run.
type CaseCriteria struct {
	TenantID       string `json:"tenantId,omitempty"`
	CaseID         string `json:"caseId,omitempty"`
	FilingNumber   string `json:"filingNumber,omitempty"`
	CNRNumber      string `json:"cnrNumber,omitempty"`
	CourtCaseNum   string `json:"courtCaseNumber,omitempty"`
	CourtID        string `json:"courtId,omitempty"`
	LitigantID     string `json:"litigantId,omitempty"`
	AdvocateID     string `json:"advocateId,omitempty"`
	Status         string `json:"status,omitempty"`
	FilingFromDate int64  `json:"filingFromDate,omitempty"`
	FilingToDate   int64  `json:"filingToDate,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`

	ResponseList []CourtCase `json:"responseList"`
}

// Empty reports whether no filter is set.
func (c CaseCriteria) Empty() bool {
	return c.CaseID == "" && c.FilingNumber == "" && c.CNRNumber == "" && c.CourtCaseNum == "" &&
		c.CourtID == "" && c.LitigantID == "" && c.AdvocateID == "" && c.Status == "" &&
		c.FilingFromDate == 0 && c.FilingToDate == 0
}

type CaseExistsRequest struct {
	RequestInfo RequestInfo  `json:"RequestInfo"`
	Criteria    []CaseExists `json:"criteria"`
}

type CaseExists struct {
	CaseID          string `json:"caseId,omitempty"`
	FilingNumber    string `json:"filingNumber,omitempty"`
	CNRNumber       string `json:"cnrNumber,omitempty"`
	CourtCaseNumber string `json:"courtCaseNumber,omitempty"`
	Exists          bool   `json:"exists"`
}

// CaseEvent is the payload published on the create and update topics.
type CaseEvent struct {
	RequestInfo RequestInfo `json:"RequestInfo"`
	Cases       []CourtCase `json:"cases"`
}
