package handler

import (
	"time"

	"caseregistry/internal/cases/models"
)

// ResponseInfo echoes the caller's RequestInfo with the outcome.
type ResponseInfo struct {
	APIID    string `json:"apiId,omitempty"`
	Ver      string `json:"ver,omitempty"`
	Ts       int64  `json:"ts"`
	ResMsgID string `json:"resMsgId,omitempty"`
	MsgID    string `json:"msgId,omitempty"`
	Status   string `json:"status"`
}

type CaseResponse struct {
	ResponseInfo ResponseInfo        `json:"ResponseInfo"`
	Cases        []models.CourtCase `json:"cases"`
}

type SearchResponse struct {
	ResponseInfo ResponseInfo          `json:"ResponseInfo"`
	Criteria     []models.CaseCriteria `json:"criteria"`
}

type ExistsResponse struct {
	ResponseInfo ResponseInfo        `json:"ResponseInfo"`
	Criteria     []models.CaseExists `json:"criteria"`
}

func responseInfo(info models.RequestInfo, requestID string, now time.Time) ResponseInfo {
	return ResponseInfo{
		APIID:    info.APIID,
		Ver:      info.Ver,
		Ts:       now.UnixMilli(),
		ResMsgID: requestID,
		MsgID:    info.MsgID,
		Status:   "successful",
	}
}
