package models

import dErrors "caseregistry/pkg/domain-errors"

// Case error codes rendered to API clients.
const (
	CodeCreateCase        dErrors.Code = "CREATE_CASE_ERR"
	CodeUpdateCase        dErrors.Code = "UPDATE_CASE_ERR"
	CodeSearchCase        dErrors.Code = "SEARCH_CASE_ERR"
	CodeCaseExist         dErrors.Code = "CASE_EXIST_ERR"
	CodeValidation        dErrors.Code = "VALIDATION_ERR"
	CodeMDMSNotFound      dErrors.Code = "MDMS_DATA_NOT_FOUND"
	CodeIndividualMissing dErrors.Code = "INDIVIDUAL_NOT_FOUND"
	CodeInvalidFileStore  dErrors.Code = "INVALID_FILESTORE_ID"
	CodeInvalidAdvocate   dErrors.Code = "INVALID_ADVOCATE_ID"
	CodeInvalidLinkedCase dErrors.Code = "INVALID_LINKEDCASE_ID"
)

const (
	MsgTenantRequired     = "tenantId is mandatory for creating case"
	MsgFilingDateRequired = "filingDate is mandatory for creating case"
	MsgCategoryRequired   = "caseCategory is mandatory for creating case"
	MsgStatutesRequired   = "statute and sections is mandatory for creating case"
	MsgLitigantsRequired  = "litigants is mandatory for creating case"
	MsgUserInfoRequired   = "user info is mandatory for creating case"
	MsgCaseNotFound       = "Case Application does not exist"
	MsgMDMSNotFound       = "MDMS data does not exist"
	MsgInvalidComplainant = "Invalid complainant details"
	MsgInvalidDocument    = "Invalid document details"
	MsgInvalidAdvocate    = "Invalid advocate details"
	MsgInvalidLinkedCase  = "Invalid linked case details"
	MsgUpdatePrefix       = "Exception occurred while updating case: "
	MsgCaseIDMismatch     = "Case id does not belong to the filing number"
	MsgCriterionNoFilter  = "Search criterion must set at least one filter"
)
