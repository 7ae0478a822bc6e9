package domain

import (
	"github.com/reseahub/case-console/internal/core/json_types"
)

// YNFlag is the backend's tri-state checkbox convention: "Y", "N", or unset.
// Only "Y" is ever transmitted; "N" and empty are treated as off.
type YNFlag string

const (
	FlagYes YNFlag = "Y"
	FlagNo  YNFlag = "N"
)

func (f YNFlag) IsSet() bool {
	return f == FlagYes
}

// WorkSearchRecord is one weekly work-search entry on a case. The count of
// these records seeds workSearchIssuesCount on the appointment-details form.
type WorkSearchRecord struct {
	WeekEndingDt  json_types.Date `json:"weekEndingDt"`
	WorkSearchCnt int             `json:"workSearchCnt"`
}

// CaseDetails is the case header fetched before a Scheduled slot is opened.
type CaseDetails struct {
	CaseNum        int64              `json:"caseNum"`
	ClmID          int64              `json:"clmId"`
	ClaimantName   string             `json:"claimantName"`
	CaseOfficeName string             `json:"caseOfficeName"`
	ReopenAccess   YNFlag             `json:"reopenAccess"`
	WorkSearch     []WorkSearchRecord `json:"workSearch"`
}

// Claimant is a candidate for an availability assignment into an Offerable
// slot. BeyondReseaDeadline flags claimants past the regulatory days-beyond
// threshold; assigning one requires a late staff note.
type Claimant struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	BeyondReseaDeadline YNFlag `json:"beyondReseaDeadline"`
}
