package domain

import (
	"github.com/reseahub/case-console/internal/core/json_types"
)

// Pagination is the fixed paging block every lookup submission carries.
type Pagination struct {
	PageNumber     int  `json:"pageNumber"`
	PageSize       int  `json:"pageSize"`
	NeedTotalCount bool `json:"needTotalCount"`
}

func DefaultPagination() Pagination {
	return Pagination{PageNumber: 1, PageSize: 10, NeedTotalCount: true}
}

type SortBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// LookupFieldKind drives how a filter value is normalized onto the wire.
type LookupFieldKind int

const (
	LookupFieldText LookupFieldKind = iota
	LookupFieldMulti
	LookupFieldDate
	LookupFieldInteger
	LookupFieldFlag
)

// LookupFieldValue is one declared filter field with its submitted value.
// The normalizer iterates these in declaration order; skipped fields never
// reach the payload.
type LookupFieldValue struct {
	Name  string
	Kind  LookupFieldKind
	Value interface{}
}

// CaseLookupForm is the sparse, checkbox-gated case search filter.
type CaseLookupForm struct {
	OfficeNum          []string        `json:"officeNum"`
	CaseManagerID      []string        `json:"caseManagerId"`
	CaseStage          []string        `json:"caseStage"`
	CaseStatus         []string        `json:"caseStatus"`
	Waitlisted         YNFlag          `json:"waitlisted"`
	HiPriorityInd      YNFlag          `json:"hiPriorityInd"`
	RtwDaysMin         string          `json:"rtwDaysMin"`
	RtwDaysMax         string          `json:"rtwDaysMax"`
	CaseScoreMin       string          `json:"caseScoreMin"`
	CaseScoreMax       string          `json:"caseScoreMax"`
	OrientationStartDt json_types.Date `json:"orientationStartDt"`
	OrientationEndDt   json_types.Date `json:"orientationEndDt"`
	InitialApptStartDt json_types.Date `json:"initialApptStartDt"`
	InitialApptEndDt   json_types.Date `json:"initialApptEndDt"`
	RecentApptStartDt  json_types.Date `json:"recentApptStartDt"`
	RecentApptEndDt    json_types.Date `json:"recentApptEndDt"`
	TerminationReason  []string        `json:"terminationReason"`
	ClaimantName       string          `json:"claimantName"`
	SSN                string          `json:"ssn"`
	ClmByeStartDt      json_types.Date `json:"clmByeStartDt"`
	ClmByeEndDt        json_types.Date `json:"clmByeEndDt"`
}

// Fields lists every declared filter in submission order.
func (f CaseLookupForm) Fields() []LookupFieldValue {
	return []LookupFieldValue{
		{"officeNum", LookupFieldMulti, f.OfficeNum},
		{"caseManagerId", LookupFieldMulti, f.CaseManagerID},
		{"caseStage", LookupFieldMulti, f.CaseStage},
		{"caseStatus", LookupFieldMulti, f.CaseStatus},
		{"waitlisted", LookupFieldFlag, f.Waitlisted},
		{"hiPriorityInd", LookupFieldFlag, f.HiPriorityInd},
		{"rtwDaysMin", LookupFieldInteger, f.RtwDaysMin},
		{"rtwDaysMax", LookupFieldInteger, f.RtwDaysMax},
		{"caseScoreMin", LookupFieldInteger, f.CaseScoreMin},
		{"caseScoreMax", LookupFieldInteger, f.CaseScoreMax},
		{"orientationStartDt", LookupFieldDate, f.OrientationStartDt},
		{"orientationEndDt", LookupFieldDate, f.OrientationEndDt},
		{"initialApptStartDt", LookupFieldDate, f.InitialApptStartDt},
		{"initialApptEndDt", LookupFieldDate, f.InitialApptEndDt},
		{"recentApptStartDt", LookupFieldDate, f.RecentApptStartDt},
		{"recentApptEndDt", LookupFieldDate, f.RecentApptEndDt},
		{"terminationReason", LookupFieldMulti, f.TerminationReason},
		{"claimantName", LookupFieldText, f.ClaimantName},
		{"ssn", LookupFieldText, f.SSN},
		{"clmByeStartDt", LookupFieldDate, f.ClmByeStartDt},
		{"clmByeEndDt", LookupFieldDate, f.ClmByeEndDt},
	}
}

// AppointmentLookupForm is the sparse appointment search filter.
type AppointmentLookupForm struct {
	OfficeNum       []string        `json:"officeNum"`
	CaseManagerID   string          `json:"caseManagerId"`
	ApptStartDt     json_types.Date `json:"apptStartDt"`
	ApptEndDt       json_types.Date `json:"apptEndDt"`
	TimeslotTypeCd  string          `json:"timeslotTypeCd"`
	TimeslotUsageCd string          `json:"timeslotUsageCd"`
	MeetingStatusCd []string        `json:"meetingStatusCd"`
	Beyond21DaysInd YNFlag          `json:"beyond21DaysInd"`
	HiPriorityInd   YNFlag          `json:"hiPriorityInd"`
	ScheduledBy     []string        `json:"scheduledBy"`
	ClaimantName    string          `json:"claimantName"`
	SSN             string          `json:"ssn"`
	ClmByeStartDt   json_types.Date `json:"clmByeStartDt"`
	ClmByeEndDt     json_types.Date `json:"clmByeEndDt"`
}

func (f AppointmentLookupForm) Fields() []LookupFieldValue {
	return []LookupFieldValue{
		{"officeNum", LookupFieldMulti, f.OfficeNum},
		{"caseManagerId", LookupFieldText, f.CaseManagerID},
		{"apptStartDt", LookupFieldDate, f.ApptStartDt},
		{"apptEndDt", LookupFieldDate, f.ApptEndDt},
		{"timeslotTypeCd", LookupFieldText, f.TimeslotTypeCd},
		{"timeslotUsageCd", LookupFieldText, f.TimeslotUsageCd},
		{"meetingStatusCd", LookupFieldMulti, f.MeetingStatusCd},
		{"beyond21DaysInd", LookupFieldFlag, f.Beyond21DaysInd},
		{"hiPriorityInd", LookupFieldFlag, f.HiPriorityInd},
		{"scheduledBy", LookupFieldMulti, f.ScheduledBy},
		{"claimantName", LookupFieldText, f.ClaimantName},
		{"ssn", LookupFieldText, f.SSN},
		{"clmByeStartDt", LookupFieldDate, f.ClmByeStartDt},
		{"clmByeEndDt", LookupFieldDate, f.ClmByeEndDt},
	}
}
