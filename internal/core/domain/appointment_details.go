package domain

import (
	"github.com/reseahub/case-console/internal/core/json_types"
)

// WorkSearchIssueStatus is the caseworker's verdict on one work-search week.
type WorkSearchIssueStatus string

const (
	WorkSearchStatusCreateIssue WorkSearchIssueStatus = "createIssue"
	WorkSearchStatusNoIssues    WorkSearchIssueStatus = "noIssues"
)

// JobReferral is one row in the outside-web-referral or JMS-job-referral lists.
type JobReferral struct {
	EmpName  string `json:"empName"`
	JobTitle string `json:"jobTitle"`
	EmpNum   string `json:"empNum,omitempty"`
}

// WorkSearchIssueEntry is the UI-shaped row for one work-search week.
type WorkSearchIssueEntry struct {
	WeekEndingDt        json_types.Date       `json:"weekEndingDt"`
	Status              WorkSearchIssueStatus `json:"status"`
	ActivelySeekingWork int                   `json:"activelySeekingWork,omitempty"`
}

// OtherIssueEntry is the UI-shaped row for one potential eligibility issue.
// Only selected rows reach the payload.
type OtherIssueEntry struct {
	Selected     bool            `json:"selected"`
	IssueSubType string          `json:"issueSubType"`
	StartDt      json_types.Date `json:"startDt"`
	EndDt        json_types.Date `json:"endDt"`
}

// AppointmentDetailsForm is the raw, UI-shaped state of the post-appointment
// data-entry form. It is an explicit value object: the engine folds it into a
// wire payload without touching any ambient state.
type AppointmentDetailsForm struct {
	JMSItems              map[JMSItemKey]bool     `json:"jmsItems"`
	JMSResumeExpDt        json_types.Date         `json:"jmsResumeExpDt"`
	JMSVRExpDt            json_types.Date         `json:"jmsVRExpDt"`
	OutsideWebReferral    []JobReferral           `json:"outsideWebReferral"`
	JMSJobReferral        []JobReferral           `json:"jMSJobReferral"`
	WorkSearchIssues      []WorkSearchIssueEntry  `json:"workSearchIssues"`
	WorkSearchIssuesCount int                     `json:"workSearchIssuesCount"`
	OtherIssues           []OtherIssueEntry       `json:"otherIssues"`
	ActionTaken           map[OtherActionKey]bool `json:"actionTaken"`
	AssignedMrpChap       string                  `json:"assignedMrpChap,omitempty"`
	ReviewedMrpChap       string                  `json:"reviewedMrpChap,omitempty"`
	SelfSchByDt           json_types.Date         `json:"selfSchByDt"`
	StaffNotes            string                  `json:"staffNotes"`
	EmpServicesConfirmInd YNFlag                  `json:"empServicesConfirmInd"`
}

// OtherIssuePayload is the wire shape of one selected eligibility issue.
type OtherIssuePayload struct {
	IssueID string `json:"issueId"`
	StartDt string `json:"startDt"`
	EndDt   string `json:"endDt"`
}

// AppointmentDetailsPayload is the minimal submission the backend expects.
// Optional fields carry omitempty so absent values never appear as null or
// empty-string keys.
type AppointmentDetailsPayload struct {
	EventID             int64               `json:"eventId"`
	ItemsCompletedInJMS []JMSItemKey        `json:"itemsCompletedInJMS"`
	WorkSearchIssues    map[string]int      `json:"workSearchIssues"`
	OtherIssues         []OtherIssuePayload `json:"otherIssues"`
	ActionTaken         []OtherActionKey    `json:"actionTaken"`
	StaffNotes          string              `json:"staffNotes"`

	JMSResumeExpDt        string        `json:"jmsResumeExpDt,omitempty"`
	JMSVRExpDt            string        `json:"jmsVRExpDt,omitempty"`
	OutsideWebReferral    []JobReferral `json:"outsideWebReferral,omitempty"`
	JMSJobReferral        []JobReferral `json:"jMSJobReferral,omitempty"`
	AssignedMrpChap       string        `json:"assignedMrpChap,omitempty"`
	SelfSchByDt           string        `json:"selfSchByDt,omitempty"`
	ReviewedMrpChap       string        `json:"reviewedMrpChap,omitempty"`
	EmpServicesConfirmInd YNFlag        `json:"empServicesConfirmInd,omitempty"`
}

// AppointmentDetailsView is a loaded record plus the read-only determination:
// submitted or past-due records are view only.
type AppointmentDetailsView struct {
	Details     *AppointmentDetailsPayload `json:"details"`
	DisableForm bool                       `json:"disableForm"`
	Empty       bool                       `json:"empty"`
}
