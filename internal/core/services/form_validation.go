package services

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reseahub/case-console/internal/core/domain"
)

// Shared validator instance behind the per-stage schemas. Cross-field rules
// the tag syntax cannot express live next to the Var calls.
var validate = validator.New()

func failed(err error) bool {
	return err != nil
}

// validateDetailsForm is the stage validation schema: the same form type runs
// through different required-field sets depending on the appointment stage.
// Submitting a First-stage payload through the Initial-stage schema is not a
// supported path, so the stage always comes from the slot.
func validateDetailsForm(stage domain.AppointmentStage, form domain.AppointmentDetailsForm) map[string]string {
	fieldErrors := make(map[string]string)

	if failed(validate.Var(string(form.EmpServicesConfirmInd), "required,eq=Y")) {
		fieldErrors["empServicesConfirmInd"] = "Confirm that all necessary Employment Services were provided"
	}

	if form.JMSItems[domain.JMSItemActiveResume] && form.JMSResumeExpDt.IsZero() {
		fieldErrors["jmsResumeExpDt"] = "Resume expiration date is required"
	}
	if form.JMSItems[domain.JMSItemActiveVirtualRecruiter] && form.JMSVRExpDt.IsZero() {
		fieldErrors["jmsVRExpDt"] = "Virtual recruiter expiration date is required"
	}
	if form.JMSItems[domain.JMSItemOutsideWebReferral] && len(form.OutsideWebReferral) == 0 {
		fieldErrors["outsideWebReferral"] = "Add at least one outside web referral"
	}
	if form.JMSItems[domain.JMSItemJobReferral] && len(form.JMSJobReferral) == 0 {
		fieldErrors["jMSJobReferral"] = "Add at least one JMS job referral"
	}

	for _, referral := range append(append([]domain.JobReferral{}, form.OutsideWebReferral...), form.JMSJobReferral...) {
		if failed(validate.Var(referral.EmpName, "required")) || failed(validate.Var(referral.JobTitle, "required")) {
			fieldErrors["referrals"] = "Employer name and job title are required on every referral"
			break
		}
	}

	for _, issue := range form.WorkSearchIssues {
		if issue.Status != domain.WorkSearchStatusCreateIssue && issue.Status != domain.WorkSearchStatusNoIssues {
			continue
		}
		if issue.WeekEndingDt.IsZero() {
			fieldErrors["workSearchIssues"] = "Every work search decision needs its week ending date"
			break
		}
	}

	for _, issue := range form.OtherIssues {
		if !issue.Selected {
			continue
		}
		if failed(validate.Var(issue.IssueSubType, "required")) || issue.StartDt.IsZero() {
			fieldErrors["otherIssues"] = "Selected issues need an issue type and start date"
			break
		}
	}

	switch stage {
	case domain.StageInitial:
		if failed(validate.Var(form.AssignedMrpChap, "required")) {
			fieldErrors["assignedMrpChap"] = "Assigned MRP chapters are required"
		}
	case domain.StageFirst:
		if failed(validate.Var(form.ReviewedMrpChap, "required")) {
			fieldErrors["reviewedMrpChap"] = "Reviewed MRP chapters are required"
		}
	case domain.StageSecond:
		if failed(validate.Var(form.ReviewedMrpChap, "required")) {
			fieldErrors["reviewedMrpChap"] = "Reviewed MRP chapters are required"
		}
		if form.SelfSchByDt.IsZero() {
			fieldErrors["selfSchByDt"] = "Self-schedule-by date is required"
		}
	}

	return fieldErrors
}

func validateAvailabilityForm(form domain.AvailabilityForm) map[string]string {
	fieldErrors := make(map[string]string)

	if failed(validate.Var(form.Claimant.ID, "required,gt=0")) {
		fieldErrors["claimantId"] = "Select a claimant to schedule"
	}
	if form.InformedCmtInd.IsSet() && len(form.InformedConveyedBy) == 0 {
		fieldErrors["informedConveyedBy"] = "Indicate how the claimant was informed"
	}
	if form.Claimant.BeyondReseaDeadline.IsSet() && failed(validate.Var(strings.TrimSpace(form.LateStaffNote), "required")) {
		fieldErrors["lateStaffNote"] = "A staff note is required for claimants beyond the RESEA deadline"
	}

	return fieldErrors
}

func validateSingleReassignment(req domain.SingleReassignment) map[string]string {
	fieldErrors := make(map[string]string)

	if failed(validate.Var(req.CaseID, "required,gt=0")) {
		fieldErrors["caseId"] = "Case is required"
	}
	if failed(validate.Var(req.EventID, "required,gt=0")) {
		fieldErrors["eventId"] = "Select an available appointment slot"
	}
	if failed(validate.Var(req.ReassignReasonCd, "required")) {
		fieldErrors["reassignReasonCd"] = "Reassign reason is required"
	}

	return fieldErrors
}

func validateBulkReassignmentForm(form domain.BulkReassignmentForm) map[string]string {
	fieldErrors := make(map[string]string)

	if failed(validate.Var(form.CaseManagerID, "required")) {
		fieldErrors["caseManagerId"] = "Case manager is required"
	}
	if form.ReassignDt.IsZero() {
		fieldErrors["reassignDt"] = "Reassign date is required"
	}
	if failed(validate.Var(form.ReassignReasonCd, "required")) {
		fieldErrors["reassignReasonCd"] = "Reassign reason is required"
	}
	// The office-scope choice is mandatory once touched; untouched stays off
	// the wire entirely
	if failed(validate.Var(string(form.LimitOffice), "omitempty,oneof=limitTo extendAll")) {
		fieldErrors["limitOffice"] = "Choose limit to office or extend to all offices"
	}
	if failed(validate.Var(form.StaffNotes, "max=4000")) {
		fieldErrors["staffNotes"] = "Staff notes cannot exceed 4000 characters"
	}

	return fieldErrors
}
