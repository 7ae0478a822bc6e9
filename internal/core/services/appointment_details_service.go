package services

import (
	"context"
	"fmt"

	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// AppointmentDetailsService folds the post-appointment data-entry form into
// the minimal wire payload and owns the view-only rule for loaded records.
type AppointmentDetailsService struct {
	agencyPort out.AgencyPort
	clock      out.ClockPort
	logger     out.LoggerPort
}

func NewAppointmentDetailsService(
	agencyPort out.AgencyPort,
	clock out.ClockPort,
	logger out.LoggerPort,
) *AppointmentDetailsService {
	return &AppointmentDetailsService{
		agencyPort: agencyPort,
		clock:      clock,
		logger:     logger.WithModule("AppointmentDetailsService"),
	}
}

// LoadDetails fetches the record backing a slot. Submitted records and
// past-due records load read-only; a current appointment with nothing
// submitted yet opens an empty, editable form.
func (s *AppointmentDetailsService) LoadDetails(ctx context.Context, slot domain.CalendarSlot) (*domain.AppointmentDetailsView, error) {
	windows := slot.WindowsAt(s.clock.Now())

	if !slot.EventSubmitted && windows.IsCurrentAppointment {
		return &domain.AppointmentDetailsView{Empty: true}, nil
	}

	if !slot.EventSubmitted && !windows.IsPastAppointment {
		// Nothing to load and nothing to enter yet
		return &domain.AppointmentDetailsView{Empty: true, DisableForm: true}, nil
	}

	details, err := s.agencyPort.GetAppointmentDetails(ctx, slot.EventID)
	if err != nil {
		s.logger.Error("appointment_details.fetch_failed", out.LogFields{
			"eventId": slot.EventID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("appointment_details.fetch_failed: %w", err)
	}

	if details == nil {
		return &domain.AppointmentDetailsView{Empty: true}, nil
	}

	return &domain.AppointmentDetailsView{Details: details, DisableForm: true}, nil
}

// SubmitDetails validates the form against the slot's stage schema, builds
// the payload, and submits it. Validation failures never reach the transport.
func (s *AppointmentDetailsService) SubmitDetails(ctx context.Context, slot domain.CalendarSlot, form domain.AppointmentDetailsForm, updateAccess bool) (*domain.AppointmentDetailsPayload, error) {
	if !updateAccess {
		return nil, domain.NewValidationError("You do not have access to submit updates.")
	}

	stage := domain.StageForSlot(slot)
	if stage == domain.StageNone {
		return nil, domain.NewValidationError("This time slot has no appointment details form.")
	}

	if fieldErrors := validateDetailsForm(stage, form); len(fieldErrors) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	payload := BuildDetailsPayload(slot, form)

	s.logger.Info("appointment_details.submit.started", out.LogFields{
		"eventId": slot.EventID,
		"stage":   stage,
	})

	if err := s.agencyPort.SubmitAppointmentDetails(ctx, payload); err != nil {
		s.logger.Error("appointment_details.submit.failed", out.LogFields{
			"eventId": slot.EventID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("appointment_details.submit.success", out.LogFields{
		"eventId": slot.EventID,
		"stage":   stage,
	})
	return &payload, nil
}

// BuildDetailsPayload folds raw form values into the wire payload.
// Checkbox maps become true-key lists, the work-search rows become a map
// keyed by week ending date, and optional fields are dropped when empty.
// The eventId always comes from the slot, never from form state.
func BuildDetailsPayload(slot domain.CalendarSlot, form domain.AppointmentDetailsForm) domain.AppointmentDetailsPayload {
	itemsCompleted := make([]domain.JMSItemKey, 0, len(form.JMSItems))
	for _, key := range orderedJMSItems(form.JMSItems) {
		if form.JMSItems[key] {
			itemsCompleted = append(itemsCompleted, key)
		}
	}

	workSearchIssues := make(map[string]int, len(form.WorkSearchIssues))
	for _, entry := range form.WorkSearchIssues {
		switch entry.Status {
		case domain.WorkSearchStatusCreateIssue:
			workSearchIssues[entry.WeekEndingDt.String()] = entry.ActivelySeekingWork
		case domain.WorkSearchStatusNoIssues:
			workSearchIssues[entry.WeekEndingDt.String()] = 0
		}
		// Any other status is dropped, not transmitted
	}

	otherIssues := make([]domain.OtherIssuePayload, 0, len(form.OtherIssues))
	for _, issue := range form.OtherIssues {
		if !issue.Selected {
			continue
		}
		otherIssues = append(otherIssues, domain.OtherIssuePayload{
			IssueID: issue.IssueSubType,
			StartDt: issue.StartDt.String(),
			EndDt:   issue.EndDt.String(),
		})
	}

	actionTaken := make([]domain.OtherActionKey, 0, len(form.ActionTaken))
	for _, key := range orderedActionKeys(form.ActionTaken) {
		if form.ActionTaken[key] {
			actionTaken = append(actionTaken, key)
		}
	}

	payload := domain.AppointmentDetailsPayload{
		EventID:             slot.EventID,
		ItemsCompletedInJMS: itemsCompleted,
		WorkSearchIssues:    workSearchIssues,
		OtherIssues:         otherIssues,
		ActionTaken:         actionTaken,
		StaffNotes:          form.StaffNotes,
	}

	if !form.JMSResumeExpDt.IsZero() {
		payload.JMSResumeExpDt = form.JMSResumeExpDt.String()
	}
	if !form.JMSVRExpDt.IsZero() {
		payload.JMSVRExpDt = form.JMSVRExpDt.String()
	}
	if len(form.OutsideWebReferral) > 0 {
		payload.OutsideWebReferral = form.OutsideWebReferral
	}
	if len(form.JMSJobReferral) > 0 {
		payload.JMSJobReferral = form.JMSJobReferral
	}
	if form.AssignedMrpChap != "" {
		payload.AssignedMrpChap = form.AssignedMrpChap
	}
	if !form.SelfSchByDt.IsZero() {
		payload.SelfSchByDt = form.SelfSchByDt.String()
	}
	if form.ReviewedMrpChap != "" {
		payload.ReviewedMrpChap = form.ReviewedMrpChap
	}
	if form.EmpServicesConfirmInd != "" {
		payload.EmpServicesConfirmInd = form.EmpServicesConfirmInd
	}

	return payload
}

// Map iteration order is random; the payload lists keep a stable order so two
// builds of the same form are byte-identical.
var jmsItemOrder = []domain.JMSItemKey{
	domain.JMSItemRegComplete,
	domain.JMSItemActiveResume,
	domain.JMSItemActiveVirtualRecruiter,
	domain.JMSItemOutsideWebReferral,
	domain.JMSItemJobReferral,
}

var actionKeyOrder = []domain.OtherActionKey{
	domain.OtherActionReviewedAssessment,
	domain.OtherActionAssignedMrpChapters,
	domain.OtherActionReviewedMrpChapters,
	domain.OtherActionDiscussedWorkSearch,
	domain.OtherActionProvidedLaborMarket,
	domain.OtherActionReferredToTraining,
	domain.OtherActionReferredToJobFair,
	domain.OtherActionScheduledSelfSchedule,
}

func orderedJMSItems(items map[domain.JMSItemKey]bool) []domain.JMSItemKey {
	ordered := make([]domain.JMSItemKey, 0, len(items))
	for _, key := range jmsItemOrder {
		if _, ok := items[key]; ok {
			ordered = append(ordered, key)
		}
	}
	return ordered
}

func orderedActionKeys(actions map[domain.OtherActionKey]bool) []domain.OtherActionKey {
	ordered := make([]domain.OtherActionKey, 0, len(actions))
	for _, key := range actionKeyOrder {
		if _, ok := actions[key]; ok {
			ordered = append(ordered, key)
		}
	}
	return ordered
}
