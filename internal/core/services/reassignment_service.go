package services

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/in"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// ReassignmentService owns both reassignment shapes: the direct single-case
// submit and the confirm-before-submit bulk flow.
type ReassignmentService struct {
	agencyPort out.AgencyPort
	logger     out.LoggerPort
}

func NewReassignmentService(agencyPort out.AgencyPort, logger out.LoggerPort) *ReassignmentService {
	return &ReassignmentService{
		agencyPort: agencyPort,
		logger:     logger.WithModule("ReassignmentService"),
	}
}

// ReassignCase moves one case onto another appointment slot. No confirmation
// handshake; a valid request goes straight to the backend.
func (s *ReassignmentService) ReassignCase(ctx context.Context, req domain.SingleReassignment, updateAccess bool) error {
	if !updateAccess {
		return domain.NewValidationError("You do not have access to submit updates.")
	}

	if fieldErrors := validateSingleReassignment(req); len(fieldErrors) > 0 {
		return &domain.ValidationError{Fields: fieldErrors}
	}

	s.logger.Info("reassign.submit.started", out.LogFields{
		"caseId":  req.CaseID,
		"eventId": req.EventID,
	})

	if err := s.agencyPort.SubmitReassignment(ctx, req); err != nil {
		s.logger.Error("reassign.submit.failed", out.LogFields{
			"caseId": req.CaseID,
			"error":  err.Error(),
		})
		return &domain.ValidationError{Messages: MessagesFromError(EndpointReassignSave, err)}
	}

	s.logger.Info("reassign.submit.success", out.LogFields{
		"caseId":  req.CaseID,
		"eventId": req.EventID,
	})
	return nil
}

// ReassignAll drives the bulk flow once per call. With confirmed=false the
// flow stops at PendingConfirm (or stays in Editing with field errors); with
// confirmed=true a valid form is confirmed and submitted in the same pass.
func (s *ReassignmentService) ReassignAll(ctx context.Context, form domain.BulkReassignmentForm, confirmed bool, updateAccess bool) (*in.BulkReassignOutcome, error) {
	if !updateAccess {
		return nil, domain.NewValidationError("You do not have access to submit updates.")
	}

	flow := domain.NewBulkReassignmentFlow(form)

	if !flow.RequestConfirm(validateBulkReassignmentForm(form)) {
		return &in.BulkReassignOutcome{
			State:       flow.State(),
			FieldErrors: flow.FieldErrors(),
		}, nil
	}

	if !confirmed {
		return &in.BulkReassignOutcome{State: flow.State()}, nil
	}

	// Confirm freezes the payload from the form snapshot
	payload, ok := flow.Confirm()
	if !ok {
		return &in.BulkReassignOutcome{State: flow.State()}, nil
	}

	s.logger.Info("reassign_all.submit.started", out.LogFields{
		"caseManagerId": payload.CaseManagerID,
		"reassignDt":    payload.ReassignDt,
	})

	if err := s.agencyPort.SubmitBulkReassignment(ctx, payload); err != nil {
		s.logger.Error("reassign_all.submit.failed", out.LogFields{
			"caseManagerId": payload.CaseManagerID,
			"error":         err.Error(),
		})
		flow.Complete(MessagesFromError(EndpointReassignAllSave, err))
		return &in.BulkReassignOutcome{
			State:    flow.State(),
			Messages: flow.Messages(),
		}, nil
	}

	flow.Complete(nil)
	s.logger.Info("reassign_all.submit.success", out.LogFields{
		"caseManagerId": payload.CaseManagerID,
	})
	return &in.BulkReassignOutcome{State: flow.State()}, nil
}
