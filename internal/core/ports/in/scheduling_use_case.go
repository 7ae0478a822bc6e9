package in

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
)

type SchedulingUseCase interface {
	// Classify a slot into its semantic state and currently legal actions.
	// Total: unknown type/usage combinations degrade to Inert.
	ClassifySlot(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.EventClassification

	// The three independent wall-clock judgements for a slot.
	SlotWindows(slot domain.CalendarSlot) domain.TimeWindows

	// Stage-specific data-entry configuration for the appointment details form.
	StageConfig(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.StageConfig

	// Schedule a claimant into an Offerable slot.
	ScheduleAvailability(ctx context.Context, slot domain.CalendarSlot, form domain.AvailabilityForm, updateAccess bool) error

	// Case header backing a Scheduled slot, cached where possible.
	CaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error)
}
