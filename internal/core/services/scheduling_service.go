package services

import (
	"context"
	"fmt"
	"time"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// SchedulingService owns slot classification, the time-window evaluation, the
// stage schema selection, and availability assignments into Offerable slots.
type SchedulingService struct {
	agencyPort out.AgencyPort
	cachePort  out.CachePort
	clock      out.ClockPort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewSchedulingService(
	agencyPort out.AgencyPort,
	cachePort out.CachePort,
	clock out.ClockPort,
	cfg *config.Config,
	logger out.LoggerPort,
) *SchedulingService {
	return &SchedulingService{
		agencyPort: agencyPort,
		cachePort:  cachePort,
		clock:      clock,
		cfg:        cfg,
		logger:     logger.WithModule("SchedulingService"),
	}
}

func (s *SchedulingService) SlotWindows(slot domain.CalendarSlot) domain.TimeWindows {
	return slot.WindowsAt(s.clock.Now())
}

// ClassifySlot maps a slot onto its semantic state and the actions currently
// legal for it. Total by construction: any combination the rules below do not
// recognize degrades to Inert with no actions, never to a failure.
func (s *SchedulingService) ClassifySlot(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.EventClassification {
	now := s.clock.Now()

	if slot.EventTypeDesc == domain.EventTypeDoNotSchedule {
		return domain.EventClassification{State: domain.EventStateBlocked}
	}

	if slot.EventTypeDesc == domain.EventTypeAvailable && slot.HasAppointmentUsage() {
		lead := time.Duration(s.cfg.Scheduling.AvailableLeadMinutes) * time.Minute
		if slot.StartAt().Sub(now) > lead {
			return domain.EventClassification{
				State:   domain.EventStateOfferable,
				Actions: []domain.EventAction{domain.ActionScheduleAvailability},
			}
		}
		return domain.EventClassification{State: domain.EventStateInert}
	}

	if slot.EventTypeDesc == domain.EventTypeInUse && slot.HasAppointmentUsage() {
		windows := slot.WindowsAt(now)
		actions := make([]domain.EventAction, 0, 6)

		// Reopen is owned by the caller's access decision; the engine only
		// exposes the gate
		if caseDetails != nil && caseDetails.ReopenAccess.IsSet() {
			actions = append(actions, domain.ActionReopen)
		}
		if windows.IsFutureAppointment {
			actions = append(actions, domain.ActionReschedule, domain.ActionSwitchMode)
		}
		actions = append(actions, domain.ActionReturnedToWork)
		if windows.IsPastAppointment {
			actions = append(actions, domain.ActionAppointmentDetails)
		}
		if windows.IsCurrentAppointment {
			actions = append(actions, domain.ActionNoShow)
		}

		return domain.EventClassification{State: domain.EventStateScheduled, Actions: actions}
	}

	// Unused slots, holiday and time-off usages, and anything unrecognized
	return domain.EventClassification{State: domain.EventStateInert}
}

func (s *SchedulingService) StageConfig(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.StageConfig {
	cfg := domain.StageConfigFor(slot, caseDetails)
	if cfg.IsEmpty() {
		s.logger.Debug("stage_config.empty", out.LogFields{
			"eventId":       slot.EventID,
			"eventTypeDesc": slot.EventTypeDesc,
			"usageDesc":     slot.UsageDesc,
		})
	}
	return cfg
}

// CaseHeader loads the case backing a Scheduled slot, serving from cache when
// the listener has not invalidated it.
func (s *SchedulingService) CaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if details, exists := s.cachePort.GetCaseHeader(ctx, eventID); exists {
			s.logger.Debug("case_header.cache.hit", out.LogFields{
				"eventId": eventID,
			})
			return details, nil
		}
	}

	details, err := s.agencyPort.GetCaseHeader(ctx, eventID)
	if err != nil {
		s.logger.Error("case_header.fetch_failed", out.LogFields{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("case_header.fetch_failed: %w", err)
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled && details != nil {
		s.cachePort.StoreCaseHeader(ctx, eventID, *details)
	}

	return details, nil
}

// ScheduleAvailability submits a claimant into an Offerable slot. The late
// staff note travels only for claimants beyond the RESEA deadline.
func (s *SchedulingService) ScheduleAvailability(ctx context.Context, slot domain.CalendarSlot, form domain.AvailabilityForm, updateAccess bool) error {
	if !updateAccess {
		return domain.NewValidationError("You do not have access to submit updates.")
	}

	if classification := s.ClassifySlot(ctx, slot, nil); !classification.Enabled(domain.ActionScheduleAvailability) {
		return domain.NewValidationError("This time slot can no longer be assigned.")
	}

	if fieldErrors := validateAvailabilityForm(form); len(fieldErrors) > 0 {
		return &domain.ValidationError{Fields: fieldErrors}
	}

	payload := domain.AvailabilityPayload{
		EventID:            slot.EventID,
		ClaimID:            form.Claimant.ID,
		InformedCmtInd:     form.InformedCmtInd,
		InformedConveyedBy: form.InformedConveyedBy,
		StaffNotes:         form.StaffNotes,
	}
	if form.Claimant.BeyondReseaDeadline.IsSet() {
		payload.LateStaffNote = form.LateStaffNote
	}

	s.logger.Info("availability.submit.started", out.LogFields{
		"eventId": slot.EventID,
		"claimId": form.Claimant.ID,
	})

	if err := s.agencyPort.SubmitAvailability(ctx, payload); err != nil {
		s.logger.Error("availability.submit.failed", out.LogFields{
			"eventId": slot.EventID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("availability.submit.success", out.LogFields{
		"eventId": slot.EventID,
		"claimId": form.Claimant.ID,
	})
	return nil
}
