package in

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
)

type AppointmentDetailsUseCase interface {
	// Load an existing record with the view-only determination: submitted or
	// past-due records come back with the form disabled.
	LoadDetails(ctx context.Context, slot domain.CalendarSlot) (*domain.AppointmentDetailsView, error)

	// Validate form values against the slot's stage schema, fold them into
	// the minimal wire payload, and submit. The returned payload is what was
	// sent; a *domain.ValidationError never reaches the transport.
	SubmitDetails(ctx context.Context, slot domain.CalendarSlot, form domain.AppointmentDetailsForm, updateAccess bool) (*domain.AppointmentDetailsPayload, error)
}
