package in

import (
	"context"
	"encoding/json"

	"github.com/reseahub/case-console/internal/core/domain"
)

type LookupUseCase interface {
	// Normalize the sparse filter form into a minimal query payload and
	// submit it. An all-empty form fails with the at-least-one-field
	// validation outcome before any transport call.
	LookupCases(ctx context.Context, form domain.CaseLookupForm, sortBy *domain.SortBy) (json.RawMessage, error)
	LookupAppointments(ctx context.Context, form domain.AppointmentLookupForm, sortBy *domain.SortBy) (json.RawMessage, error)
}
