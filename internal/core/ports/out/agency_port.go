package out

import (
	"context"
	"encoding/json"

	"github.com/reseahub/case-console/internal/core/domain"
)

// AgencyPort is the REST surface of the agency benefits backend. The engine
// treats it as an opaque collaborator: structured payloads in, structured
// records or typed errors out. There are no retries here; every failure is
// terminal for that attempt.
type AgencyPort interface {
	// Dropdown catalogs
	FetchOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)

	// Case and appointment records
	GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error)
	GetAppointmentDetails(ctx context.Context, eventID int64) (*domain.AppointmentDetailsPayload, error)

	// Submissions
	SubmitAppointmentDetails(ctx context.Context, payload domain.AppointmentDetailsPayload) error
	SubmitAvailability(ctx context.Context, payload domain.AvailabilityPayload) error
	SubmitReassignment(ctx context.Context, payload domain.SingleReassignment) error
	SubmitBulkReassignment(ctx context.Context, payload domain.BulkReassignmentPayload) error

	// Lookups return the backend's summary rows untouched
	SubmitCaseLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error)
	SubmitAppointmentLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error)
}
