package in

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
)

// BulkReassignOutcome is the observable result of driving the bulk flow once.
type BulkReassignOutcome struct {
	State       domain.BulkReassignmentState `json:"state"`
	FieldErrors map[string]string            `json:"fieldErrors,omitempty"`
	Messages    []string                     `json:"messages,omitempty"`
}

type ReassignmentUseCase interface {
	// Single-case reassignment; submits directly, no confirmation step.
	ReassignCase(ctx context.Context, req domain.SingleReassignment, updateAccess bool) error

	// Drive the bulk flow: validation, the PendingConfirm handshake, and the
	// submission once confirmed.
	ReassignAll(ctx context.Context, form domain.BulkReassignmentForm, confirmed bool, updateAccess bool) (*BulkReassignOutcome, error)
}
