package in

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
)

type OptionsUseCase interface {
	// Options returns one dropdown catalog, sorted alphabetically by label
	// except the case-stage catalog, which keeps server order.
	Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)
}

// CacheHitUseCase is driven by the message listener when the scheduling
// source announces catalog or case changes.
type CacheHitUseCase interface {
	InvalidateOptionsCache(ctx context.Context, kind domain.OptionKind)
	InvalidateCaseHeaderCache(ctx context.Context, eventID int64)
	InvalidateAllCache(ctx context.Context)
}
