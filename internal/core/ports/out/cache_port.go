package out

import (
	"context"

	"github.com/reseahub/case-console/internal/core/domain"
)

type CachePort interface {
	// Dropdown catalog caching
	GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, bool)
	StoreOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option)
	InvalidateOptions(ctx context.Context, kind domain.OptionKind)

	// Case header caching
	GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, bool)
	StoreCaseHeader(ctx context.Context, eventID int64, details domain.CaseDetails)
	InvalidateCaseHeader(ctx context.Context, eventID int64)

	InvalidateAll(ctx context.Context)
}
