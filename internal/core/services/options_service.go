package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// OptionsService serves the dropdown catalogs and owns cache invalidation
// for the listener. Catalogs change rarely, so cache hits are the normal path.
type OptionsService struct {
	agencyPort out.AgencyPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewOptionsService(
	agencyPort out.AgencyPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *OptionsService {
	return &OptionsService{
		agencyPort: agencyPort,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("OptionsService"),
	}
}

// Options returns one catalog. Labels sort alphabetically except case stages,
// which keep the backend's progression order.
func (s *OptionsService) Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	if !domain.KnownOptionKind(kind) {
		return nil, domain.NewValidationError(fmt.Sprintf("Unknown option kind: %s", kind))
	}

	if s.cacheEnabled() {
		if options, exists := s.cachePort.GetOptions(ctx, kind); exists {
			s.logger.Debug("options.cache.hit", out.LogFields{
				"kind": kind,
			})
			return options, nil
		}
	}

	options, err := s.agencyPort.FetchOptions(ctx, kind)
	if err != nil {
		s.logger.Error("options.fetch_failed", out.LogFields{
			"kind":  kind,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("options.fetch_failed: %w", err)
	}

	if kind != domain.OptionKindCaseStage {
		sort.SliceStable(options, func(i, j int) bool {
			return strings.ToLower(options[i].Label) < strings.ToLower(options[j].Label)
		})
	}

	if s.cacheEnabled() {
		s.cachePort.StoreOptions(ctx, kind, options)
	}

	return options, nil
}

func (s *OptionsService) InvalidateOptionsCache(ctx context.Context, kind domain.OptionKind) {
	if !s.cacheEnabled() {
		return
	}
	s.logger.Info("options.cache.invalidate", out.LogFields{
		"kind": kind,
	})
	s.cachePort.InvalidateOptions(ctx, kind)
}

func (s *OptionsService) InvalidateCaseHeaderCache(ctx context.Context, eventID int64) {
	if !s.cacheEnabled() {
		return
	}
	s.logger.Info("case_header.cache.invalidate", out.LogFields{
		"eventId": eventID,
	})
	s.cachePort.InvalidateCaseHeader(ctx, eventID)
}

func (s *OptionsService) InvalidateAllCache(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	s.logger.Info("cache.invalidate_all", nil)
	s.cachePort.InvalidateAll(ctx)
}

func (s *OptionsService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}
