package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// CacheAdapter keeps the dropdown catalogs and case headers in two LRU
// caches. The message listener is the only writer of invalidations, so
// entries never expire on their own.
type CacheAdapter struct {
	optionsCache    *lru.Cache[domain.OptionKind, []domain.Option]
	caseHeaderCache *lru.Cache[int64, *domain.CaseDetails]
	mu              sync.RWMutex
	logger          out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	optionsCache, err := lru.New[domain.OptionKind, []domain.Option](cfg.Cache.OptionsSize)
	if err != nil {
		logger.Error("cache.options.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.OptionsSize,
		})
		return nil, err
	}

	caseHeaderCache, err := lru.New[int64, *domain.CaseDetails](cfg.Cache.CaseHeaderSize)
	if err != nil {
		logger.Error("cache.case_header.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.CaseHeaderSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		optionsCache:    optionsCache,
		caseHeaderCache: caseHeaderCache,
		logger:          logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	options, exists := c.optionsCache.Get(kind)
	if !exists {
		c.logger.Debug("cache.options.get.miss", out.LogFields{
			"kind": kind,
		})
		return nil, false
	}

	c.logger.Debug("cache.options.get.hit", out.LogFields{
		"kind":         kind,
		"optionsCount": len(options),
	})
	return options, true
}

func (c *CacheAdapter) StoreOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.options.store", out.LogFields{
		"kind":         kind,
		"optionsCount": len(options),
	})

	c.optionsCache.Add(kind, options)
}

func (c *CacheAdapter) InvalidateOptions(ctx context.Context, kind domain.OptionKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.optionsCache.Remove(kind)
}

func (c *CacheAdapter) GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	details, exists := c.caseHeaderCache.Get(eventID)
	if !exists {
		c.logger.Debug("cache.case_header.get.miss", out.LogFields{
			"eventId": eventID,
		})
		return nil, false
	}

	c.logger.Debug("cache.case_header.get.hit", out.LogFields{
		"eventId": eventID,
	})
	return details, true
}

func (c *CacheAdapter) StoreCaseHeader(ctx context.Context, eventID int64, details domain.CaseDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.case_header.store", out.LogFields{
		"eventId": eventID,
		"caseNum": details.CaseNum,
	})

	c.caseHeaderCache.Add(eventID, &details)
}

func (c *CacheAdapter) InvalidateCaseHeader(ctx context.Context, eventID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.caseHeaderCache.Remove(eventID)
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("cache.invalidate_all.purge", out.LogFields{
		"options":     c.optionsCache.Len(),
		"caseHeaders": c.caseHeaderCache.Len(),
	})

	c.optionsCache.Purge()
	c.caseHeaderCache.Purge()
}
