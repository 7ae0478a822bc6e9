package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func cacheConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.OptionsSize = 10
	cfg.Cache.CaseHeaderSize = 10
	return cfg
}

func TestNewCacheAdapter_DisabledReturnsNil(t *testing.T) {
	cfg := cacheConfig()
	cfg.Cache.Enabled = false

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	assert.NoError(t, err)
	assert.Nil(t, adapter)
}

func TestCacheAdapter_OptionsRoundTrip(t *testing.T) {
	adapter, err := NewCacheAdapter(cacheConfig(), nopLogger{})
	assert.NoError(t, err)
	ctx := context.Background()

	_, exists := adapter.GetOptions(ctx, domain.OptionKindLocalOffice)
	assert.False(t, exists)

	adapter.StoreOptions(ctx, domain.OptionKindLocalOffice, []domain.Option{{ID: "1", Label: "Downtown"}})

	options, exists := adapter.GetOptions(ctx, domain.OptionKindLocalOffice)
	assert.True(t, exists)
	assert.Equal(t, "Downtown", options[0].Label)

	adapter.InvalidateOptions(ctx, domain.OptionKindLocalOffice)
	_, exists = adapter.GetOptions(ctx, domain.OptionKindLocalOffice)
	assert.False(t, exists)
}

func TestCacheAdapter_CaseHeaderRoundTrip(t *testing.T) {
	adapter, err := NewCacheAdapter(cacheConfig(), nopLogger{})
	assert.NoError(t, err)
	ctx := context.Background()

	adapter.StoreCaseHeader(ctx, 42, domain.CaseDetails{CaseNum: 777})

	details, exists := adapter.GetCaseHeader(ctx, 42)
	assert.True(t, exists)
	assert.Equal(t, int64(777), details.CaseNum)

	adapter.InvalidateCaseHeader(ctx, 42)
	_, exists = adapter.GetCaseHeader(ctx, 42)
	assert.False(t, exists)
}

func TestCacheAdapter_InvalidateAll(t *testing.T) {
	adapter, err := NewCacheAdapter(cacheConfig(), nopLogger{})
	assert.NoError(t, err)
	ctx := context.Background()

	adapter.StoreOptions(ctx, domain.OptionKindLocalOffice, []domain.Option{{ID: "1", Label: "Downtown"}})
	adapter.StoreCaseHeader(ctx, 42, domain.CaseDetails{CaseNum: 777})

	adapter.InvalidateAll(ctx)

	_, optionsExist := adapter.GetOptions(ctx, domain.OptionKindLocalOffice)
	_, headerExists := adapter.GetCaseHeader(ctx, 42)
	assert.False(t, optionsExist)
	assert.False(t, headerExists)
}

func TestCacheAdapter_EvictsBeyondCapacity(t *testing.T) {
	cfg := cacheConfig()
	cfg.Cache.CaseHeaderSize = 2

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	assert.NoError(t, err)
	ctx := context.Background()

	adapter.StoreCaseHeader(ctx, 1, domain.CaseDetails{CaseNum: 1})
	adapter.StoreCaseHeader(ctx, 2, domain.CaseDetails{CaseNum: 2})
	adapter.StoreCaseHeader(ctx, 3, domain.CaseDetails{CaseNum: 3})

	_, oldestExists := adapter.GetCaseHeader(ctx, 1)
	_, newestExists := adapter.GetCaseHeader(ctx, 3)
	assert.False(t, oldestExists)
	assert.True(t, newestExists)
}
