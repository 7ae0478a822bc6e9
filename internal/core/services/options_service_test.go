package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reseahub/case-console/internal/core/domain"
)

func TestOptions_UnknownKindIsRejected(t *testing.T) {
	svc := NewOptionsService(nil, nil, newTestConfig(), nopLogger{})

	_, err := svc.Options(context.Background(), "mysteryKind")

	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestOptions_SortsAlphabetically(t *testing.T) {
	agencyPort := new(mockAgencyPort)
	agencyPort.On("FetchOptions", mock.Anything, domain.OptionKindReassignReason).Return([]domain.Option{
		{ID: "3", Label: "Retired"},
		{ID: "1", Label: "caseload balancing"},
		{ID: "2", Label: "Extended leave"},
	}, nil)

	svc := NewOptionsService(agencyPort, nil, newTestConfig(), nopLogger{})
	options, err := svc.Options(context.Background(), domain.OptionKindReassignReason)

	assert.NoError(t, err)
	assert.Equal(t, []string{"caseload balancing", "Extended leave", "Retired"},
		[]string{options[0].Label, options[1].Label, options[2].Label})
}

func TestOptions_CaseStageKeepsServerOrder(t *testing.T) {
	serverOrder := []domain.Option{
		{ID: "1", Label: "Orientation"},
		{ID: "2", Label: "Initial"},
		{ID: "3", Label: "First Subsequent"},
	}
	agencyPort := new(mockAgencyPort)
	agencyPort.On("FetchOptions", mock.Anything, domain.OptionKindCaseStage).Return(serverOrder, nil)

	svc := NewOptionsService(agencyPort, nil, newTestConfig(), nopLogger{})
	options, err := svc.Options(context.Background(), domain.OptionKindCaseStage)

	assert.NoError(t, err)
	assert.Equal(t, serverOrder, options)
}

func TestOptions_ServesFromCache(t *testing.T) {
	agencyPort := new(mockAgencyPort)
	cache := newMemoryCache()
	cache.StoreOptions(context.Background(), domain.OptionKindLocalOffice, []domain.Option{{ID: "1", Label: "Downtown"}})

	svc := NewOptionsService(agencyPort, cache, newTestConfig(), nopLogger{})
	options, err := svc.Options(context.Background(), domain.OptionKindLocalOffice)

	assert.NoError(t, err)
	assert.Len(t, options, 1)
	agencyPort.AssertNotCalled(t, "FetchOptions")
}

func TestOptions_StoresFetchedCatalog(t *testing.T) {
	agencyPort := new(mockAgencyPort)
	agencyPort.On("FetchOptions", mock.Anything, domain.OptionKindLocalOffice).Return([]domain.Option{
		{ID: "1", Label: "Downtown"},
	}, nil).Once()
	cache := newMemoryCache()

	svc := NewOptionsService(agencyPort, cache, newTestConfig(), nopLogger{})

	_, err := svc.Options(context.Background(), domain.OptionKindLocalOffice)
	assert.NoError(t, err)

	cached, exists := cache.GetOptions(context.Background(), domain.OptionKindLocalOffice)
	assert.True(t, exists)
	assert.Len(t, cached, 1)
	agencyPort.AssertExpectations(t)
}

func TestInvalidateOptionsCache(t *testing.T) {
	cache := newMemoryCache()
	cache.StoreOptions(context.Background(), domain.OptionKindLocalOffice, []domain.Option{{ID: "1", Label: "Downtown"}})

	svc := NewOptionsService(nil, cache, newTestConfig(), nopLogger{})
	svc.InvalidateOptionsCache(context.Background(), domain.OptionKindLocalOffice)

	_, exists := cache.GetOptions(context.Background(), domain.OptionKindLocalOffice)
	assert.False(t, exists)
}

func TestInvalidateAllCache(t *testing.T) {
	cache := newMemoryCache()
	cache.StoreOptions(context.Background(), domain.OptionKindLocalOffice, []domain.Option{{ID: "1", Label: "Downtown"}})
	cache.StoreCaseHeader(context.Background(), 42, domain.CaseDetails{CaseNum: 777})

	svc := NewOptionsService(nil, cache, newTestConfig(), nopLogger{})
	svc.InvalidateAllCache(context.Background())

	_, optionsExist := cache.GetOptions(context.Background(), domain.OptionKindLocalOffice)
	_, headerExists := cache.GetCaseHeader(context.Background(), 42)
	assert.False(t, optionsExist)
	assert.False(t, headerExists)
}

func TestInvalidate_NoopWhenCacheDisabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.Cache.Enabled = false

	svc := NewOptionsService(nil, nil, cfg, nopLogger{})

	// Must not panic with a nil cache port
	svc.InvalidateOptionsCache(context.Background(), domain.OptionKindLocalOffice)
	svc.InvalidateCaseHeaderCache(context.Background(), 42)
	svc.InvalidateAllCache(context.Background())
}
