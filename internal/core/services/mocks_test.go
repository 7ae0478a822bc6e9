package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

type mockAgencyPort struct {
	mock.Mock
}

func (m *mockAgencyPort) FetchOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Option), args.Error(1)
}

func (m *mockAgencyPort) GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDetails), args.Error(1)
}

func (m *mockAgencyPort) GetAppointmentDetails(ctx context.Context, eventID int64) (*domain.AppointmentDetailsPayload, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentDetailsPayload), args.Error(1)
}

func (m *mockAgencyPort) SubmitAppointmentDetails(ctx context.Context, payload domain.AppointmentDetailsPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockAgencyPort) SubmitAvailability(ctx context.Context, payload domain.AvailabilityPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockAgencyPort) SubmitReassignment(ctx context.Context, payload domain.SingleReassignment) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockAgencyPort) SubmitBulkReassignment(ctx context.Context, payload domain.BulkReassignmentPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockAgencyPort) SubmitCaseLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *mockAgencyPort) SubmitAppointmentLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// stubClock pins Now for the window rules.
type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

// memoryCache is a map-backed CachePort for tests.
type memoryCache struct {
	options     map[domain.OptionKind][]domain.Option
	caseHeaders map[int64]*domain.CaseDetails
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		options:     make(map[domain.OptionKind][]domain.Option),
		caseHeaders: make(map[int64]*domain.CaseDetails),
	}
}

func (c *memoryCache) GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, bool) {
	options, exists := c.options[kind]
	return options, exists
}

func (c *memoryCache) StoreOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option) {
	c.options[kind] = options
}

func (c *memoryCache) InvalidateOptions(ctx context.Context, kind domain.OptionKind) {
	delete(c.options, kind)
}

func (c *memoryCache) GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, bool) {
	details, exists := c.caseHeaders[eventID]
	return details, exists
}

func (c *memoryCache) StoreCaseHeader(ctx context.Context, eventID int64, details domain.CaseDetails) {
	c.caseHeaders[eventID] = &details
}

func (c *memoryCache) InvalidateCaseHeader(ctx context.Context, eventID int64) {
	delete(c.caseHeaders, eventID)
}

func (c *memoryCache) InvalidateAll(ctx context.Context) {
	c.options = make(map[domain.OptionKind][]domain.Option)
	c.caseHeaders = make(map[int64]*domain.CaseDetails)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }
