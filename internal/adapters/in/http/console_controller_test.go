package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/in"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

// stubUseCases implements every inbound port with overridable funcs.
type stubUseCases struct {
	classifySlot         func(slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.EventClassification
	scheduleAvailability func(slot domain.CalendarSlot, form domain.AvailabilityForm, updateAccess bool) error
	reassignCase         func(req domain.SingleReassignment, updateAccess bool) error
	options              func(kind domain.OptionKind) ([]domain.Option, error)
}

func (s *stubUseCases) ClassifySlot(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.EventClassification {
	if s.classifySlot != nil {
		return s.classifySlot(slot, caseDetails)
	}
	return domain.EventClassification{State: domain.EventStateInert}
}

func (s *stubUseCases) SlotWindows(slot domain.CalendarSlot) domain.TimeWindows {
	return domain.TimeWindows{}
}

func (s *stubUseCases) StageConfig(ctx context.Context, slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.StageConfig {
	return domain.StageConfigFor(slot, caseDetails)
}

func (s *stubUseCases) ScheduleAvailability(ctx context.Context, slot domain.CalendarSlot, form domain.AvailabilityForm, updateAccess bool) error {
	if s.scheduleAvailability != nil {
		return s.scheduleAvailability(slot, form, updateAccess)
	}
	return nil
}

func (s *stubUseCases) CaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error) {
	return &domain.CaseDetails{CaseNum: 777}, nil
}

func (s *stubUseCases) LoadDetails(ctx context.Context, slot domain.CalendarSlot) (*domain.AppointmentDetailsView, error) {
	return &domain.AppointmentDetailsView{Empty: true}, nil
}

func (s *stubUseCases) SubmitDetails(ctx context.Context, slot domain.CalendarSlot, form domain.AppointmentDetailsForm, updateAccess bool) (*domain.AppointmentDetailsPayload, error) {
	return &domain.AppointmentDetailsPayload{EventID: slot.EventID}, nil
}

func (s *stubUseCases) LookupCases(ctx context.Context, form domain.CaseLookupForm, sortBy *domain.SortBy) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *stubUseCases) LookupAppointments(ctx context.Context, form domain.AppointmentLookupForm, sortBy *domain.SortBy) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *stubUseCases) ReassignCase(ctx context.Context, req domain.SingleReassignment, updateAccess bool) error {
	if s.reassignCase != nil {
		return s.reassignCase(req, updateAccess)
	}
	return nil
}

func (s *stubUseCases) ReassignAll(ctx context.Context, form domain.BulkReassignmentForm, confirmed bool, updateAccess bool) (*in.BulkReassignOutcome, error) {
	return &in.BulkReassignOutcome{State: domain.BulkStatePendingConfirm}, nil
}

func (s *stubUseCases) Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	if s.options != nil {
		return s.options(kind)
	}
	return []domain.Option{}, nil
}

func newTestRouter(stub *stubUseCases) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.BasicClients = []config.ConfigBasicClient{{Username: "console", Password: "secret"}}

	router := gin.New()
	controller := NewConsoleController(stub, stub, stub, stub, stub, cfg, nopLogger{})
	controller.RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body string, authorized bool, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.SetBasicAuth("console", "secret")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const slotBody = `{"slot":{"eventId":1,"appointmentDt":"01/10/2024","startTime":"10:00","endTime":"11:00","eventTypeDesc":"In Use","usageDesc":"Initial Appointment"}}`

func TestRoutes_RequireBasicAuth(t *testing.T) {
	router := newTestRouter(&stubUseCases{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/events/classify", slotBody, false, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Header().Get("WWW-Authenticate"), "Basic")
}

func TestRoutes_WrongCredentialsRejected(t *testing.T) {
	router := newTestRouter(&stubUseCases{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/classify", strings.NewReader(slotBody))
	req.SetBasicAuth("console", "wrong")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestClassifyEvent_ReturnsStateActionsAndWindows(t *testing.T) {
	stub := &stubUseCases{
		classifySlot: func(slot domain.CalendarSlot, caseDetails *domain.CaseDetails) domain.EventClassification {
			return domain.EventClassification{
				State:   domain.EventStateScheduled,
				Actions: []domain.EventAction{domain.ActionReturnedToWork},
			}
		},
	}
	router := newTestRouter(stub)

	recorder := doRequest(router, http.MethodPost, "/api/v1/events/classify", slotBody, true, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Scheduled", body["state"])
	assert.Equal(t, []interface{}{"returnedToWork"}, body["actions"])
	assert.Contains(t, body, "windows")
}

func TestClassifyEvent_MalformedBodyIsBadRequest(t *testing.T) {
	router := newTestRouter(&stubUseCases{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/events/classify", `{"slot":`, true, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestScheduleAvailability_PropagatesUpdateAccessHeader(t *testing.T) {
	var seenAccess bool
	stub := &stubUseCases{
		scheduleAvailability: func(slot domain.CalendarSlot, form domain.AvailabilityForm, updateAccess bool) error {
			seenAccess = updateAccess
			return nil
		},
	}
	router := newTestRouter(stub)

	body := `{"slot":{"eventId":1},"form":{"claimant":{"id":5}}}`

	recorder := doRequest(router, http.MethodPost, "/api/v1/availability", body, true, map[string]string{"X-Update-Access": "Y"})
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, seenAccess)

	recorder = doRequest(router, http.MethodPost, "/api/v1/availability", body, true, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.False(t, seenAccess)
}

func TestReassignCase_ValidationErrorIs422(t *testing.T) {
	stub := &stubUseCases{
		reassignCase: func(req domain.SingleReassignment, updateAccess bool) error {
			return &domain.ValidationError{Fields: map[string]string{"reassignReasonCd": "Reassign reason is required"}}
		},
	}
	router := newTestRouter(stub)

	recorder := doRequest(router, http.MethodPost, "/api/v1/reassign", `{"caseId":1}`, true, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	fieldErrors := body["fieldErrors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "reassignReasonCd")
}

func TestOptionCatalog_ReturnsOptions(t *testing.T) {
	stub := &stubUseCases{
		options: func(kind domain.OptionKind) ([]domain.Option, error) {
			assert.Equal(t, domain.OptionKindReassignReason, kind)
			return []domain.Option{{ID: "1", Label: "Retired"}}, nil
		},
	}
	router := newTestRouter(stub)

	recorder := doRequest(router, http.MethodGet, "/api/v1/options/reassignReason", "", true, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"options":[{"id":"1","label":"Retired"}]}`, recorder.Body.String())
}

func TestRequestID_EchoedOnResponse(t *testing.T) {
	router := newTestRouter(&stubUseCases{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/options/localOffice", "", true, nil)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	recorder = doRequest(router, http.MethodGet, "/api/v1/options/localOffice", "", true,
		map[string]string{"X-Request-Id": "fixed-id"})
	assert.Equal(t, "fixed-id", recorder.Header().Get("X-Request-Id"))
}
