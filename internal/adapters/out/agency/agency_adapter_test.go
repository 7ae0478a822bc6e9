package agency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newTestAdapter(serverURL string) *AgencyAdapter {
	cfg := &config.Config{}
	cfg.Agency.URL = serverURL
	cfg.Agency.Username = "svc"
	cfg.Agency.Password = "secret"
	return NewAgencyAdapter(cfg, nopLogger{})
}

func TestGetCaseHeader_SendsBasicAuthAndQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "svc", username)
		assert.Equal(t, "secret", password)
		assert.Equal(t, "/case-header", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("eventId"))

		json.NewEncoder(w).Encode(domain.CaseDetails{CaseNum: 777, ClaimantName: "Smith, Pat"})
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	details, err := adapter.GetCaseHeader(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(777), details.CaseNum)
	assert.Equal(t, "Smith, Pat", details.ClaimantName)
}

func TestGetCaseHeader_NotFoundIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	details, err := adapter.GetCaseHeader(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, details)
}

func TestSubmitAvailability_RejectionDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":400,"reason":"Bad Request","errorDetails":[{"errorCode":["SLOT_NO_LONGER_AVAILABLE"]}]}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	err := adapter.SubmitAvailability(context.Background(), domain.AvailabilityPayload{EventID: 1, ClaimID: 2})

	var rejection *domain.BusinessRejection
	assert.ErrorAs(t, err, &rejection)
	assert.Equal(t, []string{"SLOT_NO_LONGER_AVAILABLE"}, rejection.Codes())
}

func TestSubmitAvailability_BareBadRequestIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A 400 with no errorDetails is not a business rejection
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"malformed"}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	err := adapter.SubmitAvailability(context.Background(), domain.AvailabilityPayload{})

	var transport *domain.TransportError
	assert.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusBadRequest, transport.Status)
}

func TestSubmitCaseLookup_PostsPayloadAndReturnsRawRows(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lookup/cases", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`[{"caseNum":777}]`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	rows, err := adapter.SubmitCaseLookup(context.Background(), map[string]interface{}{"claimantName": "smith"})

	assert.NoError(t, err)
	assert.JSONEq(t, `[{"caseNum":777}]`, string(rows))
	assert.Equal(t, "smith", received["claimantName"])
}

func TestFetchOptions_ServerErrorIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.FetchOptions(context.Background(), domain.OptionKindLocalOffice)

	var transport *domain.TransportError
	assert.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusBadGateway, transport.Status)
}
