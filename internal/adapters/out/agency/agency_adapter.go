package agency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// AgencyAdapter is the REST client against the agency benefits backend.
// Every call authenticates with basic auth and runs against a 10 second
// timeout. A 400 body with errorDetails decodes into a BusinessRejection;
// any other non-2xx becomes a TransportError.
type AgencyAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewAgencyAdapter(cfg *config.Config, logger out.LoggerPort) *AgencyAdapter {
	return &AgencyAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Agency.URL,
		username: cfg.Agency.Username,
		password: cfg.Agency.Password,
		logger:   logger.WithModule("AgencyAdapter"),
	}
}

func (a *AgencyAdapter) FetchOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	a.logger.Info("agency.options.fetch", out.LogFields{
		"kind": kind,
	})

	var options []domain.Option
	endpoint := fmt.Sprintf("GET:/options/%s", kind)
	url := fmt.Sprintf("%s/options/%s", a.baseURL, nurl.PathEscape(string(kind)))
	if err := a.getJSON(ctx, endpoint, url, nil, &options); err != nil {
		a.logger.Error("agency.options.fetch_failed", out.LogFields{
			"kind":  kind,
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("agency.options.fetch_success", out.LogFields{
		"kind":  kind,
		"count": len(options),
	})
	return options, nil
}

func (a *AgencyAdapter) GetCaseHeader(ctx context.Context, eventID int64) (*domain.CaseDetails, error) {
	a.logger.Info("agency.case_header.fetch", out.LogFields{
		"eventId": eventID,
	})

	query := nurl.Values{}
	query.Add("eventId", fmt.Sprintf("%d", eventID))

	var details domain.CaseDetails
	found, err := a.getJSONOptional(ctx, "GET:/case-header", a.baseURL+"/case-header", query, &details)
	if err != nil {
		a.logger.Error("agency.case_header.fetch_failed", out.LogFields{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return nil, err
	}
	if !found {
		a.logger.Debug("agency.case_header.not_found", out.LogFields{
			"eventId": eventID,
		})
		return nil, nil
	}

	a.logger.Debug("agency.case_header.fetch_success", out.LogFields{
		"eventId": eventID,
		"caseNum": details.CaseNum,
	})
	return &details, nil
}

func (a *AgencyAdapter) GetAppointmentDetails(ctx context.Context, eventID int64) (*domain.AppointmentDetailsPayload, error) {
	a.logger.Info("agency.appointment_details.fetch", out.LogFields{
		"eventId": eventID,
	})

	query := nurl.Values{}
	query.Add("eventId", fmt.Sprintf("%d", eventID))

	var payload domain.AppointmentDetailsPayload
	found, err := a.getJSONOptional(ctx, "GET:/appointment-details", a.baseURL+"/appointment-details", query, &payload)
	if err != nil {
		a.logger.Error("agency.appointment_details.fetch_failed", out.LogFields{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return nil, err
	}
	if !found {
		a.logger.Debug("agency.appointment_details.not_found", out.LogFields{
			"eventId": eventID,
		})
		return nil, nil
	}

	return &payload, nil
}

func (a *AgencyAdapter) SubmitAppointmentDetails(ctx context.Context, payload domain.AppointmentDetailsPayload) error {
	return a.postJSON(ctx, "POST:/appointment-details", a.baseURL+"/appointment-details", payload, nil)
}

func (a *AgencyAdapter) SubmitAvailability(ctx context.Context, payload domain.AvailabilityPayload) error {
	return a.postJSON(ctx, "POST:/availability", a.baseURL+"/availability", payload, nil)
}

func (a *AgencyAdapter) SubmitReassignment(ctx context.Context, payload domain.SingleReassignment) error {
	return a.postJSON(ctx, "POST:/reassign", a.baseURL+"/reassign", payload, nil)
}

func (a *AgencyAdapter) SubmitBulkReassignment(ctx context.Context, payload domain.BulkReassignmentPayload) error {
	return a.postJSON(ctx, "POST:/reassign-all", a.baseURL+"/reassign-all", payload, nil)
}

func (a *AgencyAdapter) SubmitCaseLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	var rows json.RawMessage
	if err := a.postJSON(ctx, "POST:/lookup/cases", a.baseURL+"/lookup/cases", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *AgencyAdapter) SubmitAppointmentLookup(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	var rows json.RawMessage
	if err := a.postJSON(ctx, "POST:/lookup/appointments", a.baseURL+"/lookup/appointments", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *AgencyAdapter) getJSON(ctx context.Context, endpoint, url string, query nurl.Values, result interface{}) error {
	found, err := a.getJSONOptional(ctx, endpoint, url, query, result)
	if err != nil {
		return err
	}
	if !found {
		return &domain.TransportError{Endpoint: endpoint, Status: http.StatusNotFound}
	}
	return nil
}

// getJSONOptional treats 404 as an absent record rather than a failure.
func (a *AgencyAdapter) getJSONOptional(ctx context.Context, endpoint, url string, query nurl.Values, result interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		return false, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if err := a.checkStatus(endpoint, resp); err != nil {
		return false, err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return false, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	return true, nil
}

func (a *AgencyAdapter) postJSON(ctx context.Context, endpoint, url string, payload interface{}, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.TransportError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("agency.request.failed", out.LogFields{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if err := a.checkStatus(endpoint, resp); err != nil {
		return err
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &domain.TransportError{Endpoint: endpoint, Err: err}
		}
	}
	return nil
}

// checkStatus maps the response status onto the typed error surface. Only a
// 400 carrying errorDetails counts as a business rejection.
func (a *AgencyAdapter) checkStatus(endpoint string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		body, readErr := io.ReadAll(resp.Body)
		if readErr == nil {
			rejection := &domain.BusinessRejection{Endpoint: endpoint}
			if err := json.Unmarshal(body, rejection); err == nil && len(rejection.ErrorDetails) > 0 {
				if rejection.Status == 0 {
					rejection.Status = resp.StatusCode
				}
				a.logger.Warn("agency.request.rejected", out.LogFields{
					"endpoint": endpoint,
					"codes":    rejection.Codes(),
				})
				return rejection
			}
		}
	}

	a.logger.Error("agency.request.unexpected_status", out.LogFields{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
	})
	return &domain.TransportError{Endpoint: endpoint, Status: resp.StatusCode}
}
