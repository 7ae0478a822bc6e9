package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/json_types"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// LookupService folds sparse, checkbox-gated filter forms into minimal query
// payloads and forwards them to the backend's summary endpoints.
type LookupService struct {
	agencyPort out.AgencyPort
	logger     out.LoggerPort
}

func NewLookupService(agencyPort out.AgencyPort, logger out.LoggerPort) *LookupService {
	return &LookupService{
		agencyPort: agencyPort,
		logger:     logger.WithModule("LookupService"),
	}
}

var defaultCaseSort = domain.SortBy{Field: "eventDateTime", Direction: "ASC"}
var defaultAppointmentSort = domain.SortBy{Field: "eventDateTime", Direction: "ASC"}

// BuildLookupPayload normalizes declared filter fields into the wire payload.
// Falsy values, empty arrays, and the "N" off-sentinel are skipped; dates
// reformat to MM/DD/YYYY; numeric fields coerce to numbers. If nothing
// survives besides the pagination and sortBy block, the result is the
// at-least-one-field validation outcome, not an empty query.
func BuildLookupPayload(fields []domain.LookupFieldValue, sortBy domain.SortBy) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"pagination": domain.DefaultPagination(),
		"sortBy":     sortBy,
	}

	for _, field := range fields {
		switch field.Kind {
		case domain.LookupFieldText:
			value := field.Value.(string)
			if value == "" || value == "N" {
				continue
			}
			payload[field.Name] = value
		case domain.LookupFieldMulti:
			value := field.Value.([]string)
			if len(value) == 0 {
				continue
			}
			payload[field.Name] = value
		case domain.LookupFieldDate:
			value := field.Value.(json_types.Date)
			if value.IsZero() {
				continue
			}
			payload[field.Name] = value.String()
		case domain.LookupFieldInteger:
			value := field.Value.(string)
			if value == "" {
				continue
			}
			number, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			payload[field.Name] = number
		case domain.LookupFieldFlag:
			value := field.Value.(domain.YNFlag)
			if !value.IsSet() {
				continue
			}
			payload[field.Name] = string(value)
		}
	}

	if len(payload) == 2 {
		return nil, domain.NewValidationError(domain.AtLeastOneFieldMessage)
	}

	return payload, nil
}

func (s *LookupService) LookupCases(ctx context.Context, form domain.CaseLookupForm, sortBy *domain.SortBy) (json.RawMessage, error) {
	sort := defaultCaseSort
	if sortBy != nil {
		sort = *sortBy
	}

	payload, err := BuildLookupPayload(form.Fields(), sort)
	if err != nil {
		s.logger.Debug("lookup.cases.rejected", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("lookup.cases.started", out.LogFields{
		"fieldCount": len(payload) - 2,
	})

	result, err := s.agencyPort.SubmitCaseLookup(ctx, payload)
	if err != nil {
		s.logger.Error("lookup.cases.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return result, nil
}

func (s *LookupService) LookupAppointments(ctx context.Context, form domain.AppointmentLookupForm, sortBy *domain.SortBy) (json.RawMessage, error) {
	sort := defaultAppointmentSort
	if sortBy != nil {
		sort = *sortBy
	}

	payload, err := BuildLookupPayload(form.Fields(), sort)
	if err != nil {
		s.logger.Debug("lookup.appointments.rejected", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("lookup.appointments.started", out.LogFields{
		"fieldCount": len(payload) - 2,
	})

	result, err := s.agencyPort.SubmitAppointmentLookup(ctx, payload)
	if err != nil {
		s.logger.Error("lookup.appointments.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return result, nil
}
