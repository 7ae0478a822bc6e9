package services

import (
	"errors"
	"fmt"

	"github.com/reseahub/case-console/internal/core/domain"
)

// Endpoint keys for the error-code catalog, METHOD:path as the backend logs them.
const (
	EndpointAppointmentDetailsGet  = "GET:/appointment-details"
	EndpointAppointmentDetailsSave = "POST:/appointment-details"
	EndpointAvailabilitySave       = "POST:/availability"
	EndpointCaseHeaderGet          = "GET:/case-header"
	EndpointCaseLookup             = "POST:/lookup/cases"
	EndpointAppointmentLookup      = "POST:/lookup/appointments"
	EndpointReassignSave           = "POST:/reassign"
	EndpointReassignAllSave        = "POST:/reassign-all"
	EndpointOptionsGet             = "GET:/options"
)

// errorCatalog maps (endpoint, code) to a user-visible message. Codes missing
// here fall back to the shared reason-code table, then to the default.
var errorCatalog = map[string]map[string]string{
	EndpointAppointmentDetailsSave: {
		"EVENT_ALREADY_SUBMITTED": "Appointment details were already submitted for this appointment.",
		"EVENT_NOT_HELD":          "Appointment details cannot be recorded before the appointment is held.",
	},
	EndpointAvailabilitySave: {
		"SLOT_NO_LONGER_AVAILABLE": "This time slot is no longer available.",
		"CLAIMANT_ALREADY_BOOKED":  "The selected claimant already has an appointment scheduled.",
	},
	EndpointReassignSave: {
		"EVENT_IN_PAST": "Cases cannot be reassigned to an appointment slot in the past.",
	},
	EndpointReassignAllSave: {
		"NO_CASES_TO_REASSIGN": "The case manager has no cases on or after the selected date.",
		"NO_AVAILABLE_SLOTS":   "There are not enough available appointment slots to reassign all cases.",
	},
}

var reasonCodeMessages = map[string]string{
	"UNAUTHORIZED":   "You are not authorized to perform this action.",
	"NOT_FOUND":      "The requested record could not be found.",
	"INVALID_INPUT":  "The submitted data failed backend validation.",
	"STALE_RECORD":   "The record was changed by another user. Refresh and try again.",
	"SYSTEM_UNAVAIL": "A downstream system is temporarily unavailable. Try again later.",
}

const defaultErrorMessage = "An unexpected error occurred. Please try again or contact support."

// MessagesFromError maps a failed round trip into the user-visible message
// list. Raw codes never surface; unmapped codes collapse to the default.
func MessagesFromError(endpoint string, err error) []string {
	var codes []string

	var rejection *domain.BusinessRejection
	var transport *domain.TransportError
	switch {
	case errors.As(err, &rejection):
		codes = rejection.Codes()
	case errors.As(err, &transport):
		if transport.Reason != "" {
			codes = []string{transport.Reason}
		} else {
			codes = []string{fmt.Sprintf("%d", transport.Status)}
		}
	default:
		return []string{defaultErrorMessage}
	}

	var messages []string
	for _, code := range codes {
		if byEndpoint, ok := errorCatalog[endpoint]; ok {
			if msg, ok := byEndpoint[code]; ok {
				messages = append(messages, msg)
				continue
			}
		}
		if msg, ok := reasonCodeMessages[code]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, defaultErrorMessage)
	}

	if len(messages) == 0 {
		messages = append(messages, defaultErrorMessage)
	}
	return messages
}
