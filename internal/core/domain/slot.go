package domain

import (
	"time"

	"github.com/reseahub/case-console/internal/core/json_types"
)

type EventTypeDesc string

const (
	EventTypeDoNotSchedule EventTypeDesc = "Do Not Schedule"
	EventTypeAvailable     EventTypeDesc = "Available"
	EventTypeInUse         EventTypeDesc = "In Use"
	EventTypeUnused        EventTypeDesc = "Unused"
)

type UsageDesc string

const (
	UsageTimeOff            UsageDesc = "Time-Off"
	UsageStateHoliday       UsageDesc = "State Holiday"
	UsageInitialAppointment UsageDesc = "Initial Appointment"
	UsageFirstSubsequent    UsageDesc = "1st Subsequent Appointment"
	UsageSecondSubsequent   UsageDesc = "2nd Subsequent Appointment"
)

type MeetingMode string

const (
	MeetingModeInPerson MeetingMode = "I"
	MeetingModeVirtual  MeetingMode = "V"
)

// CalendarSlot is one interview-calendar interval as delivered by the external
// scheduling source. Read-only to this engine; only EventSubmitted changes,
// and only when an appointment-details payload for it is accepted.
type CalendarSlot struct {
	EventID         int64                `json:"eventId"`
	AppointmentDt   json_types.Date      `json:"appointmentDt"`
	StartTime       json_types.ClockTime `json:"startTime"`
	EndTime         json_types.ClockTime `json:"endTime"`
	EventTypeDesc   EventTypeDesc        `json:"eventTypeDesc"`
	UsageDesc       UsageDesc            `json:"usageDesc"`
	AppointmentType MeetingMode          `json:"appointmentType"`
	EventSubmitted  bool                 `json:"eventSubmitted"`
}

// StartAt is the slot's opening instant on its calendar day.
func (s CalendarSlot) StartAt() time.Time {
	return s.StartTime.On(s.AppointmentDt.Date)
}

// EndAt is the slot's closing instant on its calendar day.
func (s CalendarSlot) EndAt() time.Time {
	return s.EndTime.On(s.AppointmentDt.Date)
}

// HasAppointmentUsage reports whether the slot carries one of the three
// appointment usages, as opposed to time-off or holiday blocks.
func (s CalendarSlot) HasAppointmentUsage() bool {
	switch s.UsageDesc {
	case UsageInitialAppointment, UsageFirstSubsequent, UsageSecondSubsequent:
		return true
	}
	return false
}

// windowGraceMinutes is the fixed grace applied around slot boundaries: the
// appointment window effectively opens 30 minutes before the start time and
// closes 30 minutes after the end time.
const windowGraceMinutes = 30

// TimeWindows holds the three independent wall-clock judgements for a slot.
// Past and Future share the same boundary (start minus the grace window),
// not the end time; a slot can be past and current at the same moment.
type TimeWindows struct {
	IsPastAppointment    bool `json:"isPastAppointment"`
	IsFutureAppointment  bool `json:"isFutureAppointment"`
	IsCurrentAppointment bool `json:"isCurrentAppointment"`
}

// WindowsAt evaluates the slot's time windows at the given instant.
func (s CalendarSlot) WindowsAt(now time.Time) TimeWindows {
	opensAt := s.StartAt().Add(-windowGraceMinutes * time.Minute)
	closesAt := s.EndAt().Add(windowGraceMinutes * time.Minute)

	return TimeWindows{
		IsPastAppointment:    now.After(opensAt),
		IsFutureAppointment:  now.Before(opensAt),
		IsCurrentAppointment: now.After(opensAt) && now.Before(closesAt),
	}
}
