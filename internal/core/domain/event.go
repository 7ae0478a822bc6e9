package domain

// EventState is the closed set of semantic states a calendar slot can be in.
type EventState string

const (
	// EventStateBlocked covers Do Not Schedule intervals: nothing is clickable.
	EventStateBlocked EventState = "Blocked"
	// EventStateOfferable is an Available appointment slot still far enough
	// ahead of its start time to schedule a claimant into it.
	EventStateOfferable EventState = "Offerable"
	// EventStateScheduled is an In Use appointment slot with a claimant booked.
	EventStateScheduled EventState = "Scheduled"
	// EventStateInert is everything else, including combinations the engine
	// does not recognize.
	EventStateInert EventState = "Inert"
)

type EventAction string

const (
	ActionScheduleAvailability EventAction = "scheduleAvailability"
	ActionReopen               EventAction = "reopen"
	ActionReschedule           EventAction = "reschedule"
	ActionSwitchMode           EventAction = "switchMode"
	ActionReturnedToWork       EventAction = "returnedToWork"
	ActionAppointmentDetails   EventAction = "appointmentDetails"
	ActionNoShow               EventAction = "noShow"
)

// EventClassification pairs a slot's state with the ordered set of actions a
// caseworker may take on it right now.
type EventClassification struct {
	State   EventState    `json:"state"`
	Actions []EventAction `json:"availableActions"`
}

// Enabled reports whether the given action is currently legal.
func (c EventClassification) Enabled(action EventAction) bool {
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}
