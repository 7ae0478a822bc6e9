package domain

// AvailabilityForm schedules a claimant into an Offerable slot.
type AvailabilityForm struct {
	Claimant           Claimant `json:"claimant"`
	InformedCmtInd     YNFlag   `json:"informedCmtInd"`
	InformedConveyedBy []string `json:"informedConveyedBy"`
	StaffNotes         string   `json:"staffNotes"`
	LateStaffNote      string   `json:"lateStaffNote"`
}

// AvailabilityPayload is the wire shape of an availability assignment.
// LateStaffNote is sent only for claimants beyond the RESEA deadline.
type AvailabilityPayload struct {
	EventID            int64    `json:"eventId"`
	ClaimID            int64    `json:"claimId"`
	InformedCmtInd     YNFlag   `json:"informedCmtInd"`
	InformedConveyedBy []string `json:"informedConveyedBy"`
	StaffNotes         string   `json:"staffNotes"`
	LateStaffNote      string   `json:"lateStaffNote,omitempty"`
}
