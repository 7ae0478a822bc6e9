package domain

// OptionKind names one dropdown catalog served by the agency backend.
type OptionKind string

const (
	OptionKindLocalOffice       OptionKind = "localOffice"
	OptionKindCaseManager       OptionKind = "caseManager"
	OptionKindCaseStage         OptionKind = "caseStage"
	OptionKindCaseStatus        OptionKind = "caseStatus"
	OptionKindTerminationReason OptionKind = "terminationReason"
	OptionKindReassignReason    OptionKind = "reassignReason"
	OptionKindTimeslotType      OptionKind = "timeslotType"
	OptionKindTimeslotUsage     OptionKind = "timeslotUsage"
	OptionKindMeetingStatus     OptionKind = "meetingStatus"
	OptionKindScheduledBy       OptionKind = "scheduledBy"
)

// KnownOptionKind guards the options endpoint against arbitrary kinds.
func KnownOptionKind(kind OptionKind) bool {
	switch kind {
	case OptionKindLocalOffice, OptionKindCaseManager, OptionKindCaseStage,
		OptionKindCaseStatus, OptionKindTerminationReason, OptionKindReassignReason,
		OptionKindTimeslotType, OptionKindTimeslotUsage, OptionKindMeetingStatus,
		OptionKindScheduledBy:
		return true
	}
	return false
}

// Option is one dropdown entry. The engine only consumes this shape, never
// the catalog's transport.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
