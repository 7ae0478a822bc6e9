package domain

// AppointmentStage is derived from a slot, never stored. It decides which
// checklist, which other-actions set, and which validation schema apply to the
// appointment-details record.
type AppointmentStage string

const (
	StageNone    AppointmentStage = "None"
	StageInitial AppointmentStage = "Initial"
	StageFirst   AppointmentStage = "FirstSubsequent"
	StageSecond  AppointmentStage = "SecondSubsequent"
)

// StageForSlot maps a slot to its appointment stage. Only In Use slots with an
// appointment usage have a stage; everything else is StageNone.
func StageForSlot(slot CalendarSlot) AppointmentStage {
	if slot.EventTypeDesc != EventTypeInUse {
		return StageNone
	}
	switch slot.UsageDesc {
	case UsageInitialAppointment:
		return StageInitial
	case UsageFirstSubsequent:
		return StageFirst
	case UsageSecondSubsequent:
		return StageSecond
	}
	return StageNone
}

// JMSItemKey identifies one "completed in JMS" checklist checkbox.
// The keys are the exact strings the backend stores, misspellings included.
type JMSItemKey string

const (
	JMSItemRegComplete            JMSItemKey = "JMSRegComplete"
	JMSItemActiveResume           JMSItemKey = "ActiveResume"
	JMSItemActiveVirtualRecruiter JMSItemKey = "ActiveVirtualRecuiter"
	JMSItemOutsideWebReferral     JMSItemKey = "OutsideWebReferral"
	JMSItemJobReferral            JMSItemKey = "JMSJobReferral"
)

// OtherActionKey identifies one "action taken" checkbox.
type OtherActionKey string

const (
	OtherActionReviewedAssessment    OtherActionKey = "ReviewedAssessment"
	OtherActionAssignedMrpChapters   OtherActionKey = "AssignedMrpChapters"
	OtherActionReviewedMrpChapters   OtherActionKey = "ReviewedMrpChapters"
	OtherActionDiscussedWorkSearch   OtherActionKey = "DiscussedWorkSearchReqs"
	OtherActionProvidedLaborMarket   OtherActionKey = "ProvidedLaborMarketInfo"
	OtherActionReferredToTraining    OtherActionKey = "ReferredToTraining"
	OtherActionReferredToJobFair     OtherActionKey = "ReferredToJobFair"
	OtherActionScheduledSelfSchedule OtherActionKey = "ScheduledSelfSchedule"
)

var (
	jmsItemsInitial = []JMSItemKey{
		JMSItemRegComplete,
		JMSItemActiveResume,
		JMSItemActiveVirtualRecruiter,
		JMSItemOutsideWebReferral,
		JMSItemJobReferral,
	}
	jmsItemsFirst = []JMSItemKey{
		JMSItemActiveResume,
		JMSItemActiveVirtualRecruiter,
		JMSItemOutsideWebReferral,
		JMSItemJobReferral,
	}
	jmsItemsSecond = []JMSItemKey{
		JMSItemActiveResume,
		JMSItemActiveVirtualRecruiter,
		JMSItemOutsideWebReferral,
		JMSItemJobReferral,
	}

	otherActionsInitial = []OtherActionKey{
		OtherActionReviewedAssessment,
		OtherActionAssignedMrpChapters,
		OtherActionDiscussedWorkSearch,
		OtherActionProvidedLaborMarket,
		OtherActionReferredToJobFair,
	}
	otherActionsFirst = []OtherActionKey{
		OtherActionReviewedMrpChapters,
		OtherActionDiscussedWorkSearch,
		OtherActionProvidedLaborMarket,
		OtherActionReferredToTraining,
	}
	otherActionsSecond = []OtherActionKey{
		OtherActionReviewedMrpChapters,
		OtherActionProvidedLaborMarket,
		OtherActionReferredToTraining,
		OtherActionScheduledSelfSchedule,
	}
)

// StageConfig is the stage-specific data-entry configuration: which checklist
// items render, which other actions render, and the unfilled starting values.
type StageConfig struct {
	Stage            AppointmentStage       `json:"stage"`
	JMSItemsList     []JMSItemKey           `json:"jmsItemsList"`
	OtherActionsList []OtherActionKey       `json:"otherActionsList"`
	InitialValues    AppointmentDetailsForm `json:"initialValues"`
}

// IsEmpty reports that there is no form to render for this slot.
func (c StageConfig) IsEmpty() bool {
	return c.Stage == StageNone
}

// StageConfigFor selects the configuration triple for a slot. The
// workSearchIssuesCount starting value is seeded from the case's work-search
// records, not from the slot.
func StageConfigFor(slot CalendarSlot, caseDetails *CaseDetails) StageConfig {
	stage := StageForSlot(slot)

	workSearchCount := 0
	if caseDetails != nil {
		workSearchCount = len(caseDetails.WorkSearch)
	}

	cfg := StageConfig{Stage: stage}
	switch stage {
	case StageInitial:
		cfg.JMSItemsList = jmsItemsInitial
		cfg.OtherActionsList = otherActionsInitial
	case StageFirst:
		cfg.JMSItemsList = jmsItemsFirst
		cfg.OtherActionsList = otherActionsFirst
	case StageSecond:
		cfg.JMSItemsList = jmsItemsSecond
		cfg.OtherActionsList = otherActionsSecond
	default:
		// No form to render; caller must treat the empty config as such
		return cfg
	}

	cfg.InitialValues = emptyDetailsForm(cfg.JMSItemsList, cfg.OtherActionsList, workSearchCount)
	return cfg
}

func emptyDetailsForm(items []JMSItemKey, actions []OtherActionKey, workSearchCount int) AppointmentDetailsForm {
	form := AppointmentDetailsForm{
		JMSItems:              make(map[JMSItemKey]bool, len(items)),
		ActionTaken:           make(map[OtherActionKey]bool, len(actions)),
		OutsideWebReferral:    []JobReferral{},
		JMSJobReferral:        []JobReferral{},
		WorkSearchIssues:      []WorkSearchIssueEntry{},
		OtherIssues:           []OtherIssueEntry{},
		WorkSearchIssuesCount: workSearchCount,
	}
	for _, item := range items {
		form.JMSItems[item] = false
	}
	for _, action := range actions {
		form.ActionTaken[action] = false
	}
	return form
}
