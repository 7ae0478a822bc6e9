package domain

import (
	"github.com/reseahub/case-console/internal/core/json_types"
)

// SingleReassignment moves one case to a different interview slot. There is no
// confirmation step; it submits directly.
type SingleReassignment struct {
	CaseID           int64  `json:"caseId"`
	EventID          int64  `json:"eventId"`
	ReassignReasonCd string `json:"reassignReasonCd"`
	CaseOffice       string `json:"caseOffice"`
	StaffNotes       string `json:"staffNotes"`
}

// OfficeScope is the mutually exclusive office policy on a bulk reassignment.
// Empty means the caseworker never touched the choice.
type OfficeScope string

const (
	OfficeScopeUnset     OfficeScope = ""
	OfficeScopeLimit     OfficeScope = "limitTo"
	OfficeScopeExtendAll OfficeScope = "extendAll"
)

// BulkReassignmentForm is the "reassign all" entry form: every future case of
// one case manager moves to other managers per the office-scope policy.
type BulkReassignmentForm struct {
	CaseManagerID    string          `json:"caseManagerId"`
	ReassignDt       json_types.Date `json:"reassignDt"`
	LimitOffice      OfficeScope     `json:"limitOffice"`
	ReassignReasonCd string          `json:"reassignReasonCd"`
	StaffNotes       string          `json:"staffNotes"`
}

// BulkReassignmentPayload is the wire shape. LimitOffice is present only when
// an office-scope choice was made: true for limit-to-office, false for
// extend-to-all-offices.
type BulkReassignmentPayload struct {
	CaseManagerID    string `json:"caseManagerId"`
	ReassignReasonCd string `json:"reassignReasonCd"`
	ReassignDt       string `json:"reassignDt"`
	LimitOffice      *bool  `json:"limitOffice,omitempty"`
	StaffNotes       string `json:"staffNotes,omitempty"`
}

// BulkReassignmentState is the confirm-before-submit handshake state.
type BulkReassignmentState string

const (
	BulkStateEditing        BulkReassignmentState = "Editing"
	BulkStatePendingConfirm BulkReassignmentState = "PendingConfirm"
	BulkStateSubmitting     BulkReassignmentState = "Submitting"
	BulkStateSuccess        BulkReassignmentState = "Success"
	BulkStateFailed         BulkReassignmentState = "Failed"
)

// BulkReassignmentFlow is the explicit state machine behind the bulk form:
// Editing -> PendingConfirm -> Submitting -> Success | Failed. Validation
// failure stays in Editing with every field marked touched so all field
// errors render at once; cancelling a pending confirmation sends nothing.
type BulkReassignmentFlow struct {
	state       BulkReassignmentState
	form        BulkReassignmentForm
	touched     map[string]bool
	fieldErrors map[string]string
	messages    []string
}

func NewBulkReassignmentFlow(form BulkReassignmentForm) *BulkReassignmentFlow {
	return &BulkReassignmentFlow{
		state:   BulkStateEditing,
		form:    form,
		touched: make(map[string]bool),
	}
}

func (f *BulkReassignmentFlow) State() BulkReassignmentState {
	return f.state
}

func (f *BulkReassignmentFlow) Form() BulkReassignmentForm {
	return f.form
}

// Touched reports whether a field was marked touched by a failed validation.
func (f *BulkReassignmentFlow) Touched(field string) bool {
	return f.touched[field]
}

func (f *BulkReassignmentFlow) FieldErrors() map[string]string {
	return f.fieldErrors
}

// Messages is the user-visible message list from a failed submission.
func (f *BulkReassignmentFlow) Messages() []string {
	return f.messages
}

// RequestConfirm validates the form. On success the flow moves to
// PendingConfirm; on failure it stays in Editing, all fields marked touched.
func (f *BulkReassignmentFlow) RequestConfirm(fieldErrors map[string]string) bool {
	if f.state != BulkStateEditing {
		return false
	}

	if len(fieldErrors) > 0 {
		for _, field := range []string{"caseManagerId", "reassignDt", "limitOffice", "reassignReasonCd", "staffNotes"} {
			f.touched[field] = true
		}
		f.fieldErrors = fieldErrors
		return false
	}

	f.fieldErrors = nil
	f.state = BulkStatePendingConfirm
	return true
}

// Cancel returns a pending confirmation to Editing with no request sent.
func (f *BulkReassignmentFlow) Cancel() {
	if f.state == BulkStatePendingConfirm {
		f.state = BulkStateEditing
	}
}

// Confirm moves the flow to Submitting and freezes the payload from a single
// snapshot of the form; later edits cannot race an in-flight submission.
func (f *BulkReassignmentFlow) Confirm() (BulkReassignmentPayload, bool) {
	if f.state != BulkStatePendingConfirm {
		return BulkReassignmentPayload{}, false
	}

	f.state = BulkStateSubmitting
	return f.Payload(), true
}

// Payload builds the wire payload from the current form snapshot.
func (f *BulkReassignmentFlow) Payload() BulkReassignmentPayload {
	payload := BulkReassignmentPayload{
		CaseManagerID:    f.form.CaseManagerID,
		ReassignReasonCd: f.form.ReassignReasonCd,
		ReassignDt:       f.form.ReassignDt.String(),
	}
	if f.form.LimitOffice != OfficeScopeUnset {
		limit := f.form.LimitOffice == OfficeScopeLimit
		payload.LimitOffice = &limit
	}
	if len(f.form.StaffNotes) > 0 {
		payload.StaffNotes = f.form.StaffNotes
	}
	return payload
}

// Complete records the submission outcome. A failure surfaces the message
// list and drops the form back to Editing for correction and resubmission.
func (f *BulkReassignmentFlow) Complete(messages []string) {
	if f.state != BulkStateSubmitting {
		return
	}

	if len(messages) > 0 {
		f.messages = messages
		f.state = BulkStateFailed
		// Form state stays intact; the next edit resumes from Editing
		return
	}
	f.state = BulkStateSuccess
}

// Resume puts a Failed flow back into Editing, keeping the form values.
func (f *BulkReassignmentFlow) Resume() {
	if f.state == BulkStateFailed {
		f.state = BulkStateEditing
	}
}
