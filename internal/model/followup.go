package model

import "time"

// Completion states of a follow-up task.
const (
	FollowUpPending  = "Pending"
	FollowUpDone     = "Done"
	FollowUpCanceled = "Canceled"
)

// FollowUpStatuses lists every accepted follow-up status for validation.
var FollowUpStatuses = []string{FollowUpPending, FollowUpDone, FollowUpCanceled}

// FollowUp is a scheduled task assigned to an employee, optionally
// tied to a client and a project.  The referenced ids are not
// validated against their stores; dangling references are tolerated.
// A pending follow-up whose due date lies strictly in the past counts
// as overdue on the dashboard.
//
// Fields:
//  ID          – unique identifier assigned by the store.
//  Description – what needs to be done.
//  ClientID    – optional related client (nil when unrelated).
//  ProjectID   – optional related project (nil when unrelated).
//  EmployeeID  – employee the task is assigned to.
//  DueDate     – when the task is due.
//  Status      – one of the FollowUp* constants.
//  Notes       – free-form notes.
//  CreatedBy   – id of the user who created the task.
type FollowUp struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	ClientID    *uint64   `json:"clientId,omitempty"`
	ProjectID   *uint64   `json:"projectId,omitempty"`
	EmployeeID  uint64    `json:"employeeId"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   uint64    `json:"createdBy"`
}
