package model

import "time"

// Lifecycle states of a project.  Only StatusInProgress counts toward
// the dashboard's active project counter.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ProjectStatuses lists every accepted project status for validation.
var ProjectStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// Project is a billable unit of work tied to exactly one client.  The
// client id is not validated against the client store; a project may
// outlive its client and carry a dangling reference.
//
// Fields:
//  ID            – unique identifier assigned by the store.
//  ClientID      – id of the owning client.
//  Name          – short name of the project.
//  DateRequested – when the client requested the work.
//  DateExecuted  – when the work was carried out (nil until then).
//  Description   – free-form description of the work.
//  InvoiceFile   – path of the stored invoice file, empty when none.
//  Cost          – internal cost of delivering the project.
//  Price         – price billed to the client; summed into dashboard revenue.
//  Duration      – estimated duration in hours.
//  Status        – one of the Status* constants.
type Project struct {
	ID            uint64     `json:"id"`
	ClientID      uint64     `json:"clientId"`
	Name          string     `json:"name"`
	DateRequested time.Time  `json:"dateRequested"`
	DateExecuted  *time.Time `json:"dateExecuted,omitempty"`
	Description   string     `json:"description"`
	InvoiceFile   string     `json:"invoiceFile,omitempty"`
	Cost          float64    `json:"cost"`
	Price         float64    `json:"price"`
	Duration      float64    `json:"duration"`
	Status        string     `json:"status"`
}

// ProjectDocument is a file attached to a project.  The file itself
// lives under the uploads directory; only its metadata is stored.
type ProjectDocument struct {
	ID         uint64    `json:"id"`         // store-assigned identifier
	ProjectID  uint64    `json:"projectId"`  // owning project
	Filename   string    `json:"filename"`   // original client-side filename
	Filepath   string    `json:"filepath"`   // server-local storage path
	UploadedAt time.Time `json:"uploadedAt"` // upload timestamp
}
