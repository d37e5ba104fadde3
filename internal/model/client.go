package model

import "time"

// ClientType distinguishes private individuals from companies.  The
// values are stored verbatim on the client record and echoed back to
// the dashboard, so they must match what the UI sends.
const (
	ClientTypePrivate = "Private"
	ClientTypeCompany = "Company"
)

// ClientTypes lists every accepted client type for validation.
var ClientTypes = []string{ClientTypePrivate, ClientTypeCompany}

// Client represents a customer of the business, either a private
// individual or a company.  Clients are referenced by projects,
// follow-ups and both association sets; deleting a client does not
// cascade to those records.
//
// Fields:
//  ID        – unique identifier assigned by the store.
//  Name      – display name of the person or company.
//  Phone     – contact phone number.
//  Address   – postal address, free form.
//  Type      – one of ClientTypePrivate or ClientTypeCompany.
//  CreatedAt – timestamp when the record was created.
//  UpdatedAt – timestamp of last update.
type Client struct {
	ID        uint64    `json:"id"`        // store-assigned identifier
	Name      string    `json:"name"`      // person or company name
	Phone     string    `json:"phone"`     // contact phone number
	Address   string    `json:"address"`   // postal address
	Type      string    `json:"type"`      // Private | Company
	CreatedAt time.Time `json:"createdAt"` // creation timestamp
	UpdatedAt time.Time `json:"updatedAt"` // last update timestamp
}
