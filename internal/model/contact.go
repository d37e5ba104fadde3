package model

import "time"

// How a prospective contact was approached.
const (
	MethodPhone    = "Phone"
	MethodEmail    = "Email"
	MethodInPerson = "In-person"
)

// ContactMethods lists every accepted contact method for validation.
var ContactMethods = []string{MethodPhone, MethodEmail, MethodInPerson}

// Outcome of the approach.
const (
	ResponsePositive   = "Positive"
	ResponseNegative   = "Negative"
	ResponseNoResponse = "No Response"
)

// ContactResponses lists every accepted response value for validation.
var ContactResponses = []string{ResponsePositive, ResponseNegative, ResponseNoResponse}

// Contact is an unconverted sales lead.  When the lead becomes a
// paying customer it is marked converted and carries the id of the
// client record it resolved to.  The conversion deliberately does not
// verify that the client id exists, nor does it create the client;
// both are the caller's responsibility.
//
// Fields:
//  ID                – unique identifier assigned by the store.
//  Name              – name of the prospective contact.
//  Phone             – phone number, may be empty when Email is set.
//  Email             – email address, may be empty when Phone is set.
//  ContactedAt       – date the contact was approached.
//  Method            – one of the Method* constants.
//  Response          – one of the Response* constants.
//  Notes             – free-form notes about the exchange.
//  Converted         – whether the lead was promoted to a client.
//  ConvertedClientID – id of the resulting client record, 0 until converted.
type Contact struct {
	ID                uint64    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	ContactedAt       time.Time `json:"contactedAt"`
	Method            string    `json:"method"`
	Response          string    `json:"response"`
	Notes             string    `json:"notes,omitempty"`
	Converted         bool      `json:"convertedToClient"`
	ConvertedClientID uint64    `json:"convertedClientId,omitempty"`
}
