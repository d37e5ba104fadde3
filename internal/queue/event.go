// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactConvertedEvent is published when a prospective contact is
// promoted to a client.  It carries enough information for downstream
// consumers (CRM sync, notification jobs) to act without querying the
// API.  The client id is the one supplied by the caller; it is not
// guaranteed to reference an existing client record.
type ContactConvertedEvent struct {
	ContactID   uint64 `json:"contact_id"`
	ContactName string `json:"contact_name"`
	ClientID    uint64 `json:"client_id"`
	Method      string `json:"method"`
	Response    string `json:"response"`
	ConvertedAt string `json:"converted_at"`
}
