package model

// ClientServiceKey identifies one client-service subscription.  Using
// a comparable struct as the map key avoids the string concatenation
// the association would otherwise need; re-adding the same pair is an
// idempotent overwrite, never a duplicate.
type ClientServiceKey struct {
	ClientID  uint64 `json:"clientId"`
	ServiceID uint64 `json:"serviceId"`
}

// EmployeeClientKey identifies one employee-client assignment.
type EmployeeClientKey struct {
	EmployeeID uint64 `json:"employeeId"`
	ClientID   uint64 `json:"clientId"`
}
