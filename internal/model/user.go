package model

import "time"

// RoleAdmin is the role claim issued to users that are not linked to
// an employee profile.  It is not a valid employee role.
const RoleAdmin = "Admin"

// User is a login credential.  A user may be linked to one employee
// profile, in which case the employee's role is carried in the user's
// access tokens; unlinked users act as administrators.
//
// Fields:
//  ID           – unique identifier assigned by the store.
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password; never serialized.
//  EmployeeID   – optional link to an employee profile.
//  CreatedAt    – timestamp when the account was created.
type User struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	EmployeeID   *uint64   `json:"employeeId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken is a long-lived session token stored by its SHA-256
// hash.  The raw value is only ever held by the client.
type RefreshToken struct {
	UserID    uint64     // owner of the token
	TokenHash string     // sha256 hex digest of the raw token
	ExpiresAt time.Time  // expiry timestamp
	RevokedAt *time.Time // when the token was revoked (nil while active)
}
