// Package repository contains the data access layer between HTTP
// handlers and the in-memory store.  Each entity gets its own
// repository with create/get/list/update/delete operations plus the
// filtered lookups the handlers need.  Absence of a record is always
// reported as ErrNotFound, never as a panic or a distinct "bad id"
// error; there is no difference between a malformed id and a valid id
// with no match.
package repository

import "errors"

// ErrNotFound is returned when a referenced id has no record.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when registering a user whose
// username is already taken.  Handlers translate it into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when creating or updating an employee
// with an email address already held by another employee.
var ErrEmailExists = errors.New("email already exists")
