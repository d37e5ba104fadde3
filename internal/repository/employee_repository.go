package repository

import (
	"strings"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// EmployeeInput carries the fields accepted when creating an employee.
type EmployeeInput struct {
	Name   string
	Email  string
	Role   string
	Active bool
}

// EmployeePatch carries the optional fields of a partial update.
type EmployeePatch struct {
	Name   *string
	Email  *string
	Role   *string
	Active *bool
}

// EmployeeRepo provides employee persistence plus the employee-client
// assignment operations.  Employee emails are unique, compared case
// insensitively.
type EmployeeRepo struct {
	store *store.Store
}

// NewEmployeeRepo constructs an EmployeeRepo over the given store.
func NewEmployeeRepo(s *store.Store) *EmployeeRepo {
	return &EmployeeRepo{store: s}
}

// emailTaken reports whether another employee (any id except exclude)
// already holds the email.
func (r *EmployeeRepo) emailTaken(email string, exclude uint64) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	hits := r.store.Employees.Filter(func(e model.Employee) bool {
		return e.ID != exclude && strings.ToLower(e.Email) == email
	})
	return len(hits) > 0
}

// Create assigns the next id and stores the employee.  It returns
// ErrEmailExists when the email is already held by another employee.
func (r *EmployeeRepo) Create(in EmployeeInput) (model.Employee, error) {
	if r.emailTaken(in.Email, 0) {
		return model.Employee{}, ErrEmailExists
	}
	e := r.store.Employees.Insert(func(id uint64) model.Employee {
		return model.Employee{
			ID:     id,
			Name:   in.Name,
			Email:  in.Email,
			Role:   in.Role,
			Active: in.Active,
		}
	})
	return e, nil
}

// GetByID returns the employee or ErrNotFound.
func (r *EmployeeRepo) GetByID(id uint64) (model.Employee, error) {
	e, ok := r.store.Employees.Get(id)
	if !ok {
		return model.Employee{}, ErrNotFound
	}
	return e, nil
}

// List returns all employees in insertion order.
func (r *EmployeeRepo) List() []model.Employee {
	return r.store.Employees.List()
}

// ListByRole returns the employees holding one business role.
func (r *EmployeeRepo) ListByRole(role string) []model.Employee {
	return r.store.Employees.Filter(func(e model.Employee) bool {
		return e.Role == role
	})
}

// Update merges the non-nil patch fields into the stored record.  A
// patched email must not collide with another employee's.
func (r *EmployeeRepo) Update(id uint64, p EmployeePatch) (model.Employee, error) {
	if p.Email != nil && r.emailTaken(*p.Email, id) {
		return model.Employee{}, ErrEmailExists
	}
	e, ok := r.store.Employees.Update(id, func(e model.Employee) model.Employee {
		if p.Name != nil {
			e.Name = *p.Name
		}
		if p.Email != nil {
			e.Email = *p.Email
		}
		if p.Role != nil {
			e.Role = *p.Role
		}
		if p.Active != nil {
			e.Active = *p.Active
		}
		return e
	})
	if !ok {
		return model.Employee{}, ErrNotFound
	}
	return e, nil
}

// Delete removes the employee.  Follow-ups, assignments and user
// accounts referencing the employee are left in place.
func (r *EmployeeRepo) Delete(id uint64) error {
	if !r.store.Employees.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// AssignClient records that the employee manages the client.  Both
// ids must refer to existing records; re-adding an existing pair is
// idempotent.
func (r *EmployeeRepo) AssignClient(employeeID, clientID uint64) error {
	if _, ok := r.store.Employees.Get(employeeID); !ok {
		return ErrNotFound
	}
	if _, ok := r.store.Clients.Get(clientID); !ok {
		return ErrNotFound
	}
	r.store.EmployeeClients.Add(model.EmployeeClientKey{EmployeeID: employeeID, ClientID: clientID})
	return nil
}

// UnassignClient drops the assignment pair, reporting ErrNotFound
// when it was not present.
func (r *EmployeeRepo) UnassignClient(employeeID, clientID uint64) error {
	key := model.EmployeeClientKey{EmployeeID: employeeID, ClientID: clientID}
	if !r.store.EmployeeClients.Remove(key) {
		return ErrNotFound
	}
	return nil
}

// ClientsFor resolves the clients assigned to the employee.
// Assignments pointing at a deleted client are skipped.
func (r *EmployeeRepo) ClientsFor(employeeID uint64) ([]model.Client, error) {
	if _, ok := r.store.Employees.Get(employeeID); !ok {
		return nil, ErrNotFound
	}
	var out []model.Client
	for _, key := range r.store.EmployeeClients.Keys() {
		if key.EmployeeID != employeeID {
			continue
		}
		if c, ok := r.store.Clients.Get(key.ClientID); ok {
			out = append(out, c)
		}
	}
	return out, nil
}
