package repository

import (
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// FollowUpInput carries the fields accepted when creating a task.
type FollowUpInput struct {
	Description string
	ClientID    *uint64
	ProjectID   *uint64
	EmployeeID  uint64
	DueDate     time.Time
	Status      string
	Notes       string
	CreatedBy   uint64
}

// FollowUpPatch carries the optional fields of a partial update.
type FollowUpPatch struct {
	Description *string
	ClientID    *uint64
	ProjectID   *uint64
	EmployeeID  *uint64
	DueDate     *time.Time
	Status      *string
	Notes       *string
}

// FollowUpFilter narrows a listing.  Nil fields match everything, so
// the zero filter lists all tasks.  Filters combine with AND.
type FollowUpFilter struct {
	Status     *string
	ClientID   *uint64
	EmployeeID *uint64
}

// FollowUpRepo provides persistence for follow-up tasks.  None of the
// foreign ids on a task are validated against their stores.
type FollowUpRepo struct {
	store *store.Store
}

// NewFollowUpRepo constructs a FollowUpRepo over the given store.
func NewFollowUpRepo(s *store.Store) *FollowUpRepo {
	return &FollowUpRepo{store: s}
}

// Create assigns the next id and stores the task.
func (r *FollowUpRepo) Create(in FollowUpInput) model.FollowUp {
	return r.store.FollowUps.Insert(func(id uint64) model.FollowUp {
		return model.FollowUp{
			ID:          id,
			Description: in.Description,
			ClientID:    in.ClientID,
			ProjectID:   in.ProjectID,
			EmployeeID:  in.EmployeeID,
			DueDate:     in.DueDate,
			Status:      in.Status,
			Notes:       in.Notes,
			CreatedBy:   in.CreatedBy,
		}
	})
}

// GetByID returns the task or ErrNotFound.
func (r *FollowUpRepo) GetByID(id uint64) (model.FollowUp, error) {
	f, ok := r.store.FollowUps.Get(id)
	if !ok {
		return model.FollowUp{}, ErrNotFound
	}
	return f, nil
}

// List returns the tasks matching the filter in insertion order.
func (r *FollowUpRepo) List(filter FollowUpFilter) []model.FollowUp {
	return r.store.FollowUps.Filter(func(f model.FollowUp) bool {
		if filter.Status != nil && f.Status != *filter.Status {
			return false
		}
		if filter.ClientID != nil && (f.ClientID == nil || *f.ClientID != *filter.ClientID) {
			return false
		}
		if filter.EmployeeID != nil && f.EmployeeID != *filter.EmployeeID {
			return false
		}
		return true
	})
}

// Update merges the non-nil patch fields into the stored record.
func (r *FollowUpRepo) Update(id uint64, p FollowUpPatch) (model.FollowUp, error) {
	f, ok := r.store.FollowUps.Update(id, func(f model.FollowUp) model.FollowUp {
		if p.Description != nil {
			f.Description = *p.Description
		}
		if p.ClientID != nil {
			f.ClientID = p.ClientID
		}
		if p.ProjectID != nil {
			f.ProjectID = p.ProjectID
		}
		if p.EmployeeID != nil {
			f.EmployeeID = *p.EmployeeID
		}
		if p.DueDate != nil {
			f.DueDate = *p.DueDate
		}
		if p.Status != nil {
			f.Status = *p.Status
		}
		if p.Notes != nil {
			f.Notes = *p.Notes
		}
		return f
	})
	if !ok {
		return model.FollowUp{}, ErrNotFound
	}
	return f, nil
}

// Delete removes the task.
func (r *FollowUpRepo) Delete(id uint64) error {
	if !r.store.FollowUps.Delete(id) {
		return ErrNotFound
	}
	return nil
}
