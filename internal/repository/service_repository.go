package repository

import (
	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// ServiceInput carries the fields accepted when creating a service.
type ServiceInput struct {
	Name        string
	Description string
	Frequency   string
	BasePrice   float64
}

// ServicePatch carries the optional fields of a partial update.
type ServicePatch struct {
	Name        *string
	Description *string
	Frequency   *string
	BasePrice   *float64
}

// ServiceRepo provides persistence for recurring service offerings.
type ServiceRepo struct {
	store *store.Store
}

// NewServiceRepo constructs a ServiceRepo over the given store.
func NewServiceRepo(s *store.Store) *ServiceRepo {
	return &ServiceRepo{store: s}
}

// Create assigns the next id and stores the service.
func (r *ServiceRepo) Create(in ServiceInput) model.Service {
	return r.store.Services.Insert(func(id uint64) model.Service {
		return model.Service{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Frequency:   in.Frequency,
			BasePrice:   in.BasePrice,
		}
	})
}

// GetByID returns the service or ErrNotFound.
func (r *ServiceRepo) GetByID(id uint64) (model.Service, error) {
	svc, ok := r.store.Services.Get(id)
	if !ok {
		return model.Service{}, ErrNotFound
	}
	return svc, nil
}

// List returns all services in insertion order.
func (r *ServiceRepo) List() []model.Service {
	return r.store.Services.List()
}

// Update merges the non-nil patch fields into the stored record.
func (r *ServiceRepo) Update(id uint64, p ServicePatch) (model.Service, error) {
	svc, ok := r.store.Services.Update(id, func(svc model.Service) model.Service {
		if p.Name != nil {
			svc.Name = *p.Name
		}
		if p.Description != nil {
			svc.Description = *p.Description
		}
		if p.Frequency != nil {
			svc.Frequency = *p.Frequency
		}
		if p.BasePrice != nil {
			svc.BasePrice = *p.BasePrice
		}
		return svc
	})
	if !ok {
		return model.Service{}, ErrNotFound
	}
	return svc, nil
}

// Delete removes the service.  Client subscriptions pointing at the
// service are left in place and skipped when resolved.
func (r *ServiceRepo) Delete(id uint64) error {
	if !r.store.Services.Delete(id) {
		return ErrNotFound
	}
	return nil
}
