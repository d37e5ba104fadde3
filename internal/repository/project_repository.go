package repository

import (
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// ProjectInput carries the fields accepted when creating a project.
// InvoiceFile is the server-local path of an already-stored invoice;
// the handler decodes and writes the upload before calling Create.
type ProjectInput struct {
	ClientID      uint64
	Name          string
	DateRequested time.Time
	DateExecuted  *time.Time
	Description   string
	InvoiceFile   string
	Cost          float64
	Price         float64
	Duration      float64
	Status        string
}

// ProjectPatch carries the optional fields of a partial update.
type ProjectPatch struct {
	ClientID      *uint64
	Name          *string
	DateRequested *time.Time
	DateExecuted  *time.Time
	Description   *string
	InvoiceFile   *string
	Cost          *float64
	Price         *float64
	Duration      *float64
	Status        *string
}

// ProjectRepo provides project persistence.  The client id carried by
// a project is not checked against the client store; the data model
// tolerates dangling references.
type ProjectRepo struct {
	store *store.Store
}

// NewProjectRepo constructs a ProjectRepo over the given store.
func NewProjectRepo(s *store.Store) *ProjectRepo {
	return &ProjectRepo{store: s}
}

// Create assigns the next id and stores the project.
func (r *ProjectRepo) Create(in ProjectInput) model.Project {
	return r.store.Projects.Insert(func(id uint64) model.Project {
		return model.Project{
			ID:            id,
			ClientID:      in.ClientID,
			Name:          in.Name,
			DateRequested: in.DateRequested,
			DateExecuted:  in.DateExecuted,
			Description:   in.Description,
			InvoiceFile:   in.InvoiceFile,
			Cost:          in.Cost,
			Price:         in.Price,
			Duration:      in.Duration,
			Status:        in.Status,
		}
	})
}

// GetByID returns the project or ErrNotFound.
func (r *ProjectRepo) GetByID(id uint64) (model.Project, error) {
	p, ok := r.store.Projects.Get(id)
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return p, nil
}

// List returns all projects in insertion order.
func (r *ProjectRepo) List() []model.Project {
	return r.store.Projects.List()
}

// ListByClient returns the projects belonging to one client.
func (r *ProjectRepo) ListByClient(clientID uint64) []model.Project {
	return r.store.Projects.Filter(func(p model.Project) bool {
		return p.ClientID == clientID
	})
}

// Update merges the non-nil patch fields into the stored record.
func (r *ProjectRepo) Update(id uint64, p ProjectPatch) (model.Project, error) {
	proj, ok := r.store.Projects.Update(id, func(proj model.Project) model.Project {
		if p.ClientID != nil {
			proj.ClientID = *p.ClientID
		}
		if p.Name != nil {
			proj.Name = *p.Name
		}
		if p.DateRequested != nil {
			proj.DateRequested = *p.DateRequested
		}
		if p.DateExecuted != nil {
			proj.DateExecuted = p.DateExecuted
		}
		if p.Description != nil {
			proj.Description = *p.Description
		}
		if p.InvoiceFile != nil {
			proj.InvoiceFile = *p.InvoiceFile
		}
		if p.Cost != nil {
			proj.Cost = *p.Cost
		}
		if p.Price != nil {
			proj.Price = *p.Price
		}
		if p.Duration != nil {
			proj.Duration = *p.Duration
		}
		if p.Status != nil {
			proj.Status = *p.Status
		}
		return proj
	})
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return proj, nil
}

// Delete removes the project record.  Attached documents and any
// invoice file on disk are the handler's concern.
func (r *ProjectRepo) Delete(id uint64) error {
	if !r.store.Projects.Delete(id) {
		return ErrNotFound
	}
	return nil
}
