package repository

import (
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// DocumentRepo provides persistence for project file attachments.
// Only metadata lives here; the files themselves are written by the
// upload package before the record is created.
type DocumentRepo struct {
	store *store.Store
}

// NewDocumentRepo constructs a DocumentRepo over the given store.
func NewDocumentRepo(s *store.Store) *DocumentRepo {
	return &DocumentRepo{store: s}
}

// Create stores a document record for an already-written file.
func (r *DocumentRepo) Create(projectID uint64, filename, filepath string) model.ProjectDocument {
	return r.store.Documents.Insert(func(id uint64) model.ProjectDocument {
		return model.ProjectDocument{
			ID:         id,
			ProjectID:  projectID,
			Filename:   filename,
			Filepath:   filepath,
			UploadedAt: time.Now().UTC(),
		}
	})
}

// GetByID returns the document or ErrNotFound.
func (r *DocumentRepo) GetByID(id uint64) (model.ProjectDocument, error) {
	d, ok := r.store.Documents.Get(id)
	if !ok {
		return model.ProjectDocument{}, ErrNotFound
	}
	return d, nil
}

// ListByProject returns the documents attached to one project.
func (r *DocumentRepo) ListByProject(projectID uint64) []model.ProjectDocument {
	return r.store.Documents.Filter(func(d model.ProjectDocument) bool {
		return d.ProjectID == projectID
	})
}

// Delete removes the document record; removing the file on disk is
// the handler's concern.
func (r *DocumentRepo) Delete(id uint64) error {
	if !r.store.Documents.Delete(id) {
		return ErrNotFound
	}
	return nil
}
