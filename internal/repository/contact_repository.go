package repository

import (
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// ContactInput carries the fields accepted when recording a lead.
type ContactInput struct {
	Name        string
	Phone       string
	Email       string
	ContactedAt time.Time
	Method      string
	Response    string
	Notes       string
}

// ContactPatch carries the optional fields of a partial update.  The
// conversion flag is not patchable; it changes only through
// ConvertToClient.
type ContactPatch struct {
	Name        *string
	Phone       *string
	Email       *string
	ContactedAt *time.Time
	Method      *string
	Response    *string
	Notes       *string
}

// ContactRepo provides persistence for prospective-contact leads.
type ContactRepo struct {
	store *store.Store
}

// NewContactRepo constructs a ContactRepo over the given store.
func NewContactRepo(s *store.Store) *ContactRepo {
	return &ContactRepo{store: s}
}

// Create assigns the next id and stores the lead as unconverted.
func (r *ContactRepo) Create(in ContactInput) model.Contact {
	return r.store.Contacts.Insert(func(id uint64) model.Contact {
		return model.Contact{
			ID:          id,
			Name:        in.Name,
			Phone:       in.Phone,
			Email:       in.Email,
			ContactedAt: in.ContactedAt,
			Method:      in.Method,
			Response:    in.Response,
			Notes:       in.Notes,
		}
	})
}

// GetByID returns the lead or ErrNotFound.
func (r *ContactRepo) GetByID(id uint64) (model.Contact, error) {
	c, ok := r.store.Contacts.Get(id)
	if !ok {
		return model.Contact{}, ErrNotFound
	}
	return c, nil
}

// List returns all leads in insertion order.
func (r *ContactRepo) List() []model.Contact {
	return r.store.Contacts.List()
}

// ListByConverted returns leads filtered on their converted flag.
func (r *ContactRepo) ListByConverted(converted bool) []model.Contact {
	return r.store.Contacts.Filter(func(c model.Contact) bool {
		return c.Converted == converted
	})
}

// Update merges the non-nil patch fields into the stored record.
func (r *ContactRepo) Update(id uint64, p ContactPatch) (model.Contact, error) {
	c, ok := r.store.Contacts.Update(id, func(c model.Contact) model.Contact {
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.ContactedAt != nil {
			c.ContactedAt = *p.ContactedAt
		}
		if p.Method != nil {
			c.Method = *p.Method
		}
		if p.Response != nil {
			c.Response = *p.Response
		}
		if p.Notes != nil {
			c.Notes = *p.Notes
		}
		return c
	})
	if !ok {
		return model.Contact{}, ErrNotFound
	}
	return c, nil
}

// Delete removes the lead.
func (r *ContactRepo) Delete(id uint64) error {
	if !r.store.Contacts.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// ConvertToClient marks the lead converted and records the client id
// it resolved to.  Only the lead's own existence is checked: the
// client id is deliberately not validated and the client record is
// not created here, both are the caller's responsibility.
func (r *ContactRepo) ConvertToClient(contactID, clientID uint64) (model.Contact, error) {
	c, ok := r.store.Contacts.Update(contactID, func(c model.Contact) model.Contact {
		c.Converted = true
		c.ConvertedClientID = clientID
		return c
	})
	if !ok {
		return model.Contact{}, ErrNotFound
	}
	return c, nil
}
