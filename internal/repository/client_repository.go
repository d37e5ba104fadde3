package repository

import (
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// ClientInput carries the fields accepted when creating a client.
type ClientInput struct {
	Name    string
	Phone   string
	Address string
	Type    string
}

// ClientPatch carries the optional fields of a partial update.  Only
// non-nil fields are merged into the stored record.
type ClientPatch struct {
	Name    *string
	Phone   *string
	Address *string
	Type    *string
}

// ClientRepo provides client persistence plus the client-service
// association operations, since subscriptions have no life of their
// own outside a client.
type ClientRepo struct {
	store *store.Store
}

// NewClientRepo constructs a ClientRepo over the given store.
func NewClientRepo(s *store.Store) *ClientRepo {
	return &ClientRepo{store: s}
}

// Create assigns the next id and stores the client.  It never fails
// under normal input; validation happens in the handler.
func (r *ClientRepo) Create(in ClientInput) model.Client {
	now := time.Now().UTC()
	return r.store.Clients.Insert(func(id uint64) model.Client {
		return model.Client{
			ID:        id,
			Name:      in.Name,
			Phone:     in.Phone,
			Address:   in.Address,
			Type:      in.Type,
			CreatedAt: now,
			UpdatedAt: now,
		}
	})
}

// GetByID returns the client or ErrNotFound.
func (r *ClientRepo) GetByID(id uint64) (model.Client, error) {
	c, ok := r.store.Clients.Get(id)
	if !ok {
		return model.Client{}, ErrNotFound
	}
	return c, nil
}

// List returns all clients in insertion order.
func (r *ClientRepo) List() []model.Client {
	return r.store.Clients.List()
}

// Update merges the non-nil patch fields into the stored record and
// returns the updated client, or ErrNotFound when the id has no
// record.  A missing id never inserts.
func (r *ClientRepo) Update(id uint64, p ClientPatch) (model.Client, error) {
	c, ok := r.store.Clients.Update(id, func(c model.Client) model.Client {
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		if p.Address != nil {
			c.Address = *p.Address
		}
		if p.Type != nil {
			c.Type = *p.Type
		}
		c.UpdatedAt = time.Now().UTC()
		return c
	})
	if !ok {
		return model.Client{}, ErrNotFound
	}
	return c, nil
}

// Delete removes the client.  Projects, follow-ups and associations
// referencing the client are left in place; dangling references are
// tolerated by the data model.
func (r *ClientRepo) Delete(id uint64) error {
	if !r.store.Clients.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// AddService subscribes the client to a service.  Both ids must refer
// to existing records; re-adding an existing pair is idempotent.
func (r *ClientRepo) AddService(clientID, serviceID uint64) error {
	if _, ok := r.store.Clients.Get(clientID); !ok {
		return ErrNotFound
	}
	if _, ok := r.store.Services.Get(serviceID); !ok {
		return ErrNotFound
	}
	r.store.ClientServices.Add(model.ClientServiceKey{ClientID: clientID, ServiceID: serviceID})
	return nil
}

// RemoveService drops the subscription pair, reporting ErrNotFound
// when it was not present.
func (r *ClientRepo) RemoveService(clientID, serviceID uint64) error {
	key := model.ClientServiceKey{ClientID: clientID, ServiceID: serviceID}
	if !r.store.ClientServices.Remove(key) {
		return ErrNotFound
	}
	return nil
}

// ServicesFor resolves the services the client is subscribed to.
// Subscriptions pointing at a deleted service are skipped rather than
// surfaced as errors.
func (r *ClientRepo) ServicesFor(clientID uint64) ([]model.Service, error) {
	if _, ok := r.store.Clients.Get(clientID); !ok {
		return nil, ErrNotFound
	}
	var out []model.Service
	for _, key := range r.store.ClientServices.Keys() {
		if key.ClientID != clientID {
			continue
		}
		if svc, ok := r.store.Services.Get(key.ServiceID); ok {
			out = append(out, svc)
		}
	}
	return out, nil
}
