package repository

import (
	"strings"
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
	"github.com/iliyamo/business-admin/internal/utils"
)

// UserRepo provides persistence for login accounts.  Usernames are
// unique, compared case insensitively after trimming.
type UserRepo struct {
	store *store.Store
}

// NewUserRepo constructs a UserRepo over the given store.
func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{store: s}
}

// Create hashes the password with bcrypt at the given cost and stores
// a new account.  It returns ErrUsernameExists when the username is
// taken.  The optional employeeID links the account to an employee
// profile; the id is not validated against the employee store.
func (r *UserRepo) Create(username, password string, employeeID *uint64, cost int) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	taken := r.store.Users.Filter(func(u model.User) bool {
		return strings.ToLower(u.Username) == username
	})
	if len(taken) > 0 {
		return model.User{}, ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := r.store.Users.Insert(func(id uint64) model.User {
		return model.User{
			ID:           id,
			Username:     username,
			PasswordHash: hash,
			EmployeeID:   employeeID,
			CreatedAt:    time.Now().UTC(),
		}
	})
	return u, nil
}

// GetByUsername returns the account or ErrNotFound.
func (r *UserRepo) GetByUsername(username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	hits := r.store.Users.Filter(func(u model.User) bool {
		return strings.ToLower(u.Username) == username
	})
	if len(hits) == 0 {
		return model.User{}, ErrNotFound
	}
	return hits[0], nil
}

// GetByID returns the account or ErrNotFound.
func (r *UserRepo) GetByID(id uint64) (model.User, error) {
	u, ok := r.store.Users.Get(id)
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}
