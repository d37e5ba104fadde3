package repository

import (
	"errors"
	"time"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/store"
)

// ErrInvalidToken is returned when a refresh token hash is unknown,
// expired or revoked.  Handlers translate it into HTTP 401.
var ErrInvalidToken = errors.New("invalid refresh token")

// TokenRepo stores refresh-token hashes.  Like everything else in
// this system the tokens live in process memory, so a restart logs
// every session out.
type TokenRepo struct {
	store *store.Store
}

// NewTokenRepo constructs a TokenRepo over the given store.
func NewTokenRepo(s *store.Store) *TokenRepo {
	return &TokenRepo{store: s}
}

// StoreRefresh records a token hash for a user with its expiry.
func (r *TokenRepo) StoreRefresh(userID uint64, hash string, expiresAt time.Time) {
	r.store.RefreshTokens.Put(model.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
	})
}

// ValidateRefresh returns the owning user id when the hash refers to
// an active, unexpired token, and ErrInvalidToken otherwise.
func (r *TokenRepo) ValidateRefresh(hash string) (uint64, error) {
	tok, ok := r.store.RefreshTokens.Get(hash)
	if !ok || tok.RevokedAt != nil || time.Now().UTC().After(tok.ExpiresAt) {
		return 0, ErrInvalidToken
	}
	return tok.UserID, nil
}

// RevokeByHash marks one token revoked.  Revoking an unknown hash is
// a no-op.
func (r *TokenRepo) RevokeByHash(hash string) {
	now := time.Now().UTC()
	r.store.RefreshTokens.Update(hash, func(tok model.RefreshToken) model.RefreshToken {
		if tok.RevokedAt == nil {
			tok.RevokedAt = &now
		}
		return tok
	})
}

// RevokeAllForUser marks every token of one user revoked, logging the
// user out of all sessions.
func (r *TokenRepo) RevokeAllForUser(userID uint64) {
	now := time.Now().UTC()
	r.store.RefreshTokens.ForEach(func(tok model.RefreshToken) model.RefreshToken {
		if tok.UserID == userID && tok.RevokedAt == nil {
			tok.RevokedAt = &now
		}
		return tok
	})
}
