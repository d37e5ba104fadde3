// Package store implements the in-memory entity store backing every
// repository.  Records live in per-entity tables keyed by a monotonic
// uint64 id; nothing is persisted across restarts.  The original
// single-threaded design needed no locking, but Go serves requests on
// parallel goroutines, so every table and association set guards its
// map with an RWMutex.  Each operation is one critical section, which
// preserves the last-write-wins semantics of the access contract.
package store

import (
	"sort"
	"sync"

	"github.com/iliyamo/business-admin/internal/model"
)

// Store aggregates every entity table and association set.  It is
// constructed once in main and injected into the repositories; tests
// build a fresh instance per test for isolation.
type Store struct {
	Clients   Table[model.Client]
	Services  Table[model.Service]
	Projects  Table[model.Project]
	Documents Table[model.ProjectDocument]
	Contacts  Table[model.Contact]
	FollowUps Table[model.FollowUp]
	Employees Table[model.Employee]
	Users     Table[model.User]

	ClientServices  PairSet[model.ClientServiceKey]
	EmployeeClients PairSet[model.EmployeeClientKey]

	RefreshTokens TokenTable
}

// New returns an empty store with all tables initialized.
func New() *Store {
	return &Store{
		Clients:         newTable[model.Client](),
		Services:        newTable[model.Service](),
		Projects:        newTable[model.Project](),
		Documents:       newTable[model.ProjectDocument](),
		Contacts:        newTable[model.Contact](),
		FollowUps:       newTable[model.FollowUp](),
		Employees:       newTable[model.Employee](),
		Users:           newTable[model.User](),
		ClientServices:  newPairSet[model.ClientServiceKey](),
		EmployeeClients: newPairSet[model.EmployeeClientKey](),
		RefreshTokens:   newTokenTable(),
	}
}

// Table holds the records of one entity type.  Records are stored by
// value so callers never share memory with the table; mutation goes
// through Update exclusively.
type Table[T any] struct {
	mu     *sync.RWMutex
	rows   map[uint64]T
	lastID uint64
}

func newTable[T any]() Table[T] {
	return Table[T]{mu: &sync.RWMutex{}, rows: make(map[uint64]T)}
}

// Insert assigns the next id and stores the record built by fn.  The
// callback receives the assigned id so it can be stamped onto the
// record before storage.  Insert never fails.
func (t *Table[T]) Insert(fn func(id uint64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastID++
	row := fn(t.lastID)
	t.rows[t.lastID] = row
	return row
}

// Get returns a copy of the record and true, or the zero value and
// false when the id has no record.
func (t *Table[T]) Get(id uint64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// List returns copies of all records in ascending id order, which
// matches insertion order because ids are monotonic.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]uint64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Filter returns copies of all records matching pred, in ascending id
// order.  Every filtered lookup is a linear scan; the data sets are
// small enough that nothing smarter is warranted.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]uint64, 0, len(t.rows))
	for id, row := range t.rows {
		if pred(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Update applies fn to the stored record and writes the result back.
// It returns the updated copy and true, or the zero value and false
// when the id has no record.  A missing id never inserts.
func (t *Table[T]) Update(id uint64, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = fn(row)
	t.rows[id] = row
	return row, true
}

// Delete removes the record and reports whether it existed.  Deleting
// a record does not recycle its id.
func (t *Table[T]) Delete(id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Len returns the number of stored records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// PairSet is a set of composite association keys.  Both associations
// (client-service and employee-client) have no identity of their own
// beyond the key pair, so membership is all there is to store.
type PairSet[K comparable] struct {
	mu  *sync.RWMutex
	set map[K]struct{}
}

func newPairSet[K comparable]() PairSet[K] {
	return PairSet[K]{mu: &sync.RWMutex{}, set: make(map[K]struct{})}
}

// Add inserts the key.  Adding an existing key is an idempotent
// overwrite, not an error.
func (p *PairSet[K]) Add(key K) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.set[key] = struct{}{}
}

// Remove deletes the key and reports whether it was present.
func (p *PairSet[K]) Remove(key K) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.set[key]; !ok {
		return false
	}
	delete(p.set, key)
	return true
}

// Has reports membership of the key.
func (p *PairSet[K]) Has(key K) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.set[key]
	return ok
}

// Keys returns all keys in unspecified order.
func (p *PairSet[K]) Keys() []K {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]K, 0, len(p.set))
	for k := range p.set {
		out = append(out, k)
	}
	return out
}

// Len returns the number of stored keys.
func (p *PairSet[K]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.set)
}

// TokenTable stores refresh tokens keyed by their SHA-256 hash rather
// than by a numeric id, since lookups always happen by hash.
type TokenTable struct {
	mu   *sync.RWMutex
	rows map[string]model.RefreshToken
}

func newTokenTable() TokenTable {
	return TokenTable{mu: &sync.RWMutex{}, rows: make(map[string]model.RefreshToken)}
}

// Put stores or overwrites a token record under its hash.
func (t *TokenTable) Put(tok model.RefreshToken) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[tok.TokenHash] = tok
}

// Get returns the token record for a hash.
func (t *TokenTable) Get(hash string) (model.RefreshToken, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tok, ok := t.rows[hash]
	return tok, ok
}

// Update applies fn to the stored token and writes the result back.
func (t *TokenTable) Update(hash string, fn func(model.RefreshToken) model.RefreshToken) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	tok, ok := t.rows[hash]
	if !ok {
		return false
	}
	t.rows[hash] = fn(tok)
	return true
}

// ForEach applies fn to every stored token under the write lock.  It
// is used to revoke all tokens belonging to one user.
func (t *TokenTable) ForEach(fn func(model.RefreshToken) model.RefreshToken) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for hash, tok := range t.rows {
		t.rows[hash] = fn(tok)
	}
}
