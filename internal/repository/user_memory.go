package repository

import (
	"sync"

	"github.com/skuma49/my-node-app/internal/models"
)

// UserMemory keeps users in an ordered slice guarded by a mutex.
// All operations are linear scans; insertion order is preserved.
type UserMemory struct {
	mu    sync.Mutex
	users []models.User
}

func NewUserMemory(seed []models.User) *UserMemory {
	return &UserMemory{users: append([]models.User(nil), seed...)}
}

// nextIDLocked computes max(id)+1, or 1 for an empty collection.
// Caller must hold mu. A deleted maximum id may be reissued.
func (r *UserMemory) nextIDLocked() int {
	max := 0
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// Insert assigns the next id and appends the record in one critical section.
func (r *UserMemory) Insert(u models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextIDLocked()
	r.users = append(r.users, u)
	return u
}

// InsertBatch appends every record with sequential ids folded from a single
// running maximum, so entries within one batch never collide.
func (r *UserMemory) InsertBatch(batch []models.User) []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.nextIDLocked()
	out := make([]models.User, 0, len(batch))
	for _, u := range batch {
		u.ID = next
		next++
		r.users = append(r.users, u)
		out = append(out, u)
	}
	return out
}

func (r *UserMemory) FindByID(id int) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Update applies the mutation in place under the lock and returns the
// resulting record. The bool reports whether the id was found.
func (r *UserMemory) Update(id int, apply func(*models.User)) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			apply(&r.users[i])
			return r.users[i], true
		}
	}
	return models.User{}, false
}

func (r *UserMemory) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a snapshot copy in insertion order.
func (r *UserMemory) All() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.User(nil), r.users...)
}
