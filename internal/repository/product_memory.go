package repository

import (
	"sync"

	"github.com/skuma49/my-node-app/internal/models"
)

// ProductMemory keeps products in an ordered slice guarded by a mutex.
type ProductMemory struct {
	mu       sync.Mutex
	products []models.Product
}

func NewProductMemory(seed []models.Product) *ProductMemory {
	return &ProductMemory{products: append([]models.Product(nil), seed...)}
}

// Caller must hold mu.
func (r *ProductMemory) nextIDLocked() int {
	max := 0
	for _, p := range r.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (r *ProductMemory) Insert(p models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextIDLocked()
	r.products = append(r.products, p)
	return p
}

func (r *ProductMemory) InsertBatch(batch []models.Product) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.nextIDLocked()
	out := make([]models.Product, 0, len(batch))
	for _, p := range batch {
		p.ID = next
		next++
		r.products = append(r.products, p)
		out = append(out, p)
	}
	return out
}

func (r *ProductMemory) FindByID(id int) (models.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (r *ProductMemory) Update(id int, apply func(*models.Product)) (models.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			apply(&r.products[i])
			return r.products[i], true
		}
	}
	return models.Product{}, false
}

func (r *ProductMemory) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	return false
}

func (r *ProductMemory) All() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Product(nil), r.products...)
}
