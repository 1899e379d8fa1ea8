package repository

import "github.com/skuma49/my-node-app/internal/models"

// UserRepo is the ordered in-memory users collection.
// Insert assigns the id (max existing id + 1) atomically with the append,
// so callers never observe a half-allocated record.
type UserRepo interface {
	Insert(u models.User) models.User
	InsertBatch(batch []models.User) []models.User
	FindByID(id int) (models.User, bool)
	Update(id int, apply func(*models.User)) (models.User, bool)
	Delete(id int) bool
	All() []models.User
}

// ProductRepo is the ordered in-memory products collection.
type ProductRepo interface {
	Insert(p models.Product) models.Product
	InsertBatch(batch []models.Product) []models.Product
	FindByID(id int) (models.Product, bool)
	Update(id int, apply func(*models.Product)) (models.Product, bool)
	Delete(id int) bool
	All() []models.Product
}

type Repository struct {
	Users    UserRepo
	Products ProductRepo
}

// NewRepository builds both collections pre-loaded with the seed records.
// State lives for the process lifetime only; a restart resets to the seeds.
func NewRepository() *Repository {
	return &Repository{
		Users:    NewUserMemory(SeedUsers()),
		Products: NewProductMemory(SeedProducts()),
	}
}

// SeedUsers returns the fixed records the users collection starts with.
func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "admin"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "user"},
	}
}

// SeedProducts returns the fixed records the products collection starts with.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 50},
		{ID: 2, Name: "Book", Price: 19.99, Category: "Education", Stock: 100},
	}
}
