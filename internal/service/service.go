package service

import (
	"context"

	"github.com/skuma49/my-node-app/internal/models"
	"github.com/skuma49/my-node-app/internal/repository"
)

// Users exposes the users collection operations.
type Users interface {
	List(ctx context.Context, f UserFilter) []models.User
	Get(ctx context.Context, id int) (models.User, error)
	Create(ctx context.Context, in UserInput) models.User
	BulkCreate(ctx context.Context, in []UserInput) []models.User
	Update(ctx context.Context, id int, patch UserPatch) (models.User, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, q string) []models.User
}

// Products exposes the products collection operations.
type Products interface {
	List(ctx context.Context, f ProductFilter) []models.Product
	Get(ctx context.Context, id int) (models.Product, error)
	Create(ctx context.Context, in ProductInput) models.Product
	Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, q string) []models.Product
}

// System exposes read-only process metadata (health, status).
type System interface {
	Health() HealthInfo
	Status() StatusInfo
}

// Changes lets consumers follow the mutation feed.
type Changes interface {
	Subscribe() (<-chan models.ChangeEvent, func())
}

// Service aggregates all sub-services behind one injection point.
type Service struct {
	Users
	Products
	System
	Changes
}

// NewService wires the repository layer into concrete services. A single
// change hub is shared so every mutation lands on the same feed.
func NewService(repos *repository.Repository, env string) *Service {
	hub := NewHub()
	return &Service{
		Users:    NewUsersService(repos.Users, hub),
		Products: NewProductsService(repos.Products, hub),
		System:   NewSystemService(env),
		Changes:  hub,
	}
}
