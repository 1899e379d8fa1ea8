package service

import (
	"context"
	"strings"

	"github.com/skuma49/my-node-app/internal/models"
	"github.com/skuma49/my-node-app/internal/repository"
)

type ProductsService struct {
	repo repository.ProductRepo
	hub  *Hub
}

func NewProductsService(repo repository.ProductRepo, hub *Hub) *ProductsService {
	return &ProductsService{repo: repo, hub: hub}
}

// List returns products matching the filter, in insertion order.
// Price bounds are inclusive on both ends.
func (s *ProductsService) List(ctx context.Context, f ProductFilter) []models.Product {
	out := []models.Product{}
	for _, p := range s.repo.All() {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return clampLimit(out, f.Limit)
}

func (s *ProductsService) Get(ctx context.Context, id int) (models.Product, error) {
	p, ok := s.repo.FindByID(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *ProductsService) Create(ctx context.Context, in ProductInput) models.Product {
	p := s.repo.Insert(models.Product{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		Stock:    in.Stock,
	})
	s.hub.Publish(models.EntityProduct, models.ActionCreated, p.ID)
	return p
}

// Update overwrites name/category when non-empty and price when non-zero.
// Stock applies whenever the pointer is set, an explicit 0 included.
func (s *ProductsService) Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error) {
	p, ok := s.repo.Update(id, func(p *models.Product) {
		if patch.Name != "" {
			p.Name = patch.Name
		}
		if patch.Price != 0 {
			p.Price = patch.Price
		}
		if patch.Category != "" {
			p.Category = patch.Category
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
	})
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	s.hub.Publish(models.EntityProduct, models.ActionUpdated, id)
	return p, nil
}

func (s *ProductsService) Delete(ctx context.Context, id int) error {
	if !s.repo.Delete(id) {
		return ErrProductNotFound
	}
	s.hub.Publish(models.EntityProduct, models.ActionDeleted, id)
	return nil
}

// Search matches q as a case-insensitive substring of name or category.
func (s *ProductsService) Search(ctx context.Context, q string) []models.Product {
	needle := strings.ToLower(q)
	out := []models.Product{}
	for _, p := range s.repo.All() {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
