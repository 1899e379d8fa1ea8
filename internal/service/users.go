package service

import (
	"context"
	"strings"

	"github.com/skuma49/my-node-app/internal/models"
	"github.com/skuma49/my-node-app/internal/repository"
)

const defaultRole = "user"

type UsersService struct {
	repo repository.UserRepo
	hub  *Hub
}

func NewUsersService(repo repository.UserRepo, hub *Hub) *UsersService {
	return &UsersService{repo: repo, hub: hub}
}

// List returns users matching the filter, in insertion order.
func (s *UsersService) List(ctx context.Context, f UserFilter) []models.User {
	out := []models.User{}
	for _, u := range s.repo.All() {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		out = append(out, u)
	}
	return clampLimit(out, f.Limit)
}

func (s *UsersService) Get(ctx context.Context, id int) (models.User, error) {
	u, ok := s.repo.FindByID(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// Create inserts a new user with an allocated id. Role defaults to "user".
func (s *UsersService) Create(ctx context.Context, in UserInput) models.User {
	u := s.repo.Insert(models.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  roleOrDefault(in.Role),
	})
	s.hub.Publish(models.EntityUser, models.ActionCreated, u.ID)
	return u
}

// BulkCreate inserts every entry in one batch; ids are sequential within the
// batch so no two entries collide.
func (s *UsersService) BulkCreate(ctx context.Context, in []UserInput) []models.User {
	batch := make([]models.User, 0, len(in))
	for _, item := range in {
		batch = append(batch, models.User{
			Name:  item.Name,
			Email: item.Email,
			Role:  roleOrDefault(item.Role),
		})
	}
	created := s.repo.InsertBatch(batch)
	for _, u := range created {
		s.hub.Publish(models.EntityUser, models.ActionCreated, u.ID)
	}
	if created == nil {
		created = []models.User{}
	}
	return created
}

// Update overwrites only the fields present (non-empty) in the patch.
// An all-empty patch succeeds and leaves the record unchanged.
func (s *UsersService) Update(ctx context.Context, id int, patch UserPatch) (models.User, error) {
	u, ok := s.repo.Update(id, func(u *models.User) {
		if patch.Name != "" {
			u.Name = patch.Name
		}
		if patch.Email != "" {
			u.Email = patch.Email
		}
		if patch.Role != "" {
			u.Role = patch.Role
		}
	})
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	s.hub.Publish(models.EntityUser, models.ActionUpdated, id)
	return u, nil
}

func (s *UsersService) Delete(ctx context.Context, id int) error {
	if !s.repo.Delete(id) {
		return ErrUserNotFound
	}
	s.hub.Publish(models.EntityUser, models.ActionDeleted, id)
	return nil
}

// Search matches q as a case-insensitive substring of name or email.
func (s *UsersService) Search(ctx context.Context, q string) []models.User {
	needle := strings.ToLower(q)
	out := []models.User{}
	for _, u := range s.repo.All() {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

func roleOrDefault(role string) string {
	if role == "" {
		return defaultRole
	}
	return role
}

// clampLimit keeps the first n records. Nil or negative limits mean no cap.
func clampLimit[T any](in []T, limit *int) []T {
	if limit == nil || *limit < 0 || *limit >= len(in) {
		return in
	}
	return in[:*limit]
}
