package service

import (
	"context"
	"testing"

	"github.com/skuma49/my-node-app/internal/repository"
)

func newUsersService() *UsersService {
	return NewUsersService(repository.NewUserMemory(repository.SeedUsers()), NewHub())
}

func intPtr(n int) *int { return &n }

func TestUsersService_ListFilterByRole(t *testing.T) {
	s := newUsersService()

	admins := s.List(context.Background(), UserFilter{Role: "admin"})
	if len(admins) != 1 || admins[0].ID != 1 {
		t.Fatalf("expected only seed admin, got %+v", admins)
	}

	// role match is case-sensitive
	if got := s.List(context.Background(), UserFilter{Role: "Admin"}); len(got) != 0 {
		t.Fatalf("expected no match for capitalized role, got %+v", got)
	}
}

func TestUsersService_ListLimit(t *testing.T) {
	s := newUsersService()

	if got := s.List(context.Background(), UserFilter{Limit: intPtr(1)}); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("limit=1 should keep the first record, got %+v", got)
	}
	if got := s.List(context.Background(), UserFilter{Limit: intPtr(10)}); len(got) != 2 {
		t.Fatalf("oversized limit should keep everything, got %+v", got)
	}
	if got := s.List(context.Background(), UserFilter{Limit: intPtr(0)}); len(got) != 0 {
		t.Fatalf("limit=0 should keep nothing, got %+v", got)
	}
}

func TestUsersService_CreateDefaultsRole(t *testing.T) {
	s := newUsersService()
	u := s.Create(context.Background(), UserInput{Name: "A", Email: "a@x.com"})
	if u.Role != "user" {
		t.Fatalf("expected default role, got %q", u.Role)
	}
	if u.ID != 3 {
		t.Fatalf("expected id 3, got %d", u.ID)
	}
}

func TestUsersService_BulkCreateUniqueIDs(t *testing.T) {
	s := newUsersService()
	created := s.BulkCreate(context.Background(), []UserInput{
		{Name: "A", Email: "a@x.com"},
		{Name: "B", Email: "b@x.com", Role: "admin"},
	})
	if len(created) != 2 {
		t.Fatalf("expected 2 created, got %d", len(created))
	}
	if created[0].ID == created[1].ID {
		t.Fatalf("bulk entries share id %d", created[0].ID)
	}
	if created[0].ID <= 2 || created[1].ID <= 2 {
		t.Fatalf("bulk ids collide with existing records: %+v", created)
	}
	if created[0].Role != "user" || created[1].Role != "admin" {
		t.Fatalf("roles not applied: %+v", created)
	}
}

func TestUsersService_UpdateAppliesOnlyTruthyFields(t *testing.T) {
	s := newUsersService()

	u, err := s.Update(context.Background(), 1, UserPatch{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "new@example.com" || u.Name != "John Doe" || u.Role != "admin" {
		t.Fatalf("unexpected record after patch: %+v", u)
	}

	// all-empty patch is a no-op, not an error
	u, err = s.Update(context.Background(), 1, UserPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "new@example.com" || u.Name != "John Doe" {
		t.Fatalf("empty patch mutated record: %+v", u)
	}

	if _, err := s.Update(context.Background(), 999999, UserPatch{Name: "X"}); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUsersService_DeleteThenGetMisses(t *testing.T) {
	s := newUsersService()
	if err := s.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(context.Background(), 2); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := s.Delete(context.Background(), 2); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUsersService_SearchCaseInsensitive(t *testing.T) {
	s := newUsersService()

	got := s.Search(context.Background(), "john")
	if len(got) != 1 || got[0].Name != "John Doe" {
		t.Fatalf("expected John Doe, got %+v", got)
	}

	// matches email too
	got = s.Search(context.Background(), "JANE@")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected Jane Smith via email, got %+v", got)
	}

	got = s.Search(context.Background(), "nobody")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
