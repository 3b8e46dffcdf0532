package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nexline/accounts-api/internal/core/domain"
)

func TestUserService_ListAll(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, newStubRoleRepo(), nil)
	_, _ = auth.Signup(context.Background(), signupInput("a@x.com", "1000"))
	_, _ = auth.Signup(context.Background(), signupInput("b@x.com", "2000"))

	svc := NewUserService(repo)
	users, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserService_CurrentUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if _, err := svc.CurrentUser(context.Background()); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	want := &domain.User{Email: "me@x.com"}
	ctx := domain.WithUser(context.Background(), want)
	got, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if got.Email != "me@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, newStubRoleRepo(), nil)
	_, _ = auth.Signup(context.Background(), signupInput("a@x.com", "1000"))

	svc := NewUserService(repo)
	updated, err := svc.UpdateProfile(context.Background(), "a@x.com", "5555", "Grace", "Hopper")
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.PhoneNumber != "5555" || updated.FirstName != "Grace" || updated.LastName != "Hopper" {
		t.Fatalf("fields not overwritten: %+v", updated)
	}

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("lookup after update failed: %v", err)
	}
	if stored.PhoneNumber != "5555" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.UpdateProfile(context.Background(), "ghost@x.com", "1", "A", "B"); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("store must remain unchanged")
	}
}

func TestUserService_UpdateProfile_PhoneConflict(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, newStubRoleRepo(), nil)
	_, _ = auth.Signup(context.Background(), signupInput("a@x.com", "1000"))
	_, _ = auth.Signup(context.Background(), signupInput("b@x.com", "2000"))

	svc := NewUserService(repo)
	if _, err := svc.UpdateProfile(context.Background(), "a@x.com", "2000", "A", "B"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists on phone collision, got %v", err)
	}
}
