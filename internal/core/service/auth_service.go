package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
)

// AuthService implements signup and credential verification.
type AuthService struct {
	users         ports.UserRepository
	roles         ports.RoleRepository
	notifications ports.NotificationQueue
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, notifications ports.NotificationQueue) *AuthService {
	return &AuthService{users: users, roles: roles, notifications: notifications}
}

// Signup registers a new user. The duplicate checks and the insert run inside
// a single store transaction; two concurrent signups on the same email or
// phone cannot both pass the existence check and commit. The store's unique
// indexes remain the backstop and also map to ErrUserExists.
//
// Requested role names that do not resolve against the role table are skipped
// rather than rejected.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *domain.User
	err = s.users.InTransaction(ctx, func(txCtx context.Context) error {
		// Either unique field colliding rejects the whole request with one
		// uniform conflict error.
		if _, err := s.users.FindByEmail(txCtx, input.Email); err == nil {
			return domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrResourceNotFound) {
			return err
		}
		if _, err := s.users.FindByPhoneNumber(txCtx, input.PhoneNumber); err == nil {
			return domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrResourceNotFound) {
			return err
		}

		roles, err := s.resolveRoles(txCtx, input.Roles)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user := &domain.User{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			CompanyName:  input.CompanyName,
			Email:        input.Email,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: string(hash),
			Roles:        roles,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		created, err = s.users.Create(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.Enqueue(ports.Notification{
			Recipient: created.Email,
			Subject:   "Welcome",
			Body:      fmt.Sprintf("Hi %s, your account has been created.", created.FirstName),
		})
	}

	return created, nil
}

// Authenticate verifies the email/password pair and returns the stored user.
// A user that vanishes between verification and the re-fetch is surfaced as
// ErrUnexpectedState rather than a silent not-found.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	authenticated, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return nil, domain.ErrUnexpectedState
		}
		return nil, err
	}
	return authenticated, nil
}

func (s *AuthService) resolveRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrResourceNotFound) {
				continue // unknown role names are ignored, not rejected
			}
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}
