package service

import (
	"testing"
	"time"

	"github.com/nexline/accounts-api/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := &domain.User{Email: "a@x.com"}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	if !svc.IsValid(token, user) {
		t.Fatalf("token should validate against its own user")
	}

	other := &domain.User{Email: "b@x.com"}
	if svc.IsValid(token, other) {
		t.Fatalf("token must not validate against a different user")
	}
}

func TestTokenService_ExtractSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := &domain.User{Email: "carol@example.com"}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject returned error: %v", err)
	}
	if subject != "carol@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_ExtractSubject_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.ExtractSubject("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_ExtractSubject_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour)
	verifier := NewTokenService("key-two", time.Hour)

	token, err := issuer.Issue(&domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.ExtractSubject(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	// Negative lifetime produces an already-expired token.
	svc := NewTokenService("secret", time.Hour)
	expired := &TokenService{secret: []byte("secret"), lifetime: -time.Minute}
	user := &domain.User{Email: "a@x.com"}

	token, err := expired.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if svc.IsValid(token, user) {
		t.Fatalf("expired token must not validate")
	}

	// The first-pass subject extraction still succeeds: expiry is not its job.
	subject, err := svc.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject on expired token returned error: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_Lifetime(t *testing.T) {
	if got := NewTokenService("secret", 2*time.Hour).Lifetime(); got != 2*time.Hour {
		t.Fatalf("unexpected lifetime: %v", got)
	}
	if got := NewTokenService("secret", 0).Lifetime(); got != defaultTokenTTL {
		t.Fatalf("expected default lifetime, got %v", got)
	}
}
