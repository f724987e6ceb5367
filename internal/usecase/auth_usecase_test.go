package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

func testAdminCfg(t *testing.T) *cfg.AdminCfg {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	return &cfg.AdminCfg{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}
}

func TestLoginAcceptsCaseInsensitiveEmail(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewAuthUC(repo, testAdminCfg(t), &testLogger{})

	session, err := uc.Login(context.Background(), "ADMIN@Example.Com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Token == "" {
		t.Error("expected a non-empty session token")
	}
	if _, ok := repo.sessions[session.Token]; !ok {
		t.Error("session not persisted")
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "intruder@example.com", "s3cret"},
		{"wrong password", "admin@example.com", "guess"},
		{"empty password", "admin@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSessionRepo()
			uc := NewAuthUC(repo, testAdminCfg(t), &testLogger{})

			_, err := uc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, e.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
			if len(repo.sessions) != 0 {
				t.Error("no session must be created on failure")
			}
		})
	}
}

func TestResolveEmptyTokenIsAnonymous(t *testing.T) {
	uc := NewAuthUC(newFakeSessionRepo(), testAdminCfg(t), &testLogger{})

	session, err := uc.Resolve(context.Background(), "")
	if err != nil || session != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", session, err)
	}
}

func TestResolveUnknownTokenIsAnonymous(t *testing.T) {
	uc := NewAuthUC(newFakeSessionRepo(), testAdminCfg(t), &testLogger{})

	session, err := uc.Resolve(context.Background(), "missing")
	if err != nil || session != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", session, err)
	}
}

func TestSignOutDeletesSession(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewAuthUC(repo, testAdminCfg(t), &testLogger{})

	session, err := uc.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := uc.SignOut(context.Background(), session.Token); err != nil {
		t.Fatalf("signout: %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Error("session must be removed")
	}

	if err := uc.SignOut(context.Background(), ""); err != nil {
		t.Errorf("empty token signout must be a no-op, got %v", err)
	}
}
