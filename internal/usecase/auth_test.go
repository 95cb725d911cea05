package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	pkgAuth "github.com/chowdhry/storefront/internal/pkg/auth"
	testhelpers "github.com/chowdhry/storefront/internal/test"
)

func TestAuthRegisterIssuesToken(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(id int64) (string, error) { return "token-for-1", nil },
	})

	usr, token, err := uc.Register(context.Background(), "ops", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Login != "ops" || token != "token-for-1" {
		t.Fatalf("unexpected result: %+v / %q", usr, token)
	}
	if usr.PasswordHash != "hash:secret" {
		t.Fatalf("password not hashed: %q", usr.PasswordHash)
	}
}

func TestAuthRegisterDuplicateLogin(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "ops", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err := uc.Register(context.Background(), "ops", "other")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthRegisterRejectsEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	for _, creds := range [][2]string{{"", "pass"}, {"ops", ""}, {"  ", "pass"}} {
		_, _, err := uc.Register(context.Background(), creds[0], creds[1])
		if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("creds %v: expected ErrInvalidCredentials, got %v", creds, err)
		}
	}
}

func TestAuthAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "ops", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "ops", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := uc.Authenticate(context.Background(), "ops", "wrong")
	if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = uc.Authenticate(context.Background(), "nobody", "secret")
	if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown login, got %v", err)
	}
}

func TestAuthParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(token string) (int64, error) {
			if token != "valid" {
				return 0, pkgAuth.ErrInvalidToken
			}
			return 42, nil
		},
	})

	id, err := uc.ParseToken("valid")
	if err != nil || id != 42 {
		t.Fatalf("unexpected result: %d, %v", id, err)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}

	if _, err := uc.ParseToken("garbage"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
