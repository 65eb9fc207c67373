package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tododb/tododb-go/internal/crypto"
	"github.com/tododb/tododb-go/internal/model"
	"github.com/tododb/tododb-go/internal/repository"
)

const testSecret = "test-secret"

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, testSecret, time.Hour)
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		req     model.RegisterRequest
		wantErr error
	}{
		{name: "empty name", req: model.RegisterRequest{Email: "a@example.com", Password: "pw"}, wantErr: ErrNameRequired},
		{name: "empty email", req: model.RegisterRequest{Name: "A", Password: "pw"}, wantErr: ErrEmailRequired},
		{name: "empty password", req: model.RegisterRequest{Name: "A", Email: "a@example.com"}, wantErr: ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeUserStore()
			svc := newTestAuthService(store)

			_, err := svc.Register(context.Background(), tt.req)
			if err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if store.creates != 0 {
				t.Errorf("expected no inserts, got %d", store.creates)
			}
		})
	}
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Msg == "" {
		t.Error("expected non-empty msg")
	}

	stored := store.users["alice@example.com"]
	if stored.PasswordHash == "s3cret" {
		t.Fatal("password stored in clear text")
	}
	if ok, err := crypto.CheckPassword("s3cret", stored.PasswordHash); err != nil || !ok {
		t.Errorf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	req := model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
	if store.creates != 1 {
		t.Errorf("expected exactly 1 insert, got %d", store.creates)
	}
}

func TestRegister_ConcurrentDuplicateFromStore(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = repository.ErrDuplicateEmail
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.RegisterRequest{Name: "A", Email: "a@example.com", Password: "pw"})
	if err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: strings.Repeat("x", 80),
	})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestRegister_StoreError(t *testing.T) {
	store := newFakeUserStore()
	store.err = errors.New("db down")
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.RegisterRequest{Name: "A", Email: "a@example.com", Password: "pw"})
	if err == nil || errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected raw store error, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.Login(context.Background(), model.LoginRequest{Password: "pw"}); err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
	if _, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@example.com"}); err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "right",
	}); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), model.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	_, unknownEmail := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@example.com", Password: "right"})

	for name, err := range map[string]error{"wrong password": wrongPassword, "unknown email": unknownEmail} {
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "right",
	}); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "alice@example.com", Password: "right"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.UserResponse{ID: store.users["alice@example.com"].ID, Name: "Alice", Email: "alice@example.com"}
	if resp.User != want {
		t.Errorf("user = %+v, want %+v", resp.User, want)
	}

	claims, err := crypto.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != want.ID || claims.Name != "Alice" {
		t.Errorf("claims = {id:%d name:%q}, want {id:%d name:%q}", claims.UserID, claims.Name, want.ID, "Alice")
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != time.Hour {
		t.Errorf("token ttl = %v, want %v", ttl, time.Hour)
	}
}
