package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tododb/tododb-go/internal/crypto"
	"github.com/tododb/tododb-go/internal/model"
	"github.com/tododb/tododb-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooLong    = crypto.ErrPasswordTooLong
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles registration and login.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	switch {
	case req.Name == "":
		return model.RegisterResponse{}, ErrNameRequired
	case req.Email == "":
		return model.RegisterResponse{}, ErrEmailRequired
	case req.Password == "":
		return model.RegisterResponse{}, ErrPasswordRequired
	}

	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return model.RegisterResponse{}, err
	}
	if exists {
		return model.RegisterResponse{}, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{Msg: "user registered successfully"}, nil
}

// Login verifies credentials and returns a signed token.
// An unknown email and a wrong password both yield ErrInvalidCredentials; the
// wrapped cause is for logs only.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, fmt.Errorf("%w: password mismatch for user %d", ErrInvalidCredentials, user.ID)
	}

	token, err := crypto.GenerateToken(user.ID, user.Name, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
