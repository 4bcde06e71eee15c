package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-manager-pro/internal/auth"
	"task-manager-pro/internal/domain"
	"task-manager-pro/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidToken indicates a bearer token that resolves to no session.
	ErrInvalidToken = errors.New("invalid token")
)

// UserService describes user lifecycle and session operations.
type UserService interface {
	// Register creates a new user. Usernames are unique, case-sensitive.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues a fresh session token. A user
	// may log in any number of times; each login yields its own token.
	Login(ctx context.Context, username, password string) (string, error)
	// Resolve maps a bearer token back to the username it was issued to.
	Resolve(ctx context.Context, token string) (string, error)
}

type userService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   auth.PasswordHasher
}

func NewUserService(users repository.UserRepository, sessions repository.SessionRepository, hasher auth.PasswordHasher) UserService {
	return &userService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: s.hasher.Hash(password),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.NewToken()
	if err != nil {
		return "", err
	}

	session := &domain.Session{
		Token:    token,
		Username: user.Username,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *userService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return session.Username, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
