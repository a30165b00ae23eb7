package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"
	"finlit-agent/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// UserStore persists and looks up accounts.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type AuthService struct {
	Users     UserStore
	JWTSecret string
	Events    EventSink
}

func NewAuthService(users UserStore, jwtSecret string, events EventSink) *AuthService {
	return &AuthService{Users: users, JWTSecret: jwtSecret, Events: events}
}

func validateCredentials(username, password string) error {
	if len(strings.TrimSpace(username)) < 3 {
		return &apperrors.ValidationError{Field: "username", Reason: "must be at least 3 characters long"}
	}
	if len(password) < 6 {
		return &apperrors.ValidationError{Field: "password", Reason: "must be at least 6 characters long"}
	}
	return nil
}

// Register creates a new account and returns its id.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)

	_, err := s.Users.FindByUsername(ctx, username)
	if err == nil {
		return "", &apperrors.ValidationError{Field: "username", Reason: "already exists"}
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	user := &models.User{Username: username, Password: string(hashed)}
	if err := s.Users.Create(ctx, user); err != nil {
		return "", err
	}

	if s.Events != nil {
		if err := s.Events.Publish("user.registered", map[string]interface{}{
			"userId":   user.ID,
			"username": user.Username,
		}); err != nil {
			log.Printf("failed to publish user.registered: %v", err)
		}
	}
	return user.ID, nil
}

// ErrInvalidCredentials covers both unknown users and wrong passwords, so
// login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)

	user, err := s.Users.FindByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(s.JWTSecret, user.ID, user.Username)
}
