// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/codequiz/backend/internal/domain/user"
	"github.com/codequiz/backend/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService registers players and issues the bearer tokens the quiz
// endpoints use to decide whether a finished quiz is persisted.
type AuthService struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

func NewAuthService(s store.Store, secret string, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:    s,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
func (a *AuthService) Signup(ctx context.Context, username, password string) error {
	if err := user.ValidateCredentials(username, password); err != nil {
		return err
	}

	_, err := a.store.GetUser(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return a.store.SaveUser(ctx, &user.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies credentials and returns a signed token.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := a.store.GetUser(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return a.issueToken(u.Username)
}

func (a *AuthService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// UsernameFromToken validates a token and returns the subject username.
func (a *AuthService) UsernameFromToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
