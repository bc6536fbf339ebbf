package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yourorg/news-admin/internal/config"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the login credentials do not match
// the configured admin pair
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService is the session gate: a single authenticated flag derived from
// the presence of a locally stored opaque token. The token carries no
// cryptographic guarantee and this is explicitly not a security boundary.
type AuthService struct {
	cfg    *config.Config
	store  storage.Storage
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

// NewAuthService creates a new authentication service, restoring a previously
// persisted session token if one exists
func NewAuthService(cfg *config.Config, store storage.Storage, logger *zap.Logger) *AuthService {
	s := &AuthService{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}

	if data, err := store.Read(storage.KeyAdminToken); err == nil {
		s.token = string(data)
	} else if !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("failed to restore session token", zap.Error(err))
	}

	return s
}

// Login compares the credentials against the configured admin pair. On match
// it synthesizes an opaque token, persists it and returns it; on mismatch it
// returns ErrInvalidCredentials and persists nothing.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.Auth.Username {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("password verification failed", zap.Error(err))
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.mu.Lock()
	s.token = signed
	s.mu.Unlock()

	if err := s.store.Write(storage.KeyAdminToken, []byte(signed)); err != nil {
		s.logger.Warn("failed to persist session token", zap.Error(err))
	}

	s.logger.Info("admin logged in", zap.String("username", username))
	return signed, nil
}

// Logout clears the token from memory and durable storage
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Delete(storage.KeyAdminToken); err != nil {
		s.logger.Warn("failed to clear session token", zap.Error(err))
	}
}

// IsAuthenticated reports whether a session token is present
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current session token, empty when logged out
func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
