package auth

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	"aquagest/internal/core/apperror"
	"aquagest/internal/core/id"
	"aquagest/internal/domain/state"
	"aquagest/pkg/logger"
)

// Operator is the single configured account. PasswordHash is a bcrypt hash;
// plaintext never lives in config.
type Operator struct {
	Username     string
	PasswordHash string
	DisplayName  string
	Role         state.UserRole
}

// HashPassword produces a bcrypt hash for operator provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SessionStore persists the session marker in the auth slot so a login
// survives a restart and a logout clears it durably.
type SessionStore interface {
	SaveAuth(ctx context.Context, data []byte) error
	LoadAuth(ctx context.Context) ([]byte, error)
	ClearAuth(ctx context.Context) error
}

// Session is the durable auth-slot document.
type Session struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	LoggedAt  time.Time `json:"loggedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service authenticates the operator and manages the durable session.
type Service struct {
	operator Operator
	jwt      *JWTService
	sessions SessionStore
}

// NewService creates the auth service.
func NewService(operator Operator, jwtService *JWTService, sessions SessionStore) *Service {
	return &Service{operator: operator, jwt: jwtService, sessions: sessions}
}

// LoginResult carries the signed token and the session it opened.
type LoginResult struct {
	Token   string
	Session Session
	User    state.User
}

// Login checks the credentials, signs a token and persists the session
// marker. Wrong username and wrong password return the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username != s.operator.Username {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	userID := id.NewString()
	token, expiresAt, err := s.jwt.GenerateToken(userID, s.operator.DisplayName, string(s.operator.Role))
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	session := Session{
		UserID:    userID,
		Name:      s.operator.DisplayName,
		Role:      string(s.operator.Role),
		LoggedAt:  time.Now().UTC(),
		ExpiresAt: expiresAt,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if err := s.sessions.SaveAuth(ctx, data); err != nil {
		// The token is still valid; the session just will not survive a
		// restart.
		logger.Warn(ctx, "persist session failed", "error", err)
	}

	logger.Info(ctx, "operator logged in", "user", s.operator.Username)

	return &LoginResult{
		Token:   token,
		Session: session,
		User: state.User{
			Name: s.operator.DisplayName,
			Role: s.operator.Role,
		},
	}, nil
}

// Logout clears the durable session marker. The state slot is untouched.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.ClearAuth(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "operator logged out")
	return nil
}

// CurrentSession returns the persisted session if one exists and has not
// expired; (nil, nil) otherwise.
func (s *Service) CurrentSession(ctx context.Context) (*Session, error) {
	data, err := s.sessions.LoadAuth(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt marker is treated as logged out.
		logger.Warn(ctx, "discarding unreadable session marker", "error", err)
		return nil, nil
	}
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return &session, nil
}
