// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login with opaque session tokens,
// and token validation for guarded requests.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/shared/db"
)

// Session is the result of a successful login: the opaque token the caller
// must present on guarded requests and the instant it stops being valid.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService provides the authentication operations:
//   - Register: create a user with a hashed password
//   - Login: verify credentials and issue a session token
//   - Authenticate: resolve a presented token to its user
//   - Logout: revoke the current session
type AuthService struct {
	db             *sql.DB
	repomanager    db.RepositoryManager
	logger         logging.Logger
	bcryptCost     int
	sessionTTL     time.Duration
	requestTimeout time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(conn *sql.DB, m db.RepositoryManager, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		db:             conn,
		repomanager:    m,
		logger:         l.With("module", "auth_service"),
		bcryptCost:     cfg.BcryptCost,
		sessionTTL:     cfg.SessionTokenValidityDuration,
		requestTimeout: cfg.RequestTimeout,
	}
}

// Register creates a new user with the given username and password. Only the
// bcrypt hash of the password is stored. A username that is already taken
// yields common.ErrorAlreadyExists; any store or hashing failure yields
// common.ErrorInternal.
//
// The hash is computed before the transaction opens so no connection is held
// during the expensive bcrypt work. The existence pre-check gives the common
// case a clean answer, but the real protection against two concurrent
// registrations is the unique constraint: a duplicate insert also surfaces
// as common.ErrorAlreadyExists, never as an internal fault.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user, err = repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "failed to register user", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the given credentials and, on success, issues a fresh
// session token and persists it, overwriting any previous session for the
// user. An unknown username and a wrong password both return
// common.ErrorInvalidCredentials so the caller cannot tell which it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "failed to look up user", "error", err.Error())
		return nil, common.ErrorInternal
	}

	// bcrypt runs outside any transaction or timeout scope
	match, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "password verification failed", "error", err.Error())
		return nil, common.ErrorInternal
	}
	if !match {
		return nil, common.ErrorInvalidCredentials
	}

	token, expiry, err := auth.IssueSessionToken(s.sessionTTL)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	if err := s.repomanager.Users(s.db).SaveSession(ctx, user.ID, &token, &expiry); err != nil {
		s.logger.Error(ctx, "failed to persist session", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return &Session{Token: token, ExpiresAt: expiry}, nil
}

// Authenticate resolves a presented token to its user. An empty token yields
// common.ErrMissingToken; a token that matches no currently-active session
// (unknown, revoked, or expired; the cases are never distinguished) yields
// common.ErrInvalidToken. Store failures yield common.ErrorInternal and are
// never reported as an authentication rejection.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrMissingToken
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	user, err := s.repomanager.Users(s.db).GetByActiveToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		s.logger.Error(ctx, "failed to authenticate token", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Logout clears the user's session token and expiry together, immediately
// invalidating the current token.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	if err := s.repomanager.Users(s.db).SaveSession(ctx, userID, nil, nil); err != nil {
		s.logger.Error(ctx, "failed to clear session", "error", err.Error())
		return common.ErrorInternal
	}

	return nil
}

func (s *AuthService) findUser(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}
