// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and account lookup.
// Tokens are opaque random strings; they are issued but never stored or
// validated.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	"github.com/dmitrijs2005/boardkeeper/internal/server/config"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService provides authentication-related operations:
// - Register: create users and hand out a first token
// - Login: verify credentials and mint a new token
// - GetUserByID: look up an account
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
	logger      logging.Logger
	now         func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) *UserService {
	o := newOptions("user_service", opts)
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
		logger:      o.logger,
		now:         o.now,
	}
}

// Register creates a user with a bcrypt hash of password. A taken username
// or email fails with an error matching both common.ErrorStore and
// common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrorInvalidData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", common.ErrorInvalidData, err)
		}
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)

	return s.issue(u)
}

// Login checks the password. Unknown user and wrong password are both
// reported as common.ErrorUnauthorized. Every call yields a fresh token.
func (s *UserService) Login(ctx context.Context, userName, password string) (*models.AuthResponse, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, strings.TrimSpace(userName))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(user)
}

// GetUserByID returns common.ErrorNotFound for unknown ids.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetUserByID(ctx, id)
}

func (s *UserService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := common.MakeRandHexString(common.TokenSize)
	if err != nil {
		return nil, fmt.Errorf("%w: token: %v", common.ErrorInternal, err)
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}
